// Package oecd reads the OECD short-term interest rate series (indicator STINT)
// in its CSV export format.
package oecd

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"fxcalc/internal/domain"
	"fxcalc/internal/rollover"
)

const (
	frequencyMonthly   = "M"
	frequencyQuarterly = "Q"
)

var ErrMissingColumn = errors.New("missing column")

// LocationCurrencies maps OECD location codes to the currencies whose rate they publish.
var LocationCurrencies = map[string][]domain.Currency{
	"AUS":  {"AUD"},
	"CAN":  {"CAD"},
	"CHE":  {"CHF"},
	"EA19": {"EUR"},
	"USA":  {"USD"},
	"JPN":  {"JPY"},
	"NZL":  {"NZD"},
	"GBR":  {"GBP"},
	"RUS":  {"RUB"},
	"NOR":  {"NOK"},
	"CHN":  {"CNY", "CNH"},
	"MEX":  {"MXN"},
	"ZAF":  {"ZAR"},
}

type columns struct {
	location, frequency, period, value int
}

func (c columns) width() int {
	return max(c.location, c.frequency, c.period, c.value) + 1
}

// Parse builds a table with one record per month. Monthly observations win; a quarterly
// observation fills the months of its quarter that have no monthly value for the currency.
// Rows for unknown locations or other frequencies are ignored.
func Parse(r io.Reader) (*rollover.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	monthly := make(map[time.Time]map[domain.Currency]float64)
	quarterly := make(map[time.Time]map[domain.Currency]float64)

	for line := 2; ; line++ {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, readErr)
		}
		if len(row) < cols.width() {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, cols.width(), len(row))
		}

		currencies, ok := LocationCurrencies[strings.TrimSpace(row[cols.location])]
		if !ok {
			continue
		}
		rawValue := strings.TrimSpace(row[cols.value])
		if rawValue == "" {
			continue
		}
		value, parseErr := strconv.ParseFloat(rawValue, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("line %d: invalid value %q: %w", line, rawValue, parseErr)
		}

		var target map[time.Time]map[domain.Currency]float64
		var start time.Time
		switch strings.TrimSpace(row[cols.frequency]) {
		case frequencyMonthly:
			target = monthly
			start, parseErr = parseMonth(row[cols.period])
		case frequencyQuarterly:
			target = quarterly
			start, parseErr = parseQuarter(row[cols.period])
		default:
			continue
		}
		if parseErr != nil {
			return nil, fmt.Errorf("line %d: %w", line, parseErr)
		}

		if target[start] == nil {
			target[start] = make(map[domain.Currency]float64)
		}
		for _, c := range currencies {
			target[start][c] = value
		}
	}

	for quarterStart, rates := range quarterly {
		for i := 0; i < 3; i++ {
			month := quarterStart.AddDate(0, i, 0)
			if monthly[month] == nil {
				monthly[month] = make(map[domain.Currency]float64)
			}
			for c, v := range rates {
				if _, ok := monthly[month][c]; !ok {
					monthly[month][c] = v
				}
			}
		}
	}

	if len(monthly) == 0 {
		return nil, rollover.ErrEmptyTable
	}

	records := make([]rollover.Record, 0, len(monthly))
	var last time.Time
	for month, rates := range monthly {
		records = append(records, rollover.Record{Date: month, End: month.AddDate(0, 1, -1), Rates: rates})
		if month.After(last) {
			last = month
		}
	}
	return rollover.NewTable(records, last.AddDate(0, 1, -1))
}

func locateColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		// exports from the OECD portal start with a byte order mark
		name = strings.TrimPrefix(name, "\ufeff")
		index[strings.ToUpper(strings.TrimSpace(name))] = i
	}

	var cols columns
	for name, dst := range map[string]*int{
		"LOCATION":  &cols.location,
		"FREQUENCY": &cols.frequency,
		"TIME":      &cols.period,
		"VALUE":     &cols.value,
	} {
		i, ok := index[name]
		if !ok {
			return columns{}, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		*dst = i
	}
	return cols, nil
}

// parseMonth parses "2006-01".
func parseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t, nil
}

// parseQuarter parses "2006-Q1" and returns the first day of the quarter.
func parseQuarter(s string) (time.Time, error) {
	year, quarter, ok := strings.Cut(strings.TrimSpace(s), "-Q")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid quarter %q", s)
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid quarter %q: %w", s, err)
	}
	q, err := strconv.Atoi(quarter)
	if err != nil || q < 1 || q > 4 {
		return time.Time{}, fmt.Errorf("invalid quarter %q", s)
	}
	return time.Date(y, time.Month(3*(q-1)+1), 1, 0, 0, 0, 0, time.UTC), nil
}

// FileSource loads the table from a CSV file on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (*rollover.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open interest rates file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return table, nil
}
