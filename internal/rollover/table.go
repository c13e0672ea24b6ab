package rollover

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"fxcalc/internal/domain"
)

// DateLayout is the key format of GetRateData results.
const DateLayout = "2006-01-02"

var (
	ErrEmptyTable    = errors.New("interest rate table has no records")
	ErrDuplicateDate = errors.New("interest rate table has duplicate dates")
	ErrInvalidBounds = errors.New("interest rate table max date is before its last record")
	ErrOverlap       = errors.New("interest rate records overlap")
)

// Record holds the annual short-term interest rates, in percent, effective from Date
// through End inclusive. A zero End means the record runs until the next record starts.
// Days after End and before the next record have no rates.
type Record struct {
	Date  time.Time
	End   time.Time
	Rates map[domain.Currency]float64
}

// Table is an immutable, date-ordered sequence of records covering [MinDate, MaxDate].
type Table struct {
	records []Record
	maxDate time.Time
}

// NewTable copies records, so later changes to the input are not observed by the table.
func NewTable(records []Record, maxDate time.Time) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	owned := make([]Record, len(records))
	for i, r := range records {
		owned[i] = Record{Date: truncateDay(r.Date), Rates: maps.Clone(r.Rates)}
		if !r.End.IsZero() {
			owned[i].End = truncateDay(r.End)
		}
	}
	slices.SortFunc(owned, func(a, b Record) int { return a.Date.Compare(b.Date) })

	for i := 1; i < len(owned); i++ {
		if owned[i].Date.Equal(owned[i-1].Date) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, owned[i].Date.Format(DateLayout))
		}
		if prevEnd := owned[i-1].End; !prevEnd.IsZero() && !prevEnd.Before(owned[i].Date) {
			return nil, fmt.Errorf("%w: %s ends %s, next starts %s", ErrOverlap, owned[i-1].Date.Format(DateLayout),
				prevEnd.Format(DateLayout), owned[i].Date.Format(DateLayout))
		}
	}
	for _, r := range owned {
		if !r.End.IsZero() && r.End.Before(r.Date) {
			return nil, fmt.Errorf("%w: record %s ends %s", ErrInvalidBounds, r.Date.Format(DateLayout), r.End.Format(DateLayout))
		}
	}

	maxDate = truncateDay(maxDate)
	last := owned[len(owned)-1]
	if maxDate.Before(last.Date) || (!last.End.IsZero() && maxDate.Before(last.End)) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBounds, maxDate.Format(DateLayout))
	}

	return &Table{records: owned, maxDate: maxDate}, nil
}

func (t *Table) MinDate() time.Time { return t.records[0].Date }

func (t *Table) MaxDate() time.Time { return t.maxDate }

func (t *Table) Len() int { return len(t.records) }

// RateAt returns the currency's rate effective at date.
func (t *Table) RateAt(currency domain.Currency, date time.Time) (float64, error) {
	record, err := t.recordAt(date)
	if err != nil {
		return 0, err
	}
	rate, ok := record.Rates[currency]
	if !ok {
		return 0, fmt.Errorf("%w: no %s interest rate on %s", domain.ErrRateNotFound, currency, date.Format(DateLayout))
	}
	return rate, nil
}

func (t *Table) recordAt(date time.Time) (Record, error) {
	day := truncateDay(date)
	if day.Before(t.MinDate()) || day.After(t.maxDate) {
		return Record{}, fmt.Errorf("%w: %s not in [%s, %s]", domain.ErrOutOfRangeDate,
			day.Format(DateLayout), t.MinDate().Format(DateLayout), t.maxDate.Format(DateLayout))
	}
	// first record strictly after day, the one before it is in effect
	i := sort.Search(len(t.records), func(i int) bool { return t.records[i].Date.After(day) })
	record := t.records[i-1]
	if !record.End.IsZero() && day.After(record.End) {
		return Record{}, fmt.Errorf("%w: no interest rates published for %s", domain.ErrRateNotFound, day.Format(DateLayout))
	}
	return record, nil
}

// Snapshot returns a deep copy of the table keyed by record date.
func (t *Table) Snapshot() map[string]map[domain.Currency]float64 {
	out := make(map[string]map[domain.Currency]float64, len(t.records))
	for _, r := range t.records {
		out[r.Date.Format(DateLayout)] = maps.Clone(r.Rates)
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
