package cli

import (
	"bytes"
	"strings"
	"testing"

	"fxcalc/internal/domain"
	"fxcalc/internal/rate"

	"github.com/stretchr/testify/require"
)

const testRatesFile = "../adapters/oecd/testdata/short-term-interest.csv"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestRateCmd_Triangulated(t *testing.T) {
	out, err := execute(t, "rate",
		"--from", "jpy", "--to", "AUD", "--price-type", "bid",
		"--bid", "USD/JPY=110.100,AUD/USD=0.80000",
		"--ask", "USD/JPY=110.130,AUD/USD=0.80010",
	)

	require.NoError(t, err)
	require.Equal(t, "0.01135331516802906448683015441", out)
}

func TestRateCmd_Unresolved(t *testing.T) {
	out, err := execute(t, "rate", "--from", "USD", "--to", "XYZ", "--bid", "USD/JPY=110.1")

	require.NoError(t, err)
	require.Equal(t, "0", out)
}

func TestRateCmd_Errors(t *testing.T) {
	_, err := execute(t, "rate", "--from", "USD", "--to", "JPY", "--price-type", "last", "--bid", "USD/JPY=110.1")
	require.ErrorIs(t, err, domain.ErrUnknownPriceType)

	_, err = execute(t, "rate", "--from", "USD", "--to", "JPY", "--bid", "USD/JPY=abc")
	require.ErrorContains(t, err, "invalid quote USD/JPY=abc")

	_, err = execute(t, "rate", "--to", "JPY", "--bid", "USD/JPY=110.1")
	require.ErrorIs(t, err, rate.ErrFromRequired)

	_, err = execute(t, "rate", "--from", "USD", "--to", "JPY")
	require.ErrorIs(t, err, rate.ErrQuotesRequired)
}

func TestRolloverCmd(t *testing.T) {
	out, err := execute(t, "rollover", "AUDUSD", "2018-02-01", "--rates-file", testRatesFile)

	require.NoError(t, err)
	require.Equal(t, "-2.739726027397263e-07", out)
}

func TestRolloverCmd_Errors(t *testing.T) {
	_, err := execute(t, "rollover", "AUDUSD", "1900-01-01", "--rates-file", testRatesFile)
	require.ErrorIs(t, err, domain.ErrOutOfRangeDate)

	_, err = execute(t, "rollover", "AUDUSD", "01/02/2018", "--rates-file", testRatesFile)
	require.ErrorContains(t, err, "invalid date")

	_, err = execute(t, "rollover", "AUDUSD", "--rates-file", testRatesFile)
	require.Error(t, err)

	_, err = execute(t, "rollover", "AUDUSD", "2018-02-01", "--rates-file", "does-not-exist.csv")
	require.Error(t, err)
}
