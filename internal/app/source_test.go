package app

import (
	"context"
	"testing"

	"fxcalc/internal/adapters/httpclient"
	"fxcalc/internal/adapters/oecd"
	"fxcalc/internal/config"

	"github.com/stretchr/testify/require"
)

func TestNewInterestRateSource_File(t *testing.T) {
	cfg := &config.AppConfig{InterestRates: config.InterestRates{
		Source: config.SourceFile,
		Path:   "../adapters/oecd/testdata/short-term-interest.csv",
	}}

	source, release, err := NewInterestRateSource(context.Background(), cfg)
	require.NoError(t, err)
	defer release()
	require.IsType(t, &oecd.FileSource{}, source)

	table, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Positive(t, table.Len())
}

func TestNewInterestRateSource_HTTP(t *testing.T) {
	cfg := &config.AppConfig{InterestRates: config.InterestRates{
		Source: config.SourceHTTP,
		URL:    "https://example.org/stint.csv",
	}}

	source, release, err := NewInterestRateSource(context.Background(), cfg)
	require.NoError(t, err)
	defer release()
	require.IsType(t, &httpclient.InterestRateClient{}, source)
}

func TestNewInterestRateSource_Misconfigured(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.InterestRates
		wantErr error
	}{
		{name: "file without path", cfg: config.InterestRates{Source: config.SourceFile}},
		{name: "http without url", cfg: config.InterestRates{Source: config.SourceHTTP}},
		{name: "unknown", cfg: config.InterestRates{Source: "ftp"}, wantErr: config.ErrUnknownSource},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source, release, err := NewInterestRateSource(context.Background(), &config.AppConfig{InterestRates: tc.cfg})
			require.Error(t, err)
			require.Nil(t, source)
			require.NotNil(t, release)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
