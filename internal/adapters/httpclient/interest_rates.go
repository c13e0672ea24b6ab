package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fxcalc/internal/adapters/oecd"
	"fxcalc/internal/rollover"
)

// InterestRateClient downloads the OECD short-term interest rate CSV export.
type InterestRateClient struct {
	http *http.Client
	url  string
}

func (c *InterestRateClient) Load(ctx context.Context) (*rollover.Table, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse interest rates URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create interest rates request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute interest rates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for interest rates: %s", resp.StatusCode, resp.Status)
	}

	table, err := oecd.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode interest rates response: %w", err)
	}
	return table, nil
}

func NewInterestRateClient(httpClient *http.Client, url string) *InterestRateClient {
	return &InterestRateClient{http: httpClient, url: url}
}
