package httpclient

import (
	"context"
	"encoding/json"
	"fintrack/internal/domain"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"
)

type ExchangeRateClient struct {
	http    *http.Client
	url     string
	limiter *rate.Limiter
}

type apiResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates loads the latest table quoted against domain.BaseCurrency.
// Every failure wraps domain.ErrRateFetch; the client never retries.
func (c *ExchangeRateClient) FetchRates(ctx context.Context) (domain.RateTable, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse url: %w", domain.ErrRateFetch, err)
	}

	if err = c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", domain.ErrRateFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrRateFetch, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", domain.ErrRateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", domain.ErrRateFetch, resp.StatusCode, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrRateFetch, err)
	}

	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("%w: response contains no rates", domain.ErrRateFetch)
	}
	if body.Base != "" && body.Base != domain.BaseCurrency {
		return nil, fmt.Errorf("%w: unexpected base currency %q", domain.ErrRateFetch, body.Base)
	}

	table := domain.RateTable(body.Rates)
	table[domain.BaseCurrency] = 1
	return table, nil
}

// NewExchangeRateClient builds a client for rawURL allowing up to rps upstream requests per second.
func NewExchangeRateClient(httpClient *http.Client, rawURL string, rps float64) *ExchangeRateClient {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &ExchangeRateClient{
		http:    httpClient,
		url:     rawURL,
		limiter: rate.NewLimiter(limit, 1),
	}
}
