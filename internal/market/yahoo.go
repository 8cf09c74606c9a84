package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultChartBaseURL = "https://query1.finance.yahoo.com"

// YahooSource fetches daily prices from the Yahoo Finance chart endpoint.
type YahooSource struct {
	baseURL string
	client  *http.Client
}

// NewYahooSource builds a price source against the public chart endpoint.
// baseURL is overridable for tests; empty means the production endpoint.
func NewYahooSource(baseURL string) *YahooSource {
	if baseURL == "" {
		baseURL = defaultChartBaseURL
	}
	return &YahooSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Open  []float64 `json:"open"`
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// ClosePrice returns the day's closing price for symbol.
func (s *YahooSource) ClosePrice(ctx context.Context, symbol string) (float64, error) {
	quote, err := s.fetch(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if len(quote.Close) == 0 {
		return 0, fmt.Errorf("%w: %s: no close data", ErrPriceUnavailable, symbol)
	}
	return quote.Close[len(quote.Close)-1], nil
}

// OpenPrice returns the day's opening price for symbol.
func (s *YahooSource) OpenPrice(ctx context.Context, symbol string) (float64, error) {
	quote, err := s.fetch(ctx, symbol)
	if err != nil {
		return 0, err
	}
	if len(quote.Open) == 0 {
		return 0, fmt.Errorf("%w: %s: no open data", ErrPriceUnavailable, symbol)
	}
	return quote.Open[0], nil
}

type quoteSeries struct {
	Open  []float64
	Close []float64
}

func (s *YahooSource) fetch(ctx context.Context, symbol string) (quoteSeries, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", s.baseURL, url.PathEscape(strings.ToUpper(symbol)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return quoteSeries{}, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	req.Header.Set("User-Agent", "stonk-bot/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return quoteSeries{}, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return quoteSeries{}, fmt.Errorf("%w: %s: status %d", ErrPriceUnavailable, symbol, resp.StatusCode)
	}

	var decoded chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return quoteSeries{}, fmt.Errorf("%w: %v", ErrPriceUnavailable, err)
	}
	if decoded.Chart.Error != nil {
		return quoteSeries{}, fmt.Errorf("%w: %s: %s", ErrPriceUnavailable, symbol, decoded.Chart.Error.Description)
	}
	if len(decoded.Chart.Result) == 0 || len(decoded.Chart.Result[0].Indicators.Quote) == 0 {
		return quoteSeries{}, fmt.Errorf("%w: %s: empty chart", ErrPriceUnavailable, symbol)
	}

	quote := decoded.Chart.Result[0].Indicators.Quote[0]
	return quoteSeries{Open: quote.Open, Close: quote.Close}, nil
}
