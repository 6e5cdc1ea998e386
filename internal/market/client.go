package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Quote is a point-in-time previous-close price for a symbol. Quotes are
// never persisted; they live only for the request that fetched them.
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"latest_price"`
	AsOf   int64   `json:"-"`
}

// Bar is one daily OHLCV entry. Date is the upstream bar timestamp in
// Unix milliseconds, ascending within a history response.
type Bar struct {
	Date   int64   `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Quoter fetches price data for a ticker symbol. Every failure — transport
// error, timeout, bad body, empty results — comes back as a plain error so
// one symbol's failure can never abort a batch. Implemented by Client in
// production and by stubs in tests.
type Quoter interface {
	PrevClose(ctx context.Context, symbol string) (Quote, error)
	History(ctx context.Context, symbol string, days int) ([]Bar, error)
}

// ErrNoData means the upstream answered but had no results for the symbol.
var ErrNoData = errors.New("no data for symbol")

const (
	prevCloseTimeout = 5 * time.Second
	historyTimeout   = 10 * time.Second
)

// Client fetches quotes from the Polygon aggregates API.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient builds a Polygon client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{},
	}
}

// aggsResponse matches the Polygon /v2/aggs payloads (prev and range share
// the same results shape).
type aggsResponse struct {
	Results []struct {
		Close  float64 `json:"c"`
		Open   float64 `json:"o"`
		High   float64 `json:"h"`
		Low    float64 `json:"l"`
		Volume float64 `json:"v"`
		Time   int64   `json:"t"`
	} `json:"results"`
}

// NormalizeSymbol trims and uppercases a ticker symbol so local holdings and
// upstream lookups use the same key.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (c *Client) get(ctx context.Context, addr string, timeout time.Duration) (*aggsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	var body aggsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return &body, nil
}

// PrevClose fetches the previous close for one symbol. One outbound call,
// hard 5s timeout, no retries.
func (c *Client) PrevClose(ctx context.Context, symbol string) (Quote, error) {
	symbol = NormalizeSymbol(symbol)
	addr := fmt.Sprintf("%s/v2/aggs/ticker/%s/prev?apiKey=%s", c.BaseURL, url.PathEscape(symbol), url.QueryEscape(c.APIKey))
	body, err := c.get(ctx, addr, prevCloseTimeout)
	if err != nil {
		return Quote{}, err
	}
	if len(body.Results) == 0 {
		return Quote{}, ErrNoData
	}
	return Quote{Symbol: symbol, Price: body.Results[0].Close, AsOf: body.Results[0].Time}, nil
}

// History fetches daily bars for the window [today-days, today]. One outbound
// call, hard 10s timeout, bars in upstream (ascending) order.
func (c *Client) History(ctx context.Context, symbol string, days int) ([]Bar, error) {
	symbol = NormalizeSymbol(symbol)
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	addr := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/1/day/%s/%s?apiKey=%s",
		c.BaseURL, url.PathEscape(symbol),
		start.Format("2006-01-02"), end.Format("2006-01-02"),
		url.QueryEscape(c.APIKey))
	body, err := c.get(ctx, addr, historyTimeout)
	if err != nil {
		return nil, err
	}
	if len(body.Results) == 0 {
		return nil, ErrNoData
	}
	bars := make([]Bar, 0, len(body.Results))
	for _, r := range body.Results {
		bars = append(bars, Bar{
			Date:   r.Time,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}
	return bars, nil
}
