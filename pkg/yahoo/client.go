// Package yahoo is a minimal Yahoo Finance client covering live quotes,
// summary details and historical OHLCV bars. Provider responses are treated
// as partial data: every field is presence-checked before use.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"stockwatch-go-api/internal/models"
)

const (
	defaultChartURL   = "https://query1.finance.yahoo.com/v8/finance/chart"
	defaultSummaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
)

type Client struct {
	chartURL   string
	summaryURL string
	httpClient *http.Client
}

func NewClient() *Client {
	return NewClientWithBaseURLs(defaultChartURL, defaultSummaryURL)
}

// NewClientWithBaseURLs overrides the endpoint roots; used by tests.
func NewClientWithBaseURLs(chartURL, summaryURL string) *Client {
	return &Client{
		chartURL:   chartURL,
		summaryURL: summaryURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				PreviousClose       float64 `json:"previousClose"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				RegularMarketVolume int64   `json:"regularMarketVolume"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// wrapped mirrors Yahoo's {raw, fmt} number envelope in quoteSummary modules.
type wrapped struct {
	Raw float64 `json:"raw"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				RegularMarketPrice         wrapped `json:"regularMarketPrice"`
				RegularMarketPreviousClose wrapped `json:"regularMarketPreviousClose"`
				RegularMarketDayHigh       wrapped `json:"regularMarketDayHigh"`
				RegularMarketDayLow        wrapped `json:"regularMarketDayLow"`
				RegularMarketVolume        wrapped `json:"regularMarketVolume"`
				MarketCap                  wrapped `json:"marketCap"`
			} `json:"price"`
			SummaryDetail struct {
				TrailingPE wrapped `json:"trailingPE"`
			} `json:"summaryDetail"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// GetQuote fetches the current quote for one symbol. Price resolution order:
// regular market price, then previous close. An error is returned only when
// neither is available or the request itself failed.
func (c *Client) GetQuote(ctx context.Context, symbol string) (models.Quote, error) {
	reqURL := fmt.Sprintf("%s/%s?interval=1d&range=1d", c.chartURL, url.PathEscape(symbol))

	var chartResp chartResponse
	if err := c.getJSON(ctx, reqURL, &chartResp); err != nil {
		return models.Quote{}, err
	}

	if len(chartResp.Chart.Result) == 0 {
		return models.Quote{}, fmt.Errorf("no data returned for symbol %s", symbol)
	}

	meta := chartResp.Chart.Result[0].Meta
	price := meta.RegularMarketPrice
	previousClose := meta.PreviousClose
	if previousClose == 0 {
		previousClose = meta.ChartPreviousClose
	}

	change := 0.0
	changePercent := 0.0
	if price > 0 && previousClose > 0 {
		change = price - previousClose
		changePercent = (change / previousClose) * 100
	}
	if price == 0 {
		price = previousClose
	}
	if price == 0 {
		return models.Quote{}, fmt.Errorf("no price data for symbol %s", symbol)
	}

	return models.Quote{
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
	}, nil
}

// GetDetail fetches the price and summary-detail modules for one symbol.
// Name and Timestamp are left for the caller to fill.
func (c *Client) GetDetail(ctx context.Context, symbol string) (*models.SecurityDetail, error) {
	reqURL := fmt.Sprintf("%s/%s?modules=price%%2CsummaryDetail", c.summaryURL, url.PathEscape(symbol))

	var summaryResp summaryResponse
	if err := c.getJSON(ctx, reqURL, &summaryResp); err != nil {
		return nil, err
	}

	if len(summaryResp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no data returned for symbol %s", symbol)
	}

	result := summaryResp.QuoteSummary.Result[0]
	price := result.Price.RegularMarketPrice.Raw
	previousClose := result.Price.RegularMarketPreviousClose.Raw

	change := 0.0
	changePercent := 0.0
	if price > 0 && previousClose > 0 {
		change = price - previousClose
		changePercent = (change / previousClose) * 100
	}

	return &models.SecurityDetail{
		Symbol:        symbol,
		CurrentPrice:  price,
		PreviousClose: previousClose,
		Change:        change,
		ChangePercent: changePercent,
		DayHigh:       result.Price.RegularMarketDayHigh.Raw,
		DayLow:        result.Price.RegularMarketDayLow.Raw,
		Volume:        int64(result.Price.RegularMarketVolume.Raw),
		MarketCap:     result.Price.MarketCap.Raw,
		PE:            result.SummaryDetail.TrailingPE.Raw,
	}, nil
}

// GetHistory fetches OHLCV bars for the given period and interval, both
// forwarded to the provider as-is. A symbol the provider does not know yields
// an empty slice rather than an error.
func (c *Client) GetHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoricalBar, error) {
	reqURL := fmt.Sprintf("%s/%s?range=%s&interval=%s",
		c.chartURL, url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(interval))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Yahoo answers 404 for unknown symbols; that is "no rows", not a failure.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo finance returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var chartResp chartResponse
	if err := json.Unmarshal(body, &chartResp); err != nil {
		return nil, err
	}

	if len(chartResp.Chart.Result) == 0 {
		return nil, nil
	}
	result := chartResp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.HistoricalBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		closePrice := round2(deref(quote.Close, i))
		bars = append(bars, models.HistoricalBar{
			Date:   time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Open:   round2(deref(quote.Open, i)),
			High:   round2(deref(quote.High, i)),
			Low:    round2(deref(quote.Low, i)),
			Close:  closePrice,
			Volume: derefInt(quote.Volume, i),
			Price:  closePrice,
		})
	}
	return bars, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo finance returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// Chart arrays carry nulls for gaps; missing entries read as zero.
func deref(values []*float64, i int) float64 {
	if i < len(values) && values[i] != nil {
		return *values[i]
	}
	return 0
}

func derefInt(values []*int64, i int) int64 {
	if i < len(values) && values[i] != nil {
		return *values[i]
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
