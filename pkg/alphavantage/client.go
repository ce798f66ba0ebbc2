// Package alphavantage is a minimal Alpha Vantage GLOBAL_QUOTE client, used
// as a secondary quote source when an API key is configured.
package alphavantage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"stockwatch-go-api/internal/models"
)

const defaultBaseURL = "https://www.alphavantage.co/query"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type globalQuoteResponse struct {
	GlobalQuote struct {
		Symbol        string `json:"01. symbol"`
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

func (c *Client) GetQuote(ctx context.Context, symbol string) (models.Quote, error) {
	reqURL := fmt.Sprintf("%s?function=GLOBAL_QUOTE&symbol=%s&apikey=%s", c.baseURL, symbol, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.Quote{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("alpha vantage returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Quote{}, err
	}

	var quoteResp globalQuoteResponse
	if err := json.Unmarshal(body, &quoteResp); err != nil {
		return models.Quote{}, err
	}

	if quoteResp.GlobalQuote.Symbol == "" {
		return models.Quote{}, fmt.Errorf("no data returned for symbol %s", symbol)
	}

	price, _ := strconv.ParseFloat(quoteResp.GlobalQuote.Price, 64)
	change, _ := strconv.ParseFloat(quoteResp.GlobalQuote.Change, 64)
	if price <= 0 {
		return models.Quote{}, fmt.Errorf("no price data for symbol %s", symbol)
	}

	changePercent := 0.0
	if price != change {
		changePercent = (change / (price - change)) * 100
	}

	return models.Quote{
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
	}, nil
}
