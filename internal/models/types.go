package models

import "time"

// Quote is a point-in-time snapshot of a security's market price.
// A Price of 0 or less means the provider had no usable price for the symbol;
// callers fall back to spreadsheet-declared prices in that case.
type Quote struct {
	Price         float64
	Change        float64
	ChangePercent float64
}

// PriceEntry is one watch-list entry in the /api/prices response.
// Price is a number when known and the literal string "N/A" when not.
type PriceEntry struct {
	Price         any     `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Symbol        string  `json:"symbol"`
}

// PricesResponse is the /api/prices payload, keyed by security name.
type PricesResponse struct {
	Prices    map[string]PriceEntry `json:"prices"`
	Timestamp string                `json:"timestamp"`
	Date      string                `json:"date"`
}

// StocksResponse lists the full watch-list.
type StocksResponse struct {
	Stocks map[string]string `json:"stocks"`
	Count  int               `json:"count"`
}

// SecurityDetail merges live price fields with summary fields for one security.
type SecurityDetail struct {
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	CurrentPrice  float64 `json:"currentPrice"`
	PreviousClose float64 `json:"previousClose"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	DayHigh       float64 `json:"dayHigh"`
	DayLow        float64 `json:"dayLow"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"marketCap"`
	PE            float64 `json:"pe"`
	Timestamp     string  `json:"timestamp"`
}

// DeclaredPosition is one holding in the declared-only portfolio report.
// All figures come from the spreadsheet; no live quotes are involved.
type DeclaredPosition struct {
	StockName     string  `json:"stockName"`
	Quantity      float64 `json:"quantity"`
	AvgBuyPrice   float64 `json:"avgBuyPrice"`
	CurrentPrice  float64 `json:"currentPrice"`
	InvestedValue float64 `json:"investedValue"`
	CurrentValue  float64 `json:"currentValue"`
	PnL           float64 `json:"pnl"`
	PnLPercent    float64 `json:"pnlPercent"`
	Symbol        string  `json:"symbol"`
}

// PortfolioResponse is the /api/portfolio-data payload. Totals cover every
// emitted row, active or not.
type PortfolioResponse struct {
	PortfolioData      []DeclaredPosition `json:"portfolioData"`
	TotalStocks        int                `json:"totalStocks"`
	TotalInvestedValue float64            `json:"totalInvestedValue"`
	TotalCurrentValue  float64            `json:"totalCurrentValue"`
	TotalPnL           float64            `json:"totalPnL"`
	Timestamp          string             `json:"timestamp"`
}

// PortfolioItem is one fully reconciled holding. Declared spreadsheet figures
// and live quote fields are merged, then the dependent metrics are recomputed;
// recomputed values overwrite the declared ones in this struct.
type PortfolioItem struct {
	StockName        string  `json:"stockName"`
	Symbol           string  `json:"symbol"`
	AvgPrice         float64 `json:"avgPrice"`
	InitialQty       float64 `json:"initialQty"`
	Quantity         float64 `json:"quantity"`
	AvgInvested      float64 `json:"avgInvested"`
	CurrentPrice     float64 `json:"currentPrice"`
	NetValue         float64 `json:"netValue"`
	UnrealizedProfit float64 `json:"unrealizedProfit"`
	DividendTillNow  float64 `json:"dividendTillNow"`
	TotalProfit      float64 `json:"totalProfit"`
	ProfitPercent    float64 `json:"profitPercent"`
	Realized         float64 `json:"realized"`
	BookedQty        float64 `json:"bookedQty"`
	Remarks          string  `json:"remarks"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`

	InvestedValue           float64 `json:"investedValue"`
	CurrentValue            float64 `json:"currentValue"`
	PnL                     float64 `json:"pnl"`
	PnLPercent              float64 `json:"pnlPercent"`
	UnrealizedProfitPercent float64 `json:"unrealizedProfitPercent"`
	DividendYield           float64 `json:"dividendYield"`
}

// PortfolioSummary aggregates the reconciled holdings with quantity > 0.
// TotalPnL is the unrealized figure; TotalProfitSum additionally includes
// dividends and realized profit. The two are distinct on purpose.
type PortfolioSummary struct {
	TotalStocks        int     `json:"totalStocks"`
	TotalInvestedValue float64 `json:"totalInvestedValue"`
	TotalCurrentValue  float64 `json:"totalCurrentValue"`
	TotalPnL           float64 `json:"totalPnL"`
	TotalProfitSum     float64 `json:"totalProfitSum"`
	TotalPnLPercent    float64 `json:"totalPnLPercent"`
	Gainers            int     `json:"gainers"`
	Losers             int     `json:"losers"`
}

// LivePortfolioResponse is the /api/portfolio-with-live-prices payload.
type LivePortfolioResponse struct {
	PortfolioData []PortfolioItem  `json:"portfolioData"`
	Summary       PortfolioSummary `json:"summary"`
	Timestamp     string           `json:"timestamp"`
	Date          string           `json:"date"`
}

// HistoricalBar is one OHLCV bar. Price duplicates Close for chart consumers.
type HistoricalBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
	Price  float64 `json:"price"`
}

// HistoricalResponse is the /api/historical/<symbol> payload.
type HistoricalResponse struct {
	Symbol    string          `json:"symbol"`
	Period    string          `json:"period"`
	Interval  string          `json:"interval"`
	Data      []HistoricalBar `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// SetPathRequest is the body of POST /api/set-excel-path.
type SetPathRequest struct {
	Path string `json:"path"`
}

// SetPathResponse acknowledges a successful path change.
type SetPathResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Timestamp formats t in the ISO-8601 layout the API uses.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}

// DisplayDate formats t as a long-form date, e.g. "August 01, 2025".
func DisplayDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
