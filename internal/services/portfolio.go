// Package services holds the quote fetcher and the portfolio reconciliation
// engine.
package services

import (
	"context"
	"time"

	"stockwatch-go-api/internal/directory"
	"stockwatch-go-api/internal/models"
	"stockwatch-go-api/internal/spreadsheet"
)

// netValueTolerance is the relative tolerance within which a positive
// spreadsheet-declared net value is trusted over quantity x live price.
const netValueTolerance = 0.05

// QuoteFetcher supplies live quotes for a set of symbols. A partial or empty
// result is acceptable; the engine falls back to declared prices.
type QuoteFetcher interface {
	FetchQuotes(ctx context.Context, symbols []string) map[string]models.Quote
}

// PortfolioService reconciles a holdings spreadsheet against live quotes.
// Every call re-reads the workbook; the service keeps no state.
type PortfolioService struct {
	dir    *directory.Directory
	quotes QuoteFetcher
}

func NewPortfolioService(dir *directory.Directory, quotes QuoteFetcher) *PortfolioService {
	return &PortfolioService{dir: dir, quotes: quotes}
}

// DeclaredPositions builds the declared-only portfolio report: spreadsheet
// figures plus invested/current/pnl derived from them, no live quotes.
func (s *PortfolioService) DeclaredPositions(path string) (*models.PortfolioResponse, error) {
	rows, err := spreadsheet.ReadRows(path)
	if err != nil {
		return nil, err
	}

	items := make([]models.DeclaredPosition, 0, len(rows))
	for _, cells := range rows {
		row, ok := spreadsheet.NormalizeRow(cells, s.dir)
		if !ok {
			continue
		}

		item := models.DeclaredPosition{
			StockName:    row.StockName,
			Quantity:     row.SimpleQuantity(),
			AvgBuyPrice:  row.SimpleBuyPrice(),
			CurrentPrice: row.CurrentPrice(),
			Symbol:       row.Symbol,
		}
		item.InvestedValue = item.Quantity * item.AvgBuyPrice
		item.CurrentValue = item.Quantity * item.CurrentPrice
		item.PnL = item.CurrentValue - item.InvestedValue
		if item.InvestedValue > 0 {
			item.PnLPercent = (item.PnL / item.InvestedValue) * 100
		}
		items = append(items, item)
	}

	resp := &models.PortfolioResponse{
		PortfolioData: items,
		TotalStocks:   len(items),
		Timestamp:     models.Timestamp(time.Now()),
	}
	for _, item := range items {
		resp.TotalInvestedValue += item.InvestedValue
		resp.TotalCurrentValue += item.CurrentValue
		resp.TotalPnL += item.PnL
	}
	return resp, nil
}

// Reconcile builds the full portfolio report: declared figures merged with
// live quotes, the dependent metric chain recomputed per holding, and a
// summary aggregated over active (quantity > 0) holdings.
func (s *PortfolioService) Reconcile(ctx context.Context, path string) (*models.LivePortfolioResponse, error) {
	rows, err := spreadsheet.ReadRows(path)
	if err != nil {
		return nil, err
	}

	holdings := make([]spreadsheet.Row, 0, len(rows))
	symbols := make([]string, 0, len(rows))
	seen := make(map[string]bool)
	for _, cells := range rows {
		row, ok := spreadsheet.NormalizeRow(cells, s.dir)
		if !ok {
			continue
		}
		holdings = append(holdings, row)
		if row.Symbol != "" && !seen[row.Symbol] {
			seen[row.Symbol] = true
			symbols = append(symbols, row.Symbol)
		}
	}

	// A failed fetch degrades to declared prices; it never aborts the report.
	quotes := s.quotes.FetchQuotes(ctx, symbols)

	items := make([]models.PortfolioItem, 0, len(holdings))
	for _, row := range holdings {
		items = append(items, reconcileRow(row, quotes))
	}

	now := time.Now()
	return &models.LivePortfolioResponse{
		PortfolioData: items,
		Summary:       summarize(items),
		Timestamp:     models.Timestamp(now),
		Date:          models.DisplayDate(now),
	}, nil
}

// reconcileRow merges one holding with its live quote and recomputes the
// dependent metrics in order. Each step feeds the next, so the order is
// load-bearing.
func reconcileRow(row spreadsheet.Row, quotes map[string]models.Quote) models.PortfolioItem {
	item := models.PortfolioItem{
		StockName:        row.StockName,
		Symbol:           row.Symbol,
		AvgPrice:         row.AvgPrice(),
		InitialQty:       row.InitialQty(),
		Quantity:         row.Quantity(),
		AvgInvested:      row.AvgInvested(),
		CurrentPrice:     row.CurrentPrice(),
		NetValue:         row.NetValue(),
		UnrealizedProfit: row.UnrealizedProfit(),
		DividendTillNow:  row.DividendTillNow(),
		TotalProfit:      row.TotalProfit(),
		ProfitPercent:    row.ProfitPercent(),
		Realized:         row.Realized(),
		BookedQty:        row.BookedQty(),
		Remarks:          row.Remarks(),
	}

	// 1. Live price wins over the declared current price when available.
	if quote, ok := quotes[row.Symbol]; ok && quote.Price > 0 {
		item.CurrentPrice = round2(quote.Price)
		item.Change = round2(quote.Change)
		item.ChangePercent = round2(quote.ChangePercent)
	}

	// 2. Invested value always overwrites the declared avg-invested figure.
	item.InvestedValue = round2(item.Quantity * item.AvgPrice)
	item.AvgInvested = item.InvestedValue

	// 3. Trust a positive declared net value when it is within tolerance of
	//    quantity x current price; a manual entry that roughly agrees can be
	//    fresher than a stale feed price.
	calculatedNetValue := round2(item.Quantity * item.CurrentPrice)
	if item.NetValue > 0 && abs(item.NetValue-calculatedNetValue) < calculatedNetValue*netValueTolerance {
		item.CurrentValue = item.NetValue
	} else {
		item.NetValue = calculatedNetValue
		item.CurrentValue = calculatedNetValue
	}

	// 4. Unrealized profit is always recomputed; the declared value is dropped.
	item.UnrealizedProfit = round2(item.CurrentValue - item.InvestedValue)
	item.PnL = item.UnrealizedProfit

	// 5. Total profit = dividends + unrealized + realized.
	item.TotalProfit = round2(item.DividendTillNow + item.UnrealizedProfit + item.Realized)

	// 6. Profit percent over invested value.
	if item.InvestedValue > 0 {
		item.ProfitPercent = round2(item.TotalProfit / item.InvestedValue * 100)
	} else {
		item.ProfitPercent = 0
	}
	item.PnLPercent = item.ProfitPercent

	// 7. Unrealized profit percent, distinct from the total figure above.
	if item.InvestedValue > 0 {
		item.UnrealizedProfitPercent = round2(item.UnrealizedProfit / item.InvestedValue * 100)
	}

	// 8. Dividend yield, only when there is something to yield.
	if item.InvestedValue > 0 && item.DividendTillNow > 0 {
		item.DividendYield = round2(item.DividendTillNow / item.InvestedValue * 100)
	}

	return item
}

// summarize aggregates active holdings only. Zero-quantity rows are exited or
// placeholder positions: present in the item list, excluded from every total.
func summarize(items []models.PortfolioItem) models.PortfolioSummary {
	var summary models.PortfolioSummary
	var totalInvested, totalCurrent, totalUnrealized, totalProfit, totalRealized float64

	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		summary.TotalStocks++
		totalInvested += item.InvestedValue
		totalCurrent += item.CurrentValue
		totalUnrealized += item.UnrealizedProfit
		totalProfit += item.TotalProfit
		totalRealized += item.Realized
		if item.TotalProfit > 0 {
			summary.Gainers++
		}
		if item.TotalProfit < 0 {
			summary.Losers++
		}
	}

	summary.TotalInvestedValue = round2(totalInvested)
	summary.TotalCurrentValue = round2(totalCurrent)
	summary.TotalPnL = round2(totalUnrealized)
	summary.TotalProfitSum = round2(totalProfit + totalRealized)
	if totalInvested > 0 {
		summary.TotalPnLPercent = round2(summary.TotalProfitSum * 100 / totalInvested)
	}
	return summary
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
