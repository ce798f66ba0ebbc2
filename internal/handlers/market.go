package handlers

import (
	"context"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"stockwatch-go-api/internal/directory"
	"stockwatch-go-api/internal/models"
)

// MarketData is the slice of the quote service the market handlers need.
type MarketData interface {
	FetchQuotes(ctx context.Context, symbols []string) map[string]models.Quote
	FetchDetail(ctx context.Context, symbol string) (*models.SecurityDetail, error)
	FetchHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoricalBar, error)
}

type MarketHandler struct {
	dir    *directory.Directory
	market MarketData
}

func NewMarketHandler(dir *directory.Directory, market MarketData) *MarketHandler {
	return &MarketHandler{dir: dir, market: market}
}

// Prices handles GET /api/prices: a quote for every watch-list entry, with
// "N/A" standing in for prices the provider could not supply.
func (h *MarketHandler) Prices(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	quotes := h.market.FetchQuotes(ctx, h.dir.Symbols())

	prices := make(map[string]models.PriceEntry, h.dir.Len())
	for _, entry := range h.dir.Entries() {
		price := models.PriceEntry{Price: "N/A", Symbol: entry.Symbol}
		if quote, ok := quotes[entry.Symbol]; ok {
			if quote.Price > 0 {
				price.Price = quote.Price
			}
			price.Change = quote.Change
			price.ChangePercent = quote.ChangePercent
		}
		prices[entry.Name] = price
	}

	now := time.Now()
	return c.JSON(models.PricesResponse{
		Prices:    prices,
		Timestamp: models.Timestamp(now),
		Date:      models.DisplayDate(now),
	})
}

// Stocks handles GET /api/stocks.
func (h *MarketHandler) Stocks(c *fiber.Ctx) error {
	return c.JSON(models.StocksResponse{
		Stocks: h.dir.Map(),
		Count:  h.dir.Len(),
	})
}

// Detailed handles GET /api/detailed/:name. The name must be an exact
// directory key.
func (h *MarketHandler) Detailed(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	if !h.dir.Has(name) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "Stock not found",
		})
	}
	symbol := h.dir.Symbol(name)

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	detail, err := h.market.FetchDetail(ctx, symbol)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	detail.Name = name
	detail.Symbol = symbol
	detail.Timestamp = models.Timestamp(time.Now())
	return c.JSON(detail)
}

// Historical handles GET /api/historical/:symbol with optional period and
// interval query parameters, both forwarded to the provider as-is.
func (h *MarketHandler) Historical(c *fiber.Ctx) error {
	symbol, err := url.PathUnescape(c.Params("symbol"))
	if err != nil {
		symbol = c.Params("symbol")
	}
	period := c.Query("period", "1mo")
	interval := c.Query("interval", "1d")

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	bars, err := h.market.FetchHistory(ctx, symbol, period, interval)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Error fetching historical data: " + err.Error(),
		})
	}
	if len(bars) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
			Error: "No historical data found",
		})
	}

	return c.JSON(models.HistoricalResponse{
		Symbol:    symbol,
		Period:    period,
		Interval:  interval,
		Data:      bars,
		Timestamp: models.Timestamp(time.Now()),
	})
}
