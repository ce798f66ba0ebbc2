package services

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"stockwatch-go-api/internal/config"
	"stockwatch-go-api/internal/models"
	"stockwatch-go-api/pkg/alphavantage"
	"stockwatch-go-api/pkg/yahoo"
)

// QuoteProvider supplies a live quote for a single symbol.
type QuoteProvider interface {
	GetQuote(ctx context.Context, symbol string) (models.Quote, error)
}

// QuoteService fetches live quotes for batches of symbols. Fetching is
// best-effort: symbols the providers cannot serve are simply omitted, and a
// total provider outage yields an empty map, never an error.
type QuoteService struct {
	log       zerolog.Logger
	yahoo     *yahoo.Client
	primary   QuoteProvider
	secondary QuoteProvider // nil unless an Alpha Vantage key is configured
	sem       chan struct{} // bounds concurrent provider calls
	timeout   time.Duration
}

func NewQuoteService(cfg *config.Config, log zerolog.Logger) *QuoteService {
	yc := yahoo.NewClient()
	s := &QuoteService{
		log:     log,
		yahoo:   yc,
		primary: yc,
		sem:     make(chan struct{}, cfg.MaxConcurrentFetches),
		timeout: cfg.FetchTimeout,
	}
	if cfg.AlphaVantageKey != "" {
		s.secondary = alphavantage.NewClient(cfg.AlphaVantageKey)
	}
	return s
}

// NewQuoteServiceWith wires explicit provider clients; used by tests.
func NewQuoteServiceWith(yc *yahoo.Client, secondary QuoteProvider, maxConcurrent int, timeout time.Duration, log zerolog.Logger) *QuoteService {
	return &QuoteService{
		log:       log,
		yahoo:     yc,
		primary:   yc,
		secondary: secondary,
		sem:       make(chan struct{}, maxConcurrent),
		timeout:   timeout,
	}
}

// FetchQuotes fetches quotes for all symbols concurrently through a bounded
// worker pool. The result maps symbol to quote with all figures rounded to
// two decimals; failed symbols are absent from the map.
func (s *QuoteService) FetchQuotes(ctx context.Context, symbols []string) map[string]models.Quote {
	results := make(map[string]models.Quote, len(symbols))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, symbol := range symbols {
		if symbol == "" {
			continue
		}
		wg.Add(1)

		go func(symbol string) {
			defer wg.Done()

			s.sem <- struct{}{}
			defer func() { <-s.sem }()

			fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			quote, err := s.fetchSingle(fetchCtx, symbol)
			if err != nil {
				s.log.Warn().Err(err).Str("symbol", symbol).Msg("quote fetch failed")
				return
			}

			mu.Lock()
			results[symbol] = quote
			mu.Unlock()
		}(symbol)
	}

	wg.Wait()
	return results
}

// fetchSingle tries the primary provider, then the secondary if configured.
func (s *QuoteService) fetchSingle(ctx context.Context, symbol string) (models.Quote, error) {
	quote, err := s.primary.GetQuote(ctx, symbol)
	if err != nil && s.secondary != nil {
		quote, err = s.secondary.GetQuote(ctx, symbol)
	}
	if err != nil {
		return models.Quote{}, err
	}

	return models.Quote{
		Price:         round2(quote.Price),
		Change:        round2(quote.Change),
		ChangePercent: round2(quote.ChangePercent),
	}, nil
}

// FetchDetail returns the merged price/summary detail for one symbol.
func (s *QuoteService) FetchDetail(ctx context.Context, symbol string) (*models.SecurityDetail, error) {
	return s.yahoo.GetDetail(ctx, symbol)
}

// FetchHistory passes period and interval through to the provider untouched.
func (s *QuoteService) FetchHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoricalBar, error) {
	return s.yahoo.GetHistory(ctx, symbol, period, interval)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
