package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockwatch-go-api/internal/models"
	"stockwatch-go-api/pkg/yahoo"
)

type stubProvider struct {
	quotes map[string]models.Quote
}

func (s stubProvider) GetQuote(_ context.Context, symbol string) (models.Quote, error) {
	if q, ok := s.quotes[symbol]; ok {
		return q, nil
	}
	return models.Quote{}, fmt.Errorf("no data returned for symbol %s", symbol)
}

func chartJSON(price, previousClose float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"regularMarketPrice":%f,"previousClose":%f}}]}}`,
		price, previousClose)
}

func newQuoteService(t *testing.T, handler http.HandlerFunc, secondary QuoteProvider) *QuoteService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	yc := yahoo.NewClientWithBaseURLs(srv.URL, srv.URL)
	return NewQuoteServiceWith(yc, secondary, 4, 2*time.Second, zerolog.Nop())
}

func TestFetchQuotesRoundsToTwoDecimals(t *testing.T) {
	svc := newQuoteService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON(110.12345, 100))
	}, nil)

	quotes := svc.FetchQuotes(context.Background(), []string{"ITC.NS"})
	require.Contains(t, quotes, "ITC.NS")

	q := quotes["ITC.NS"]
	assert.Equal(t, 110.12, q.Price)
	assert.Equal(t, 10.12, q.Change)
	assert.Equal(t, 10.12, q.ChangePercent)
}

func TestFetchQuotesTotalOutageYieldsEmptyMap(t *testing.T) {
	svc := newQuoteService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	quotes := svc.FetchQuotes(context.Background(), []string{"ITC.NS", "INFY.NS"})
	assert.Empty(t, quotes)
}

func TestFetchQuotesFallsBackToSecondary(t *testing.T) {
	secondary := stubProvider{quotes: map[string]models.Quote{
		"INFY.NS": {Price: 1500.555, Change: 10, ChangePercent: 0.67},
	}}
	svc := newQuoteService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, secondary)

	quotes := svc.FetchQuotes(context.Background(), []string{"INFY.NS", "ITC.NS"})

	// INFY comes from the secondary source, rounded; ITC fails everywhere
	require.Contains(t, quotes, "INFY.NS")
	assert.Equal(t, 1500.56, quotes["INFY.NS"].Price)
	assert.NotContains(t, quotes, "ITC.NS")
}

func TestFetchQuotesSkipsEmptySymbols(t *testing.T) {
	svc := newQuoteService(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chartJSON(100, 100))
	}, nil)

	quotes := svc.FetchQuotes(context.Background(), []string{""})
	assert.Empty(t, quotes)
}
