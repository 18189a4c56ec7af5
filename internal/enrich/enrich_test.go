package enrich

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"lockedin-cli/internal/models"
)

// fakePrices serves canned quotes and fails selected tickers.
type fakePrices struct {
	quotes  map[string]models.PriceQuote
	failing map[string]bool
}

func (f *fakePrices) Get(_ context.Context, ticker string) (models.PriceQuote, error) {
	if f.failing[ticker] {
		return models.PriceQuote{}, errors.New("price service down")
	}
	q, ok := f.quotes[ticker]
	if !ok {
		return models.PriceQuote{}, fmt.Errorf("no quote for %s", ticker)
	}
	return q, nil
}

func TestSettleAllPreservesOrder(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2}
	outcomes := SettleAll(context.Background(), items, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})

	if len(outcomes) != len(items) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(items))
	}
	for i, out := range outcomes {
		if !out.Ok() {
			t.Errorf("outcome %d failed: %v", i, out.Err)
		}
		if out.Value != items[i]*2 {
			t.Errorf("outcome %d = %d, want %d", i, out.Value, items[i]*2)
		}
	}
}

func TestSettleAllIsolatesFailures(t *testing.T) {
	items := []int{0, 1, 2, 3}
	outcomes := SettleAll(context.Background(), items, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("boom")
		}
		return n, nil
	})

	for i, out := range outcomes {
		if i == 2 {
			if out.Ok() {
				t.Error("outcome 2 should carry an error")
			}
			continue
		}
		if !out.Ok() {
			t.Errorf("outcome %d should succeed, got %v", i, out.Err)
		}
	}
}

func TestHoldingsPartialFailure(t *testing.T) {
	holdings := []models.Holding{
		{Ticker: "AAPL", Quantity: decimal.NewFromInt(10), AvgBuyPrice: decimal.NewFromInt(100)},
		{Ticker: "MSFT", Quantity: decimal.NewFromInt(5), AvgBuyPrice: decimal.NewFromInt(200)},
		{Ticker: "NVDA", Quantity: decimal.NewFromInt(2), AvgBuyPrice: decimal.NewFromInt(400)},
	}
	prices := &fakePrices{
		quotes: map[string]models.PriceQuote{
			"AAPL": {Ticker: "AAPL", Price: decimal.NewFromInt(120)},
			"NVDA": {Ticker: "NVDA", Price: decimal.NewFromInt(500)},
		},
		failing: map[string]bool{"MSFT": true},
	}

	enriched := Holdings(context.Background(), prices, zerolog.Nop(), holdings)

	if len(enriched) != 3 {
		t.Fatalf("got %d enriched holdings, want 3", len(enriched))
	}

	// Order preserved
	for i, h := range holdings {
		if enriched[i].Ticker != h.Ticker {
			t.Errorf("position %d = %s, want %s", i, enriched[i].Ticker, h.Ticker)
		}
	}

	// AAPL enriched with live price
	if !enriched[0].CurrentPrice.Equal(decimal.NewFromInt(120)) {
		t.Errorf("AAPL CurrentPrice = %s, want 120", enriched[0].CurrentPrice)
	}
	if !enriched[0].Gain.Equal(decimal.NewFromInt(200)) {
		t.Errorf("AAPL Gain = %s, want 200", enriched[0].Gain)
	}

	// MSFT degraded to avg buy price, zero deltas
	if !enriched[1].CurrentPrice.Equal(decimal.NewFromInt(200)) {
		t.Errorf("MSFT CurrentPrice = %s, want avg buy price 200", enriched[1].CurrentPrice)
	}
	if !enriched[1].Gain.IsZero() || !enriched[1].GainPercent.IsZero() {
		t.Errorf("MSFT should have zero gain in fallback, got %s / %s",
			enriched[1].Gain, enriched[1].GainPercent)
	}

	// NVDA unaffected by its neighbor's failure
	if !enriched[2].CurrentPrice.Equal(decimal.NewFromInt(500)) {
		t.Errorf("NVDA CurrentPrice = %s, want 500", enriched[2].CurrentPrice)
	}
}

func TestWatchlistPartialFailure(t *testing.T) {
	entries := []models.WatchlistEntry{
		{Ticker: "AAPL"},
		{Ticker: "DOWN"},
	}
	prices := &fakePrices{
		quotes: map[string]models.PriceQuote{
			"AAPL": {Ticker: "AAPL", Price: decimal.NewFromInt(180), ChangePercent: decimal.NewFromFloat(1.5)},
		},
		failing: map[string]bool{"DOWN": true},
	}

	enriched := Watchlist(context.Background(), prices, zerolog.Nop(), entries)

	if !enriched[0].Price.Equal(decimal.NewFromInt(180)) {
		t.Errorf("AAPL Price = %s, want 180", enriched[0].Price)
	}
	if !enriched[1].Price.IsZero() || !enriched[1].ChangePercent.IsZero() {
		t.Errorf("DOWN should degrade to zero price, got %s / %s",
			enriched[1].Price, enriched[1].ChangePercent)
	}
}

// Property: enrichment never changes batch length or order, no matter
// which subset of lookups fails.
func TestProperty_EnrichmentPreservesShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("length and order survive arbitrary failures", prop.ForAll(
		func(count int, failMask int) bool {
			holdings := make([]models.Holding, count)
			prices := &fakePrices{
				quotes:  make(map[string]models.PriceQuote),
				failing: make(map[string]bool),
			}
			for i := range holdings {
				ticker := "T" + strconv.Itoa(i)
				holdings[i] = models.Holding{
					Ticker:      ticker,
					Quantity:    decimal.NewFromInt(int64(i + 1)),
					AvgBuyPrice: decimal.NewFromInt(100),
				}
				if failMask&(1<<uint(i)) != 0 {
					prices.failing[ticker] = true
				} else {
					prices.quotes[ticker] = models.PriceQuote{Ticker: ticker, Price: decimal.NewFromInt(110)}
				}
			}

			enriched := Holdings(context.Background(), prices, zerolog.Nop(), holdings)
			if len(enriched) != count {
				return false
			}
			for i := range enriched {
				if enriched[i].Ticker != holdings[i].Ticker {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
		gen.IntRange(0, 4095),
	))

	properties.TestingRun(t)
}
