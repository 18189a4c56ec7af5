package views

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/enrich"
	"lockedin-cli/internal/models"
)

// HoldingsView loads the holdings list and the portfolio summary, then
// enriches each holding with its live price. Both base fetches are
// required; enrichment failures only degrade individual rows.
type HoldingsView struct {
	client *api.Client
	prices enrich.PriceLookup
	logger zerolog.Logger

	State    State
	Err      error
	Holdings []models.EnrichedHolding
	Summary  *models.PortfolioSummary
}

// NewHoldingsView creates the holdings page view model.
func NewHoldingsView(client *api.Client, logger zerolog.Logger) *HoldingsView {
	return &HoldingsView{
		client: client,
		prices: client.Prices,
		logger: logger,
		State:  StateLoading,
	}
}

// Load fetches holdings and summary concurrently, then runs enrichment.
func (v *HoldingsView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	var (
		holdings []models.Holding
		summary  *models.PortfolioSummary
	)
	err := allRequired(
		func() (err error) {
			holdings, err = v.client.Holdings.All(ctx)
			return err
		},
		func() (err error) {
			summary, err = v.client.Portfolio.Summary(ctx)
			return err
		},
	)
	if err != nil {
		v.State = StateError
		v.Err = err
		return err
	}

	v.Holdings = enrich.Holdings(ctx, v.prices, v.logger, holdings)
	v.Summary = summary
	v.State = StateReady
	return nil
}

// TotalValue sums the current value of all holdings.
func (v *HoldingsView) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, h := range v.Holdings {
		total = total.Add(h.CurrentValue)
	}
	return total
}

// TotalInvested sums the invested amount of all holdings.
func (v *HoldingsView) TotalInvested() decimal.Decimal {
	total := decimal.Zero
	for _, h := range v.Holdings {
		total = total.Add(h.InvestedAmount)
	}
	return total
}

// TotalGain sums the unrealized gain of all holdings.
func (v *HoldingsView) TotalGain() decimal.Decimal {
	return v.TotalValue().Sub(v.TotalInvested())
}

// AllocationSlice is one slice of the asset allocation breakdown.
type AllocationSlice struct {
	Name    string `json:"name"`
	Percent int64  `json:"value"`
}

// Allocation computes the asset allocation percentages from the loaded
// holdings plus the cash balance. A portfolio with no value at all
// degenerates to a single 100% cash slice.
func (v *HoldingsView) Allocation() []AllocationSlice {
	cash := decimal.Zero
	if v.Summary != nil {
		cash = v.Summary.CashBalance
	}

	total := v.TotalValue().Add(cash)
	if total.IsZero() {
		return []AllocationSlice{{Name: "Cash", Percent: 100}}
	}

	hundred := decimal.NewFromInt(100)
	var allocation []AllocationSlice
	for _, h := range v.Holdings {
		pct := h.CurrentValue.Div(total).Mul(hundred).Round(0).IntPart()
		if pct > 0 {
			allocation = append(allocation, AllocationSlice{Name: h.Ticker, Percent: pct})
		}
	}

	if cashPct := cash.Div(total).Mul(hundred).Round(0).IntPart(); cashPct > 0 {
		allocation = append(allocation, AllocationSlice{Name: "Cash", Percent: cashPct})
	}

	if len(allocation) == 0 {
		return []AllocationSlice{{Name: "Cash", Percent: 100}}
	}
	return allocation
}

// Top returns the first n holdings for compact display.
func (v *HoldingsView) Top(n int) []models.EnrichedHolding {
	if n >= len(v.Holdings) {
		return v.Holdings
	}
	return v.Holdings[:n]
}
