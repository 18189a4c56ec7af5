package views

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/cache"
	"lockedin-cli/internal/logging"
	"lockedin-cli/internal/models"
)

// MutualFundsView loads the full mutual fund list through the session
// cache and filters it client-side.
type MutualFundsView struct {
	client *api.Client
	cache  cache.Cache
	logger zerolog.Logger

	State State
	Err   error
	Funds []models.MutualFund
}

// NewMutualFundsView creates the mutual funds page view model.
func NewMutualFundsView(client *api.Client, sessionCache cache.Cache, logger zerolog.Logger) *MutualFundsView {
	return &MutualFundsView{
		client: client,
		cache:  sessionCache,
		logger: logger,
		State:  StateLoading,
	}
}

// Load serves the fund list from the cache when fresh, otherwise fetches
// and re-populates the cache.
func (v *MutualFundsView) Load(ctx context.Context) error {
	v.State = StateLoading
	v.Err = nil

	var cached []models.MutualFund
	if v.cache.Read(cache.KeyMutualFunds, &cached) {
		v.Funds = cached
		v.State = StateReady
		return nil
	}

	funds, err := v.client.Market.MutualFunds(ctx)
	if err != nil {
		v.State = StateError
		v.Err = err
		return err
	}

	v.Funds = funds
	if err := v.cache.Write(cache.KeyMutualFunds, funds); err != nil {
		logging.LogCacheMiss(v.logger, cache.KeyMutualFunds, "write failed: "+err.Error())
	}
	v.State = StateReady
	return nil
}

// Search filters the loaded funds by scheme name or fund house. It is a
// pure projection over ready-state data: same list and term always yield
// the same result, and no network call is issued.
func (v *MutualFundsView) Search(term string) []models.MutualFund {
	if term == "" {
		return v.Funds
	}
	needle := strings.ToLower(term)

	var matched []models.MutualFund
	for _, fund := range v.Funds {
		if strings.Contains(strings.ToLower(fund.SchemeName), needle) ||
			strings.Contains(strings.ToLower(fund.FundHouse), needle) {
			matched = append(matched, fund)
		}
	}
	return matched
}

// Top returns the first n funds for compact display.
func (v *MutualFundsView) Top(n int) []models.MutualFund {
	if n >= len(v.Funds) {
		return v.Funds
	}
	return v.Funds[:n]
}

// SearchRemote queries the backend fund search endpoint directly,
// bypassing the cache.
func (v *MutualFundsView) SearchRemote(ctx context.Context, query string) ([]models.MutualFund, error) {
	return v.client.Market.SearchMutualFunds(ctx, query)
}

// Detail fetches a single scheme by code.
func (v *MutualFundsView) Detail(ctx context.Context, schemeCode string) (*models.MutualFund, error) {
	return v.client.Market.MutualFund(ctx, schemeCode)
}
