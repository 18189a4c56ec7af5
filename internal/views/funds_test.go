package views

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"lockedin-cli/internal/api"
	"lockedin-cli/internal/cache"
	"lockedin-cli/internal/models"
)

func fundsFixture() []models.MutualFund {
	return []models.MutualFund{
		{SchemeCode: "1", SchemeName: "Bluechip Growth Fund", FundHouse: "Axis"},
		{SchemeCode: "2", SchemeName: "Small Cap Discovery", FundHouse: "Nippon"},
		{SchemeCode: "3", SchemeName: "Index Fund Nifty 50", FundHouse: "UTI"},
	}
}

func TestFundsSearchByNameAndHouse(t *testing.T) {
	v := &MutualFundsView{Funds: fundsFixture(), State: StateReady}

	if got := v.Search("bluechip"); len(got) != 1 || got[0].SchemeCode != "1" {
		t.Errorf("Search(bluechip) = %+v", got)
	}
	if got := v.Search("NIPPON"); len(got) != 1 || got[0].SchemeCode != "2" {
		t.Errorf("Search(NIPPON) = %+v", got)
	}
	if got := v.Search("fund"); len(got) != 2 {
		t.Errorf("Search(fund) returned %d, want 2", len(got))
	}
	if got := v.Search("nomatch"); len(got) != 0 {
		t.Errorf("Search(nomatch) = %+v, want none", got)
	}
}

func TestFundsSearchEmptyTermPassesAll(t *testing.T) {
	v := &MutualFundsView{Funds: fundsFixture(), State: StateReady}
	if got := v.Search(""); len(got) != 3 {
		t.Errorf("empty search returned %d, want all 3", len(got))
	}
}

func TestFundsLoadCachesResult(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(fundsFixture())
	}))
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL}, zerolog.Nop())
	sessionCache := cache.NewMemoryCache(cache.DefaultTTL)

	v := NewMutualFundsView(client, sessionCache, zerolog.Nop())
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("first load issued %d requests, want 1", calls)
	}

	// Second view over the same cache should not hit the network.
	v2 := NewMutualFundsView(client, sessionCache, zerolog.Nop())
	if err := v2.Load(context.Background()); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("second load issued a network request; cache should have served it")
	}
	if len(v2.Funds) != 3 {
		t.Errorf("cached load returned %d funds, want 3", len(v2.Funds))
	}
}
