package views

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"lockedin-cli/internal/api"
	apperrors "lockedin-cli/internal/errors"
	"lockedin-cli/internal/models"
)

func historyFixture(n int) []models.HistoryPoint {
	points := make([]models.HistoryPoint, n)
	for i := range points {
		points[i] = models.HistoryPoint{
			Date:  fmt.Sprintf("2025-%02d-%02d", i/28+1, i%28+1),
			Close: decimal.NewFromInt(int64(100 + i)),
		}
	}
	return points
}

func TestChartDataRanges(t *testing.T) {
	v := &StockView{
		State: StateReady,
		Stock: &models.StockDetail{HistoricalData: historyFixture(180)},
	}

	if got := v.ChartData("1M"); len(got) != 30 {
		t.Errorf("1M range kept %d points, want 30", len(got))
	}
	if got := v.ChartData("3M"); len(got) != 90 {
		t.Errorf("3M range kept %d points, want 90", len(got))
	}
	if got := v.ChartData("6M"); len(got) != 180 {
		t.Errorf("6M range kept %d points, want all 180", len(got))
	}

	// Keeps the most recent points, not the oldest
	oneMonth := v.ChartData("1M")
	if !oneMonth[len(oneMonth)-1].Close.Equal(decimal.NewFromInt(279)) {
		t.Errorf("1M range should end at the latest point, got %s", oneMonth[len(oneMonth)-1].Close)
	}
}

func TestChartDataShortSeries(t *testing.T) {
	v := &StockView{
		State: StateReady,
		Stock: &models.StockDetail{HistoricalData: historyFixture(10)},
	}
	if got := v.ChartData("1M"); len(got) != 10 {
		t.Errorf("series shorter than the range should be returned whole, got %d", len(got))
	}
}

func TestCanAfford(t *testing.T) {
	v := &StockView{
		State:       StateReady,
		Stock:       &models.StockDetail{Price: decimal.NewFromInt(100)},
		CashBalance: decimal.NewFromInt(250),
	}

	if !v.CanAfford(2) {
		t.Error("200 <= 250 should be affordable")
	}
	if v.CanAfford(3) {
		t.Error("300 > 250 should not be affordable")
	}
}

func TestPlaceOrderRejectsUnaffordableBuy(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL}, zerolog.Nop())
	v := NewStockView(client, zerolog.Nop(), "AAPL")
	v.Stock = &models.StockDetail{Ticker: "AAPL", Price: decimal.NewFromInt(100)}
	v.CashBalance = decimal.NewFromInt(50)
	v.State = StateReady

	_, err := v.PlaceOrder(context.Background(), models.OrderSideBuy, 1)
	if err == nil {
		t.Fatal("expected an affordability rejection")
	}
	if !apperrors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Errorf("error %v should wrap ErrInsufficientFunds", err)
	}
	if calls != 0 {
		t.Errorf("rejected order reached the backend (%d requests)", calls)
	}
}

func TestPlaceOrderClampsQuantity(t *testing.T) {
	var gotQty float64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		gotQty, _ = body["quantity"].(float64)
		json.NewEncoder(w).Encode(models.Order{ID: 1, Ticker: "AAPL"})
	}))
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL}, zerolog.Nop())
	v := NewStockView(client, zerolog.Nop(), "AAPL")
	v.Stock = &models.StockDetail{Ticker: "AAPL", Price: decimal.NewFromInt(10)}
	v.CashBalance = decimal.NewFromInt(1000)
	v.State = StateReady

	if _, err := v.PlaceOrder(context.Background(), models.OrderSideBuy, 0); err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if gotQty != 1 {
		t.Errorf("quantity = %v, want clamped to 1", gotQty)
	}
}

func TestStockLoadSurvivesSideFetchFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/market/stock/AAPL/history", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.StockDetail{
			Ticker: "AAPL",
			Price:  decimal.NewFromInt(180),
		})
	})
	// /portfolio/summary and /market/stock/AAPL/news both 404

	server := httptest.NewServer(mux)
	defer server.Close()

	client := api.NewClient(api.Config{BaseURL: server.URL}, zerolog.Nop())
	v := NewStockView(client, zerolog.Nop(), "aapl")

	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("Load should survive side fetch failures: %v", err)
	}
	if v.State != StateReady {
		t.Errorf("State = %s, want ready", v.State)
	}
	if v.Ticker != "AAPL" {
		t.Errorf("Ticker = %s, want uppercased AAPL", v.Ticker)
	}
	if !v.CashBalance.IsZero() {
		t.Errorf("CashBalance = %s, want zero when the summary fetch fails", v.CashBalance)
	}
	if len(v.News) != 0 {
		t.Errorf("News = %+v, want empty when news fetch fails", v.News)
	}
}
