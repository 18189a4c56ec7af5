package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	apperrors "lockedin-cli/internal/errors"
	"lockedin-cli/internal/models"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(Config{BaseURL: server.URL}, zerolog.Nop())
	return client, server
}

func TestGetDecodesResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/market/gainers" {
			t.Errorf("path = %s, want /market/gainers", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		json.NewEncoder(w).Encode([]models.MarketQuote{
			{Ticker: "AAPL", Price: decimal.NewFromFloat(182.50)},
		})
	}))

	gainers, err := client.Market.Gainers(context.Background())
	if err != nil {
		t.Fatalf("Gainers failed: %v", err)
	}
	if len(gainers) != 1 || gainers[0].Ticker != "AAPL" {
		t.Errorf("unexpected result: %+v", gainers)
	}
}

func TestNumericStringsDecode(t *testing.T) {
	// The backend serializes BigDecimal fields as JSON strings.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"ticker":"TCS","price":"3500.25","changePercent":"-1.2"}]`))
	}))

	gainers, err := client.Market.Gainers(context.Background())
	if err != nil {
		t.Fatalf("Gainers failed: %v", err)
	}
	if !gainers[0].Price.Equal(decimal.NewFromFloat(3500.25)) {
		t.Errorf("Price = %s, want 3500.25", gainers[0].Price)
	}
	if !gainers[0].ChangePercent.Equal(decimal.NewFromFloat(-1.2)) {
		t.Errorf("ChangePercent = %s, want -1.2", gainers[0].ChangePercent)
	}
}

func TestServerErrorMessagePropagates(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Insufficient funds"})
	}))

	_, err := client.Orders.Place(context.Background(), models.OrderRequest{
		Ticker: "AAPL", OrderType: models.OrderSideBuy, Quantity: 1,
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *apperrors.APIError
	if !apperrors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if !strings.Contains(err.Error(), "Insufficient funds") {
		t.Errorf("error %q should carry the server message", err.Error())
	}
}

func TestUnparsableErrorBodyFallsBackToStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))

	_, err := client.Market.Trending(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("error %q should fall back to the HTTP status", err.Error())
	}
}

func TestTransportErrorIsBackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // nothing listening anymore

	client := NewClient(Config{BaseURL: server.URL}, zerolog.Nop())
	_, err := client.Portfolio.Summary(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !apperrors.Is(err, apperrors.ErrBackendUnreachable) {
		t.Errorf("error %v should wrap ErrBackendUnreachable", err)
	}
}

func TestPlaceOrderSendsExactBody(t *testing.T) {
	var calls int
	var got map[string]interface{}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("got %s %s, want POST /orders", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(models.Order{ID: 7, Ticker: "AAPL", Status: models.OrderStatusExecuted})
	}))

	order, err := client.Orders.Place(context.Background(), models.OrderRequest{
		Ticker:    "AAPL",
		OrderType: models.OrderSideBuy,
		Quantity:  3,
		Price:     decimal.NewFromFloat(182.50),
	})
	if err != nil {
		t.Fatalf("Place failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("server saw %d requests, want exactly 1", calls)
	}
	if order.ID != 7 {
		t.Errorf("order ID = %d, want 7", order.ID)
	}

	if got["ticker"] != "AAPL" || got["orderType"] != "BUY" {
		t.Errorf("request body = %v", got)
	}
	if qty, ok := got["quantity"].(float64); !ok || qty != 3 {
		t.Errorf("quantity = %v, want 3", got["quantity"])
	}
}

func TestStockNewsPath(t *testing.T) {
	// Stock news lives under /market/news/{ticker}, not beneath the
	// stock detail resource.
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]models.NewsItem{{Title: "Earnings beat"}})
	}))

	news, err := client.Market.StockNews(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("StockNews failed: %v", err)
	}
	if gotPath != "/market/news/AAPL" {
		t.Errorf("path = %s, want /market/news/AAPL", gotPath)
	}
	if len(news) != 1 || news[0].Title != "Earnings beat" {
		t.Errorf("unexpected result: %+v", news)
	}
}

func TestWatchlistRemoveUsesDelete(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.Watchlist.Remove(context.Background(), "AAPL"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/watchlist/AAPL" {
		t.Errorf("got %s %s, want DELETE /watchlist/AAPL", gotMethod, gotPath)
	}
}

func TestContextCancellationAborts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Market.Indices(ctx)
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/"}, zerolog.Nop())
	if _, err := client.Market.Trending(context.Background()); err != nil {
		t.Fatalf("Trending failed: %v", err)
	}
	if gotPath != "/market/trending" {
		t.Errorf("path = %s, want /market/trending", gotPath)
	}
}
