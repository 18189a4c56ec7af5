// Package api provides the HTTP client for the LockedIn backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "lockedin-cli/internal/errors"
	"lockedin-cli/internal/logging"
)

// DefaultBaseURL is the default backend base URL.
const DefaultBaseURL = "http://localhost:8080/api"

// Client issues JSON requests against the LockedIn backend and namespaces
// endpoints into resource groups. It performs a single best-effort request
// per call: no retries, cancellation only through the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger

	Market    *MarketService
	Portfolio *PortfolioService
	Holdings  *HoldingsService
	Orders    *OrdersService
	Watchlist *WatchlistService
	Prices    *PricesService
}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new backend client.
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
	c.Market = &MarketService{client: c}
	c.Portfolio = &PortfolioService{client: c}
	c.Holdings = &HoldingsService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Watchlist = &WatchlistService{client: c}
	c.Prices = &PricesService{client: c}
	return c
}

// errorBody is the JSON error envelope returned by the backend.
type errorBody struct {
	Message string `json:"message"`
}

// do issues a JSON request and decodes the response into out. Non-2xx
// responses become an *errors.APIError carrying the server message, or
// "HTTP <status>" when the error body does not parse. Every failure is
// logged with the endpoint before being returned; user-facing handling
// stays with the caller.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	start := time.Now()
	err := c.doOnce(ctx, method, endpoint, body, out)
	logging.LogAPICall(c.logger, method, endpoint, time.Since(start), err)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("API error")
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrapf(err, "encoding %s body", endpoint)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return apperrors.Wrapf(err, "building %s request", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", apperrors.ErrBackendUnreachable, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		// An unparsable error body degrades to the empty envelope.
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return apperrors.NewAPIError(endpoint, resp.StatusCode, eb.Message, nil)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrapf(err, "decoding %s response", endpoint)
	}
	return nil
}

// get issues a GET request.
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// post issues a POST request.
func (c *Client) post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// delete issues a DELETE request.
func (c *Client) delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}
