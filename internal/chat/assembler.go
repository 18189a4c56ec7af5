// Package chat gathers portfolio and market context and forwards user
// questions to the chat-completion provider.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"lockedin-cli/internal/models"
)

// Fixed completion parameters.
const (
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	defaultTemperature = 0.7
	defaultMaxTokens   = 300
)

// Placeholder strings substituted when a context source fails.
const (
	portfolioUnavailable = "Portfolio data unavailable."
	marketUnavailable    = "Market data unavailable."
)

const systemPromptTemplate = `You are a financial advisor chatbot for the "LockedIn" portfolio app.

Context Data:
User Portfolio: %s
Market Trends: %s

Instructions:
- Answer the user's question based on the provided context.
- Use **Markdown** formatting to make the response easy to read.
- **ALWAYS use bullet points** for lists (like top stocks, holdings, or recommendations).
- Use **bold text** for ticker symbols and key figures (e.g., **NVDA**, **+5%%**).
- Keep paragraphs short and concise.
- If the user asks about their portfolio, use the Portfolio data.
- If the user asks what to buy/sell, refer to Market Trends and their current holdings (if relevant).
- Do not mention "JSON" or technical data formats to the user.
`

// CompletionClient is the chat-completion capability. *openai.Client
// satisfies it; tests substitute fakes.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ContextAPI provides the backend feeds embedded into the prompt.
type ContextAPI interface {
	PortfolioSummary(ctx context.Context) (*models.PortfolioSummary, error)
	Gainers(ctx context.Context) ([]models.MarketQuote, error)
	Trending(ctx context.Context) ([]models.MarketQuote, error)
}

// Assembler builds a context-laden prompt and delegates completion to
// the provider. GetResponse never returns an error: the caller always
// receives a displayable string.
type Assembler struct {
	llm    CompletionClient
	api    ContextAPI
	logger zerolog.Logger
	model  string
}

// NewAssembler creates an assembler using the given completion client.
func NewAssembler(llm CompletionClient, api ContextAPI, logger zerolog.Logger, model string) *Assembler {
	if model == "" {
		model = DefaultModel
	}
	return &Assembler{
		llm:    llm,
		api:    api,
		logger: logger,
		model:  model,
	}
}

// NewGroqClient creates an OpenAI-protocol client against the Groq API.
func NewGroqClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	return openai.NewClientWithConfig(cfg)
}

// GetResponse answers a user message with portfolio and market context.
func (a *Assembler) GetResponse(ctx context.Context, message string) string {
	portfolioContext, marketContext := a.gatherContext(ctx)

	systemPrompt := fmt.Sprintf(systemPromptTemplate, portfolioContext, marketContext)

	resp, err := a.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("Chat completion failed")
		return fallbackMessage(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "I couldn't generate a response."
	}
	return resp.Choices[0].Message.Content
}

// gatherContext fetches the three context feeds in parallel, best
// effort. Each failed source is replaced by its placeholder; gathering
// never fails outright.
func (a *Assembler) gatherContext(ctx context.Context) (portfolioContext, marketContext string) {
	var (
		summary     *models.PortfolioSummary
		gainers     []models.MarketQuote
		trending    []models.MarketQuote
		summaryErr  error
		gainersErr  error
		trendingErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		summary, summaryErr = a.api.PortfolioSummary(ctx)
	}()
	go func() {
		defer wg.Done()
		gainers, gainersErr = a.api.Gainers(ctx)
	}()
	go func() {
		defer wg.Done()
		trending, trendingErr = a.api.Trending(ctx)
	}()
	wg.Wait()

	portfolioContext = portfolioUnavailable
	if summaryErr == nil && summary != nil {
		if data, err := json.Marshal(summary); err == nil {
			portfolioContext = string(data)
		}
	} else {
		a.logger.Warn().Err(summaryErr).Msg("Portfolio context unavailable")
	}

	marketContext = marketUnavailable
	if gainersErr == nil {
		if trendingErr != nil {
			trending = []models.MarketQuote{}
		}
		gainersJSON, gerr := json.Marshal(gainers)
		trendingJSON, terr := json.Marshal(trending)
		if gerr == nil && terr == nil {
			marketContext = fmt.Sprintf("Top Gainers: %s. Trending: %s", gainersJSON, trendingJSON)
		}
	} else {
		a.logger.Warn().Err(gainersErr).Msg("Market context unavailable")
	}

	return portfolioContext, marketContext
}

// fallbackMessage maps a completion failure to a human-readable string,
// distinguishing provider errors from transport errors.
func fallbackMessage(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error connecting to AI: %s", apiErr.Message)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "Error: Could not reach the AI service. Please check your network connection."
	}

	return fmt.Sprintf("Connection Error: %v. Check the logs for details.", err)
}
