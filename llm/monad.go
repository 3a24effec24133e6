package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/d1nch8g/monad/logger"
)

const (
	// DefaultModel is used when no model option is given.
	DefaultModel = openai.GPT3Dot5Turbo

	// DefaultMaxTokens caps the completion length when no option is given.
	DefaultMaxTokens = 150
)

// ErrNoChoices is returned when the API responds without any completion choices.
var ErrNoChoices = errors.New("no choices in response")

// chatCompleter mirrors the single go-openai call issued by AskQuestion,
// so tests can substitute a fake without touching the direct-access surface.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Monad wraps an OpenAI client with logged, error-propagating convenience
// calls while still exposing the raw client for direct access.
type Monad struct {
	api       *openai.Client
	completer chatCompleter
	logger    *logger.Logger
}

// New creates a Monad around a client constructed from the given API key.
// The key is passed in explicitly; nothing is read from the environment here.
func New(apiKey string, log *logger.Logger) *Monad {
	api := openai.NewClient(apiKey)
	return &Monad{
		api:       api,
		completer: api,
		logger:    log,
	}
}

// API returns the underlying OpenAI client. Calls made through it carry the
// full native contract of the client library, with nothing interposed.
func (m *Monad) API() *openai.Client {
	return m.api
}

type request struct {
	model     string
	maxTokens int
}

// Option overrides a default request parameter of AskQuestion.
type Option func(*request)

// WithModel selects the model for a single request.
func WithModel(model string) Option {
	return func(r *request) {
		if model != "" {
			r.model = model
		}
	}
}

// WithMaxTokens limits the completion length for a single request.
func WithMaxTokens(maxTokens int) Option {
	return func(r *request) {
		if maxTokens > 0 {
			r.maxTokens = maxTokens
		}
	}
}

// AskQuestion sends one chat completion request and returns the text of the
// first choice. The request is logged before it is issued and again after a
// successful response. Any error from the client is logged and returned to
// the caller unchanged; there are no retries and no input validation beyond
// what the client library enforces.
func (m *Monad) AskQuestion(ctx context.Context, prompt string, opts ...Option) (string, error) {
	req := request{
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(&req)
	}

	m.logger.LogRequest(req.model, req.maxTokens, prompt)

	resp, err := m.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     req.model,
		MaxTokens: req.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		m.logger.LogFailure(req.model, err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		m.logger.LogFailure(req.model, ErrNoChoices)
		return "", ErrNoChoices
	}

	answer := resp.Choices[0].Message.Content
	m.logger.LogResponse(req.model, answer)

	return answer, nil
}
