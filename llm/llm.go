package llm

import "context"

// Client interface for the managed completion surface
type Client interface {
	AskQuestion(ctx context.Context, prompt string, opts ...Option) (string, error)
}
