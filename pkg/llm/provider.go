package llm

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the disabled provider when no usable
// credential/backend was configured. Callers treat it like any other
// provider failure: fall back to the local synthesizer.
var ErrNotConfigured = errors.New("llm provider not configured")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// Disabled is an LLMProvider that always fails fast. It stands in when no
// API key is configured, so every request deterministically takes the
// local fallback path instead of crashing the process.
type Disabled struct{}

var _ LLMProvider = Disabled{}

func NewDisabled() Disabled {
	return Disabled{}
}

func (Disabled) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	return "", ErrNotConfigured
}
