// Package ai plans a recorded session from a natural-language request using
// a hosted language model.
package ai

import (
	"context"

	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/logger"
	"github.com/v0xg/csharpgen/internal/recorder"
)

// Provider turns a request into the actions of a session starting at
// req.URL. The first two actions always open the page and navigate it.
type Provider interface {
	Plan(ctx context.Context, req Request) ([]recorder.ActionInContext, error)
}

// completer sends one system and user prompt pair and returns the text reply.
type completer interface {
	complete(ctx context.Context, system, user string) (string, error)
	name() string
}

// NewProvider creates the provider registered under name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, errors.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}

func plan(ctx context.Context, c completer, req Request) ([]recorder.ActionInContext, error) {
	userPrompt, err := buildUserPrompt(req)
	if err != nil {
		return nil, err
	}
	response, err := c.complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, errors.Wrapf(err, "%s API error", c.name())
	}
	if response == "" {
		return nil, errors.Errorf("empty response from %s", c.name())
	}
	logger.Debug(ctx, "%s response: %s", c.name(), response)

	actions, err := parseActions(response)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s response", c.name())
	}
	return withStart(req.URL, actions), nil
}
