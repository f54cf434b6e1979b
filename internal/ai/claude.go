package ai

import (
	"context"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/recorder"
)

// ClaudeProvider implements Provider using Anthropic's Claude
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

// NewClaudeProvider reads the API key from CSHARPGEN_ANTHROPIC_KEY or
// ANTHROPIC_API_KEY.
func NewClaudeProvider(model string) (*ClaudeProvider, error) {
	apiKey := os.Getenv("CSHARPGEN_ANTHROPIC_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("CSHARPGEN_ANTHROPIC_KEY or ANTHROPIC_API_KEY environment variable required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}
	return &ClaudeProvider{client: &client, model: model}, nil
}

func (p *ClaudeProvider) Plan(ctx context.Context, req Request) ([]recorder.ActionInContext, error) {
	return plan(ctx, p, req)
}

func (p *ClaudeProvider) name() string { return "Claude" }

func (p *ClaudeProvider) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", err
	}
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", nil
}
