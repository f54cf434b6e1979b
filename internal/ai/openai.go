package ai

import (
	"context"
	"os"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"github.com/v0xg/csharpgen/internal/recorder"
)

// OpenAIProvider implements Provider using OpenAI
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider reads the API key from CSHARPGEN_OPENAI_KEY or
// OPENAI_API_KEY.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("CSHARPGEN_OPENAI_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("CSHARPGEN_OPENAI_KEY or OPENAI_API_KEY environment variable required")
	}
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIProvider{client: openai.NewClient(apiKey), model: model}, nil
}

func (p *OpenAIProvider) Plan(ctx context.Context, req Request) ([]recorder.ActionInContext, error) {
	return plan(ctx, p, req)
}

func (p *OpenAIProvider) name() string { return "OpenAI" }

func (p *OpenAIProvider) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: 4096,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
