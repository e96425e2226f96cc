package llmprovider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const ProviderOpenAI = "openai"

// OpenAIAdapter adapts the OpenAI Chat Completions API to the Provider interface
type OpenAIAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdapter creates an adapter backed by the official SDK client.
func NewOpenAIAdapter(model string, opts ...option.RequestOption) *OpenAIAdapter {
	client := openai.NewClient(opts...)
	return &OpenAIAdapter{client: &client, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Chat.Completions.New(ctx, buildOpenAIParams(a.model, req))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	parts := make([]Part, 0, len(choice.Message.ToolCalls)+1)
	if choice.Message.Content != "" {
		parts = append(parts, Part{Text: choice.Message.Content})
	}
	for _, tc := range choice.Message.ToolCalls {
		parts = append(parts, Part{FunctionCall: newFunctionCall(tc.ID, tc.Function.Name, tc.Function.Arguments)})
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: ProviderOpenAI,
		ModelName:    resp.Model,
		StopReason:   choice.FinishReason,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return ProviderOpenAI
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

func buildOpenAIParams(model string, req *Request) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.SystemInstruction != nil {
		if text := joinText(req.SystemInstruction.Parts); text != "" {
			messages = append(messages, openai.SystemMessage(text))
		}
	}
	for _, msg := range req.Messages {
		text := joinText(msg.Parts)
		if text == "" {
			continue
		}
		if msg.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(text))
		} else {
			messages = append(messages, openai.UserMessage(text))
		}
	}

	params := openai.ChatCompletionNewParams{
		Messages:    messages,
		Model:       model,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	if len(req.Tools) > 0 {
		tools := make([]openai.ChatCompletionToolParam, len(req.Tools))
		for i, t := range req.Tools {
			tools[i] = openai.ChatCompletionToolParam{
				Type: "function",
				Function: openai.FunctionDefinitionParam{
					Name:        t.Name,
					Description: openai.String(t.Description),
					Parameters:  t.Parameters,
				},
			}
		}
		params.Tools = tools
	}

	return params
}

func joinText(parts []Part) string {
	var text string
	for _, p := range parts {
		text += p.Text
	}
	return text
}
