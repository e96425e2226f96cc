package llmprovider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
)

const (
	ProviderAnthropic = "anthropic"

	defaultAnthropicMaxTokens = 1024
)

// AnthropicAdapter adapts the Anthropic Messages API to the Provider interface
type AnthropicAdapter struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicAdapter creates an adapter backed by the official SDK client.
func NewAnthropicAdapter(model string, opts ...option.RequestOption) *AnthropicAdapter {
	client := anthropic.NewClient(opts...)
	return &AnthropicAdapter{client: &client, model: model}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Messages.New(ctx, buildAnthropicParams(a.model, req))
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	parts := make([]Part, 0, len(resp.Content))
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if text := block.AsText().Text; text != "" {
				parts = append(parts, Part{Text: text})
			}
		case "tool_use":
			toolBlock := block.AsToolUse()
			parts = append(parts, Part{FunctionCall: newFunctionCall(toolBlock.ID, toolBlock.Name, string(toolBlock.Input))})
		}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: parts},
		ProviderName: ProviderAnthropic,
		ModelName:    string(resp.Model),
		StopReason:   string(resp.StopReason),
		Usage: &Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
			TotalTokens:  int(resp.Usage.InputTokens + resp.Usage.OutputTokens),
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return ProviderAnthropic
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.model
}

func buildAnthropicParams(model string, req *Request) anthropic.MessageNewParams {
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   maxTokens,
		Messages:    convertToAnthropicMessages(req.Messages),
		Temperature: anthropic.Float(req.Temperature),
	}

	if req.SystemInstruction != nil {
		for _, p := range req.SystemInstruction.Parts {
			if p.Text != "" {
				params.System = append(params.System, anthropic.TextBlockParam{Text: p.Text})
			}
		}
	}

	if len(req.Tools) > 0 {
		params.Tools = convertToAnthropicTools(req.Tools)
	}

	return params
}

func convertToAnthropicMessages(msgs []Message) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(msgs))
	for _, msg := range msgs {
		var blocks []anthropic.ContentBlockParamUnion
		for _, p := range msg.Parts {
			if p.Text != "" {
				blocks = append(blocks, anthropic.NewTextBlock(p.Text))
			}
		}
		if len(blocks) == 0 {
			continue
		}

		if msg.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(blocks...))
		} else {
			messages = append(messages, anthropic.NewUserMessage(blocks...))
		}
	}
	return messages
}

func convertToAnthropicTools(tools []Tool) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		schema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}
		if props, ok := t.Parameters["properties"]; ok {
			schema.Properties = props
		}
		schema.Required = requiredFields(t.Parameters)

		out[i] = anthropic.ToolUnionParamOfTool(schema, t.Name)
		if t.Description != "" {
			out[i].OfTool.Description = anthropic.String(t.Description)
		}
	}
	return out
}

// requiredFields reads the "required" list of a JSON schema map, accepting both
// []string and the []interface{} shape produced by a JSON round-trip.
func requiredFields(schema map[string]interface{}) []string {
	switch req := schema["required"].(type) {
	case []string:
		return req
	case []interface{}:
		out := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// newFunctionCall builds a FunctionCall keeping the raw payload and a best-effort decoded map.
func newFunctionCall(id, name, raw string) *FunctionCall {
	fc := &FunctionCall{ID: id, Name: name, RawArgs: raw}
	if raw != "" {
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &args); err == nil {
			fc.Args = args
		}
	}
	return fc
}
