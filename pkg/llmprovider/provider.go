package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "anthropic", "openai")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is the narrow view the agent layer depends on. Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Tools             []Tool
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant"
	Parts []Part
}

// Part represents a message part (text or function call)
type Part struct {
	Text         string
	FunctionCall *FunctionCall
}

// Tool represents a function declaration
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]interface{} // JSON Schema
}

// FunctionCall represents a model's function call request.
// RawArgs keeps the provider's argument payload verbatim; Args is its decoded form
// and is nil when the payload was not a JSON object.
type FunctionCall struct {
	ID      string
	Name    string
	Args    map[string]interface{}
	RawArgs string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	StopReason   string
	Usage        *Usage
}

// Text concatenates every text part of the response in order.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	var text string
	for _, p := range r.Content.Parts {
		text += p.Text
	}
	return text
}

// FunctionCalls returns the function-call parts of the response in the order the model emitted them.
func (r *Response) FunctionCalls() []FunctionCall {
	if r == nil {
		return nil
	}
	var calls []FunctionCall
	for _, p := range r.Content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, *p.FunctionCall)
		}
	}
	return calls
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// TextMessage is a shorthand for a single-part text message.
func TextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Text: text}}}
}
