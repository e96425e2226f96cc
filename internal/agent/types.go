package agent

import (
	"context"
	"encoding/json"

	"outreach-agent/pkg/llmprovider"
)

// HandlerFunc executes a tool with arguments already decoded into the tool's typed variant.
type HandlerFunc func(ctx context.Context, args Arguments) (any, error)

// Definition describes a tool the model may call.
type Definition struct {
	Name        string
	Description string
	// Schema is the JSON schema of the tool input, see ReflectSchema.
	Schema  map[string]any
	Handler HandlerFunc
	// SequenceScoped tools receive the active sequence id when the model omits it.
	SequenceScoped bool
}

// WireTool is the projection of a Definition that may leave the process.
type WireTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// InvocationRequest is one tool call issued by the model.
// Arguments may be a decoded map, a JSON string, raw bytes or nil.
type InvocationRequest struct {
	Name      string
	Arguments any

	// Contextual identifiers used to fill arguments the model left out.
	UserID           string
	ActiveSequenceID string
}

// SequenceActivator is implemented by tool results that make a sequence the
// active one, so later calls of the same turn are scoped to it.
type SequenceActivator interface {
	ActivatedSequenceID() string
}

// InvocationResult holds exactly one of Result or Error.
type InvocationResult struct {
	Result any
	Error  string

	// Arguments are the effective arguments after decoding and defaulting.
	Arguments map[string]any `json:"-"`
}

// Failed reports whether the invocation produced an error.
func (r InvocationResult) Failed() bool {
	return r.Error != ""
}

// MarshalJSON emits {"error": ...} or {"result": ...}, never both.
func (r InvocationResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Error})
	}
	return json.Marshal(struct {
		Result any `json:"result"`
	}{r.Result})
}

// ToFunctionDefinitions converts wire tools to the provider-neutral tool format.
func ToFunctionDefinitions(tools []WireTool) []llmprovider.Tool {
	defs := make([]llmprovider.Tool, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, llmprovider.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.InputSchema,
		})
	}
	return defs
}
