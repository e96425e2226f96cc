package agent

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Tool names known to the agent.
const (
	ToolGenerateSequence   = "generate_sequence"
	ToolRefineSequenceStep = "refine_sequence_step"
	ToolAnalyzeSequence    = "analyze_sequence"
)

// Argument keys filled from the conversation when the model leaves them out.
const (
	ArgUserID     = "user_id"
	ArgSequenceID = "sequence_id"
)

// Arguments is the decoded input of one tool call. The concrete type is
// selected by tool name; GenericArgs covers tools without a typed variant.
type Arguments interface {
	ToolName() string
}

type GenerateSequenceArgs struct {
	Position       string `json:"position" jsonschema_description:"The job position being recruited for."`
	UserID         string `json:"user_id,omitempty" jsonschema_description:"Owner of the sequence."`
	Title          string `json:"title,omitempty" jsonschema_description:"Optional sequence title."`
	AdditionalInfo string `json:"additional_info,omitempty" jsonschema_description:"Anything else worth knowing about the role, company or candidates."`
}

func (GenerateSequenceArgs) ToolName() string { return ToolGenerateSequence }

type RefineStepArgs struct {
	StepID     string `json:"step_id,omitempty" jsonschema_description:"Step to refine. Defaults to the first step of the sequence."`
	Feedback   string `json:"feedback,omitempty" jsonschema_description:"What to change about the step."`
	Content    string `json:"content,omitempty" jsonschema_description:"Replacement content. When set no rewrite is generated."`
	UserID     string `json:"user_id,omitempty" jsonschema_description:"Owner of the sequence."`
	SequenceID string `json:"sequence_id,omitempty" jsonschema_description:"Sequence the step belongs to."`
}

func (RefineStepArgs) ToolName() string { return ToolRefineSequenceStep }

type AnalyzeSequenceArgs struct {
	SequenceID string `json:"sequence_id" jsonschema_description:"Sequence to analyze."`
}

func (AnalyzeSequenceArgs) ToolName() string { return ToolAnalyzeSequence }

// GenericArgs carries the raw map of a tool that has no typed variant.
type GenericArgs struct {
	Tool   string
	Values map[string]any
}

func (g GenericArgs) ToolName() string { return g.Tool }

// parseArguments normalizes whatever the model sent into an argument map.
func parseArguments(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out, nil
	case string:
		return decodeObject([]byte(v))
	case []byte:
		return decodeObject(v)
	case json.RawMessage:
		return decodeObject(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		return decodeObject(b)
	}
}

func decodeObject(b []byte) (map[string]any, error) {
	if strings.TrimSpace(string(b)) == "" {
		return map[string]any{}, nil
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// applyDefaults fills user_id for tools that declare it and sequence_id for
// sequence-scoped tools, only when the model left them blank.
func applyDefaults(def Definition, args map[string]any, req InvocationRequest) {
	if req.UserID != "" && declaresProperty(def.Schema, ArgUserID) && isBlank(args[ArgUserID]) {
		args[ArgUserID] = req.UserID
	}
	if req.ActiveSequenceID != "" && def.SequenceScoped && isBlank(args[ArgSequenceID]) {
		args[ArgSequenceID] = req.ActiveSequenceID
	}
}

func declaresProperty(schema map[string]any, name string) bool {
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = props[name]
	return ok
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// validateArguments checks required fields and primitive property types.
func validateArguments(schema map[string]any, args map[string]any) error {
	for _, field := range requiredFields(schema) {
		if isBlank(args[field]) {
			return fmt.Errorf("%w: missing required field %q", ErrInvalidArguments, field)
		}
	}

	props, _ := schema["properties"].(map[string]any)
	for key, val := range args {
		prop, ok := props[key].(map[string]any)
		if !ok || val == nil {
			continue
		}
		want, _ := prop["type"].(string)
		if !matchesType(want, val) {
			return fmt.Errorf("%w: field %q must be of type %s", ErrInvalidArguments, key, want)
		}
	}
	return nil
}

func requiredFields(schema map[string]any) []string {
	switch req := schema["required"].(type) {
	case []string:
		return req
	case []any:
		out := make([]string, 0, len(req))
		for _, r := range req {
			if s, ok := r.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func matchesType(want string, v any) bool {
	switch want {
	case "string":
		_, ok := v.(string)
		return ok
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		_, ok := v.(float64)
		return ok
	case "integer":
		f, ok := v.(float64)
		return ok && f == math.Trunc(f)
	case "object":
		_, ok := v.(map[string]any)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	default:
		return true
	}
}

// decodeArguments selects the typed variant for name.
func decodeArguments(name string, args map[string]any) (Arguments, error) {
	switch name {
	case ToolGenerateSequence:
		return decodeInto[GenerateSequenceArgs](args)
	case ToolRefineSequenceStep:
		return decodeInto[RefineStepArgs](args)
	case ToolAnalyzeSequence:
		return decodeInto[AnalyzeSequenceArgs](args)
	default:
		return GenericArgs{Tool: name, Values: args}, nil
	}
}

func decodeInto[T Arguments](args map[string]any) (Arguments, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return out, nil
}
