package agent

import (
	"context"
	"fmt"

	"outreach-agent/internal/notify"
	"outreach-agent/pkg/log"
)

// ExecutionEvent is the payload of tool_execution_complete.
type ExecutionEvent struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Dispatcher runs model-issued tool calls against the registry. Every call
// ends in an InvocationResult; handler errors and panics never escape.
type Dispatcher struct {
	registry *Registry
	notifier notify.Notifier
	l        log.Logger
}

// NewDispatcher creates a Dispatcher. A nil notifier discards events.
func NewDispatcher(registry *Registry, notifier notify.Notifier, l log.Logger) *Dispatcher {
	if notifier == nil {
		notifier = notify.Nop()
	}
	return &Dispatcher{registry: registry, notifier: notifier, l: l}
}

// Dispatch resolves, decodes, defaults and invokes one tool call. Every
// outcome, failures included, is announced with tool_execution_complete.
func (d *Dispatcher) Dispatch(ctx context.Context, req InvocationRequest) InvocationResult {
	def, ok := d.registry.Resolve(req.Name)
	if req.Name == "" || !ok {
		d.l.Warnf(ctx, "internal.agent.Dispatch: tool %q not found", req.Name)
		return d.fail(ctx, req, fmt.Sprintf("tool '%s' not found", req.Name), nil)
	}

	args, err := parseArguments(req.Arguments)
	if err != nil {
		d.l.Warnf(ctx, "internal.agent.Dispatch: %s: %v", req.Name, err)
		return d.fail(ctx, req, fmt.Sprintf("Error executing tool '%s': %v", req.Name, err), nil)
	}

	applyDefaults(def, args, req)

	typed, err := d.decode(def, args)
	if err != nil {
		d.l.Warnf(ctx, "internal.agent.Dispatch: %s: %v", req.Name, err)
		return d.fail(ctx, req, fmt.Sprintf("Error executing tool '%s': %v", req.Name, err), args)
	}

	result, err := invoke(ctx, def.Handler, typed)
	if err != nil {
		d.l.Error(ctx, "tool execution failed", "tool", req.Name, "error", err.Error())
		return d.fail(ctx, req, fmt.Sprintf("Error executing tool '%s': %v", req.Name, err), args)
	}

	d.l.Info(ctx, "tool executed", "tool", req.Name)
	d.notifier.Emit(ctx, req.UserID, notify.EventToolExecutionComplete, ExecutionEvent{
		Name:    req.Name,
		Success: true,
	})
	return InvocationResult{Result: result, Arguments: args}
}

func (d *Dispatcher) fail(ctx context.Context, req InvocationRequest, msg string, args map[string]any) InvocationResult {
	d.notifier.Emit(ctx, req.UserID, notify.EventToolExecutionComplete, ExecutionEvent{
		Name:    req.Name,
		Success: false,
		Error:   msg,
	})
	return InvocationResult{Error: msg, Arguments: args}
}

func (d *Dispatcher) decode(def Definition, args map[string]any) (Arguments, error) {
	if err := validateArguments(def.Schema, args); err != nil {
		return nil, err
	}
	return decodeArguments(def.Name, args)
}

func invoke(ctx context.Context, h HandlerFunc, args Arguments) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, args)
}
