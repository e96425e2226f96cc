package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/agent/output"
	"outreach-agent/internal/notify"
	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/internal/user"
	"outreach-agent/pkg/llmprovider"
)

// GenerateResponse makes a single model call over history, dispatches every
// tool call in the order the model issued them and returns the sanitized reply.
// Model failures are returned to the caller; tool failures end up in ToolCalls.
func (o *Orchestrator) GenerateResponse(ctx context.Context, history []Turn, info user.Info, snap *session.Snapshot) (output.Processed, error) {
	anchor := latestUserContent(history)

	req := &llmprovider.Request{
		SystemInstruction: ptr(llmprovider.TextMessage(RoleSystem, o.systemPrompt(ctx, info, snap))),
		Messages:          convertHistory(history),
		Tools:             agent.ToFunctionDefinitions(o.registry.List()),
		Temperature:       o.cfg.Temperature,
		MaxTokens:         o.cfg.MaxTokens,
	}

	resp, err := o.llm.GenerateContent(ctx, req)
	if err != nil {
		o.l.Errorf(ctx, "internal.agent.orchestrator.GenerateResponse: %v", err)
		return output.Processed{}, fmt.Errorf("generate response: %w", err)
	}

	activeSequenceID := ""
	if snap != nil {
		activeSequenceID = snap.ActiveSequenceID
	}

	calls := make([]any, 0)
	for _, fc := range resp.FunctionCalls() {
		var args any = fc.Args
		if fc.Args == nil {
			args = fc.RawArgs
		}

		o.notifier.Emit(ctx, info.UserID, notify.EventToolCall, ToolCallEvent{Name: fc.Name, Arguments: args})
		o.l.Info(ctx, "dispatching tool", "tool", fc.Name, "user_id", info.UserID)

		res := o.dispatcher.Dispatch(ctx, agent.InvocationRequest{
			Name:             fc.Name,
			Arguments:        args,
			UserID:           info.UserID,
			ActiveSequenceID: activeSequenceID,
		})

		// A sequence created earlier in this turn is the target of later calls.
		if act, ok := res.Result.(agent.SequenceActivator); ok && !res.Failed() {
			activeSequenceID = act.ActivatedSequenceID()
		}

		effective := res.Arguments
		if effective == nil {
			effective = fc.Args
		}
		calls = append(calls, output.ToolCall{Name: fc.Name, Arguments: effective, Result: res})
	}

	return output.Process(resp.Text(), calls, anchor), nil
}

// systemPrompt layers the session block, the live step listing of the active
// sequence and the company lines on top of SystemPrompt.
func (o *Orchestrator) systemPrompt(ctx context.Context, info user.Info, snap *session.Snapshot) string {
	prompt := SystemPrompt
	if snap != nil {
		prompt = session.ContextAwarePrompt(prompt, *snap)
	}

	if snap != nil && snap.ActiveSequence != nil && o.steps != nil {
		steps, err := o.steps.Steps(ctx, snap.ActiveSequence.ID)
		switch {
		case errors.Is(err, sequence.ErrSequenceNotFound):
			// deleted since the snapshot was taken
		case err != nil:
			o.l.Warnf(ctx, "internal.agent.orchestrator.systemPrompt: steps of %s: %v", snap.ActiveSequence.ID, err)
		default:
			prompt += sequenceBlock(snap.ActiveSequence, steps)
		}
	}

	if block := companyBlock(info); block != "" {
		prompt += "\n" + block
	}
	return prompt
}

func sequenceBlock(seq *session.ActiveSequenceSummary, steps []sequence.Step) string {
	listed := make([]string, 0, len(steps))
	for _, st := range steps {
		listed = append(listed, fmt.Sprintf("%s (ID: %s)", st.Title, st.ID))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nACTIVE SEQUENCE: %s (ID: %s)\n", seq.Position, seq.ID)
	fmt.Fprintf(&b, "STEPS: %s\n", strings.Join(listed, ", "))
	b.WriteString(activeSequenceInstructions)
	return b.String()
}

func companyBlock(info user.Info) string {
	if info.CompanyName == "" && info.CompanyDescription == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nCOMPANY CONTEXT:\n")
	if info.CompanyName != "" {
		fmt.Fprintf(&b, "- Company Name: %s\n", info.CompanyName)
	}
	if info.CompanyDescription != "" {
		fmt.Fprintf(&b, "- Company Description: %s\n", info.CompanyDescription)
	}
	return b.String()
}

func latestUserContent(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i].Content
		}
	}
	return ""
}

// convertHistory keeps user and assistant turns. Empty turns are dropped and
// system turns are folded into the preceding assistant turn.
func convertHistory(history []Turn) []llmprovider.Message {
	msgs := make([]llmprovider.Message, 0, len(history))
	for _, t := range history {
		if t.Content == "" {
			continue
		}
		switch t.Role {
		case RoleSystem:
			if n := len(msgs); n > 0 && msgs[n-1].Role == RoleAssistant {
				last := &msgs[n-1].Parts[len(msgs[n-1].Parts)-1]
				last.Text += "\n\n" + systemUpdatePrefix + t.Content
				continue
			}
			msgs = append(msgs, llmprovider.TextMessage(RoleAssistant, systemUpdatePrefix+t.Content))
		case RoleUser, RoleAssistant:
			msgs = append(msgs, llmprovider.TextMessage(t.Role, t.Content))
		}
	}
	return msgs
}

func ptr[T any](v T) *T { return &v }
