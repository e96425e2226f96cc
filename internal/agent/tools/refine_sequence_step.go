package tools

import (
	"context"
	"fmt"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

// RefineStepTool rewrites one step of a sequence.
type RefineStepTool struct {
	sequences sequence.UseCase
	sessions  session.UseCase
	l         log.Logger
}

func NewRefineStepTool(seqs sequence.UseCase, sessions session.UseCase, l log.Logger) *RefineStepTool {
	return &RefineStepTool{sequences: seqs, sessions: sessions, l: l}
}

func (t *RefineStepTool) Definition() agent.Definition {
	return agent.Definition{
		Name: agent.ToolRefineSequenceStep,
		Description: "Refine one step of the active sequence from the user's feedback, or replace its content. " +
			"Use the step ids listed in the system prompt; without a step id the first step is refined.",
		Schema:         agent.ReflectSchema[agent.RefineStepArgs](),
		Handler:        t.Execute,
		SequenceScoped: true,
	}
}

type refineResult struct {
	Message string        `json:"message"`
	Step    sequence.Step `json:"step"`
}

func (t *RefineStepTool) Execute(ctx context.Context, a agent.Arguments) (any, error) {
	args, ok := a.(agent.RefineStepArgs)
	if !ok {
		return nil, unexpectedArgs(agent.ToolRefineSequenceStep, a)
	}

	step, err := t.sequences.RefineStep(ctx, sequence.RefineStepInput{
		SequenceID: args.SequenceID,
		StepID:     args.StepID,
		Feedback:   args.Feedback,
		Content:    args.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("refine step: %w", err)
	}

	if args.UserID != "" {
		data := map[string]any{session.ContextKeyLastTool: agent.ToolRefineSequenceStep}
		if args.Feedback != "" {
			data[session.ContextKeyLastFeedback] = args.Feedback
		}
		_, err := t.sessions.Update(ctx, args.UserID, session.Patch{
			ActiveSequenceID: session.String(step.SequenceID),
			LastAction:       session.String(agent.ToolRefineSequenceStep),
			ContextData:      data,
		})
		if err != nil {
			t.l.Warnf(ctx, "tools.RefineStep sessions.Update: %v", err)
		}
	}

	return refineResult{
		Message: fmt.Sprintf("Updated step %q", step.Title),
		Step:    step,
	}, nil
}
