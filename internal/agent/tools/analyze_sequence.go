package tools

import (
	"context"
	"fmt"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

// AnalyzeSequenceTool reports on the quality of a sequence.
type AnalyzeSequenceTool struct {
	sequences sequence.UseCase
	sessions  session.UseCase
	l         log.Logger
}

func NewAnalyzeSequenceTool(seqs sequence.UseCase, sessions session.UseCase, l log.Logger) *AnalyzeSequenceTool {
	return &AnalyzeSequenceTool{sequences: seqs, sessions: sessions, l: l}
}

func (t *AnalyzeSequenceTool) Definition() agent.Definition {
	return agent.Definition{
		Name:           agent.ToolAnalyzeSequence,
		Description:    "Analyze a recruiting sequence and suggest improvements to length, personalization and calls-to-action.",
		Schema:         agent.ReflectSchema[agent.AnalyzeSequenceArgs](),
		Handler:        t.Execute,
		SequenceScoped: true,
	}
}

func (t *AnalyzeSequenceTool) Execute(ctx context.Context, a agent.Arguments) (any, error) {
	args, ok := a.(agent.AnalyzeSequenceArgs)
	if !ok {
		return nil, unexpectedArgs(agent.ToolAnalyzeSequence, a)
	}

	seq, err := t.sequences.Detail(ctx, args.SequenceID)
	if err != nil {
		return nil, fmt.Errorf("analyze sequence: %w", err)
	}
	analysis, err := t.sequences.Analyze(ctx, seq.ID)
	if err != nil {
		return nil, fmt.Errorf("analyze sequence: %w", err)
	}

	_, err = t.sessions.Update(ctx, seq.UserID, session.Patch{
		LastAction:  session.String(agent.ToolAnalyzeSequence),
		ContextData: map[string]any{session.ContextKeyLastTool: agent.ToolAnalyzeSequence},
	})
	if err != nil {
		t.l.Warnf(ctx, "tools.AnalyzeSequence sessions.Update: %v", err)
	}

	return analysis, nil
}
