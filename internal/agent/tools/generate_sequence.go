package tools

import (
	"context"
	"fmt"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

// GenerateSequenceTool creates a sequence and makes it the active one.
type GenerateSequenceTool struct {
	sequences sequence.UseCase
	sessions  session.UseCase
	l         log.Logger
}

func NewGenerateSequenceTool(seqs sequence.UseCase, sessions session.UseCase, l log.Logger) *GenerateSequenceTool {
	return &GenerateSequenceTool{sequences: seqs, sessions: sessions, l: l}
}

func (t *GenerateSequenceTool) Definition() agent.Definition {
	return agent.Definition{
		Name:        agent.ToolGenerateSequence,
		Description: "Generate a new multi-step recruiting outreach sequence for a job position. Use it only when the user asks for a new sequence.",
		Schema:      agent.ReflectSchema[agent.GenerateSequenceArgs](),
		Handler:     t.Execute,
	}
}

type generateResult struct {
	Message  string            `json:"message"`
	Sequence sequence.Sequence `json:"sequence"`
}

func (r generateResult) ActivatedSequenceID() string { return r.Sequence.ID }

func (t *GenerateSequenceTool) Execute(ctx context.Context, a agent.Arguments) (any, error) {
	args, ok := a.(agent.GenerateSequenceArgs)
	if !ok {
		return nil, unexpectedArgs(agent.ToolGenerateSequence, a)
	}

	seq, err := t.sequences.Create(ctx, sequence.CreateInput{
		UserID:         args.UserID,
		Title:          args.Title,
		Position:       args.Position,
		AdditionalInfo: args.AdditionalInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("generate sequence: %w", err)
	}

	_, err = t.sessions.Update(ctx, seq.UserID, session.Patch{
		ActiveSequenceID: session.String(seq.ID),
		LastAction:       session.String(agent.ToolGenerateSequence),
		ContextData: map[string]any{
			session.ContextKeyPosition: seq.Position,
			session.ContextKeyLastTool: agent.ToolGenerateSequence,
		},
	})
	if err != nil {
		// The sequence exists; only the conversational pointer is stale.
		t.l.Warnf(ctx, "tools.GenerateSequence sessions.Update: %v", err)
	}

	return generateResult{
		Message:  fmt.Sprintf("Created a %d-step sequence for %s", len(seq.Steps), seq.Position),
		Sequence: seq,
	}, nil
}
