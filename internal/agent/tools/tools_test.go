package tools_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/agent"
	"outreach-agent/internal/agent/tools"
	"outreach-agent/internal/sequence"
	"outreach-agent/internal/session"
	"outreach-agent/pkg/log"
)

// mockSequenceUseCase
type mockSequenceUseCase struct {
	sequence.UseCase
	seq       sequence.Sequence
	createIn  sequence.CreateInput
	refineIn  sequence.RefineStepInput
	createErr error
}

func (m *mockSequenceUseCase) Create(ctx context.Context, in sequence.CreateInput) (sequence.Sequence, error) {
	m.createIn = in
	if m.createErr != nil {
		return sequence.Sequence{}, m.createErr
	}
	return m.seq, nil
}

func (m *mockSequenceUseCase) Detail(ctx context.Context, id string) (sequence.Sequence, error) {
	if id != m.seq.ID {
		return sequence.Sequence{}, sequence.ErrSequenceNotFound
	}
	return m.seq, nil
}

func (m *mockSequenceUseCase) RefineStep(ctx context.Context, in sequence.RefineStepInput) (sequence.Step, error) {
	m.refineIn = in
	st := m.seq.Steps[0]
	st.Content = in.Content
	return st, nil
}

func (m *mockSequenceUseCase) Analyze(ctx context.Context, id string) (sequence.Analysis, error) {
	return sequence.Analysis{SequenceID: id, StepCount: len(m.seq.Steps)}, nil
}

// mockSessionUseCase
type mockSessionUseCase struct {
	session.UseCase
	patches map[string][]session.Patch
}

func (m *mockSessionUseCase) Update(ctx context.Context, userID string, p session.Patch) (session.SessionContext, error) {
	if m.patches == nil {
		m.patches = map[string][]session.Patch{}
	}
	m.patches[userID] = append(m.patches[userID], p)
	return session.SessionContext{UserID: userID}, nil
}

type fixture struct {
	seqs       *mockSequenceUseCase
	sessions   *mockSessionUseCase
	registry   *agent.Registry
	dispatcher *agent.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		seqs: &mockSequenceUseCase{seq: sequence.Sequence{
			ID: "seq-1", UserID: "u1", Position: "SRE", Title: "Recruiting for SRE",
			Steps: []sequence.Step{{ID: "st-1", SequenceID: "seq-1", Title: "Intro"}, {ID: "st-2", SequenceID: "seq-1"}},
		}},
		sessions: &mockSessionUseCase{},
		registry: agent.NewRegistry(),
	}
	require.NoError(t, tools.Register(f.registry, tools.Deps{
		Sequences: f.seqs,
		Sessions:  f.sessions,
		Logger:    log.NewNop(),
	}))
	f.dispatcher = agent.NewDispatcher(f.registry, nil, log.NewNop())
	return f
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	names := make([]string, 0)
	required := map[string]any{}
	for _, w := range f.registry.List() {
		names = append(names, w.Name)
		required[w.Name] = w.InputSchema["required"]
	}
	assert.Equal(t, []string{agent.ToolGenerateSequence, agent.ToolRefineSequenceStep, agent.ToolAnalyzeSequence}, names)
	assert.ElementsMatch(t, []any{"position"}, toAny(required[agent.ToolGenerateSequence]))
	assert.Empty(t, toAny(required[agent.ToolRefineSequenceStep]))
	assert.ElementsMatch(t, []any{"sequence_id"}, toAny(required[agent.ToolAnalyzeSequence]))

	err := tools.Register(f.registry, tools.Deps{Sequences: f.seqs, Sessions: f.sessions, Logger: log.NewNop()})
	assert.ErrorIs(t, err, agent.ErrInvalidToolDefinition, "registering twice is rejected")
}

func toAny(v any) []any {
	switch r := v.(type) {
	case []any:
		return r
	case []string:
		out := make([]any, len(r))
		for i, s := range r {
			out[i] = s
		}
		return out
	}
	return nil
}

func TestGenerateSequence(t *testing.T) {
	f := newFixture(t)

	res := f.dispatcher.Dispatch(context.Background(), agent.InvocationRequest{
		Name:      agent.ToolGenerateSequence,
		Arguments: `{"position":"SRE","additional_info":"remote"}`,
		UserID:    "u1",
	})
	require.False(t, res.Failed(), res.Error)
	assert.Equal(t, sequence.CreateInput{UserID: "u1", Position: "SRE", AdditionalInfo: "remote"}, f.seqs.createIn)

	patches := f.sessions.patches["u1"]
	require.Len(t, patches, 1)
	assert.Equal(t, "seq-1", *patches[0].ActiveSequenceID)
	assert.Equal(t, agent.ToolGenerateSequence, *patches[0].LastAction)
	assert.Equal(t, "SRE", patches[0].ContextData[session.ContextKeyPosition])
}

func TestGenerateSequence_MissingPosition(t *testing.T) {
	f := newFixture(t)

	res := f.dispatcher.Dispatch(context.Background(), agent.InvocationRequest{
		Name:      agent.ToolGenerateSequence,
		Arguments: map[string]any{},
		UserID:    "u1",
	})
	assert.True(t, res.Failed())
	assert.Contains(t, res.Error, "position")
	assert.Empty(t, f.seqs.createIn.Position)
}

func TestRefineStep(t *testing.T) {
	f := newFixture(t)

	res := f.dispatcher.Dispatch(context.Background(), agent.InvocationRequest{
		Name:             agent.ToolRefineSequenceStep,
		Arguments:        map[string]any{"feedback": "warmer", "content": "new body"},
		UserID:           "u1",
		ActiveSequenceID: "seq-1",
	})
	require.False(t, res.Failed(), res.Error)
	assert.Equal(t, "seq-1", f.seqs.refineIn.SequenceID, "active sequence is injected")
	assert.Empty(t, f.seqs.refineIn.StepID)

	patches := f.sessions.patches["u1"]
	require.Len(t, patches, 1)
	assert.Equal(t, "warmer", patches[0].ContextData[session.ContextKeyLastFeedback])
}

func TestAnalyzeSequence(t *testing.T) {
	f := newFixture(t)

	res := f.dispatcher.Dispatch(context.Background(), agent.InvocationRequest{
		Name:             agent.ToolAnalyzeSequence,
		Arguments:        nil,
		ActiveSequenceID: "seq-1",
	})
	require.False(t, res.Failed(), res.Error)
	analysis, ok := res.Result.(sequence.Analysis)
	require.True(t, ok)
	assert.Equal(t, 2, analysis.StepCount)
	assert.Len(t, f.sessions.patches["u1"], 1, "session of the sequence owner is touched")

	res = f.dispatcher.Dispatch(context.Background(), agent.InvocationRequest{
		Name:      agent.ToolAnalyzeSequence,
		Arguments: map[string]any{"sequence_id": "missing"},
	})
	assert.True(t, res.Failed())
	assert.Contains(t, res.Error, "sequence not found")
}
