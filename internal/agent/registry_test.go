package agent_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-agent/internal/agent"
)

func noopHandler(ctx context.Context, args agent.Arguments) (any, error) {
	return "ok", nil
}

func TestRegistry(t *testing.T) {
	t.Run("register and resolve", func(t *testing.T) {
		r := agent.NewRegistry()
		require.NoError(t, r.Register(agent.Definition{Name: "generate_sequence", Description: "d", Handler: noopHandler}))

		def, ok := r.Resolve("generate_sequence")
		require.True(t, ok)
		assert.Equal(t, "generate_sequence", def.Name)

		_, ok = r.Resolve("frobnicate")
		assert.False(t, ok)
	})

	t.Run("duplicate name rejected and first kept", func(t *testing.T) {
		r := agent.NewRegistry()
		require.NoError(t, r.Register(agent.Definition{Name: "analyze_sequence", Description: "first", Handler: noopHandler}))

		err := r.Register(agent.Definition{Name: "analyze_sequence", Description: "second", Handler: noopHandler})
		assert.ErrorIs(t, err, agent.ErrInvalidToolDefinition)

		def, _ := r.Resolve("analyze_sequence")
		assert.Equal(t, "first", def.Description)
		assert.Len(t, r.List(), 1)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		r := agent.NewRegistry()
		assert.ErrorIs(t, r.Register(agent.Definition{Name: "  ", Handler: noopHandler}), agent.ErrInvalidToolDefinition)
	})

	t.Run("missing handler rejected", func(t *testing.T) {
		r := agent.NewRegistry()
		assert.ErrorIs(t, r.Register(agent.Definition{Name: "refine_sequence_step"}), agent.ErrInvalidToolDefinition)
		_, ok := r.Resolve("refine_sequence_step")
		assert.False(t, ok)
	})

	t.Run("list keeps registration order and hides handlers", func(t *testing.T) {
		r := agent.NewRegistry()
		names := []string{"generate_sequence", "refine_sequence_step", "analyze_sequence"}
		for _, n := range names {
			require.NoError(t, r.Register(agent.Definition{
				Name:    n,
				Handler: noopHandler,
				Schema:  agent.ReflectSchema[agent.AnalyzeSequenceArgs](),
			}))
		}

		tools := r.List()
		require.Len(t, tools, 3)
		for i, tool := range tools {
			assert.Equal(t, names[i], tool.Name)
		}

		raw, err := json.Marshal(tools)
		require.NoError(t, err)
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		for _, tool := range decoded {
			assert.ElementsMatch(t, []string{"name", "description", "input_schema"}, keys(tool))
		}
	})

	t.Run("concurrent readers", func(t *testing.T) {
		r := agent.NewRegistry()
		require.NoError(t, r.Register(agent.Definition{Name: "generate_sequence", Handler: noopHandler}))

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = r.Resolve("generate_sequence")
				_ = r.List()
			}()
		}
		wg.Wait()
	})
}

func TestToFunctionDefinitions(t *testing.T) {
	r := agent.NewRegistry()
	schema := agent.ReflectSchema[agent.GenerateSequenceArgs]()
	require.NoError(t, r.Register(agent.Definition{Name: "generate_sequence", Description: "Draft", Schema: schema, Handler: noopHandler}))

	defs := agent.ToFunctionDefinitions(r.List())
	require.Len(t, defs, 1)
	assert.Equal(t, "generate_sequence", defs[0].Name)
	assert.Equal(t, "Draft", defs[0].Description)
	assert.Equal(t, schema, defs[0].Parameters)
}

func TestReflectSchema(t *testing.T) {
	schema := agent.ReflectSchema[agent.GenerateSequenceArgs]()

	assert.Equal(t, "object", schema["type"])
	assert.NotContains(t, schema, "$schema")
	assert.NotContains(t, schema, "$id")

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"position", "user_id", "title", "additional_info"}, keys(props))
	assert.Equal(t, []any{"position"}, schema["required"])

	refine := agent.ReflectSchema[agent.RefineStepArgs]()
	assert.Empty(t, refine["required"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
