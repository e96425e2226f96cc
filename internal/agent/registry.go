package agent

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the tools advertised to the model. It is filled at startup
// and read concurrently afterwards; there is no unregister.
type Registry struct {
	mu    sync.RWMutex
	order []string
	tools map[string]Definition
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Definition)}
}

// Register adds def. A blank name, a nil handler or a name already taken
// is rejected and leaves the registry untouched.
func (r *Registry) Register(def Definition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidToolDefinition)
	}
	if def.Handler == nil {
		return fmt.Errorf("%w: tool %q has no handler", ErrInvalidToolDefinition, def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("%w: tool %q already registered", ErrInvalidToolDefinition, def.Name)
	}
	if def.Schema == nil {
		def.Schema = map[string]any{"type": "object", "properties": map[string]any{}}
	}
	r.tools[def.Name] = def
	r.order = append(r.order, def.Name)
	return nil
}

// List returns the wire projection of every tool in registration order.
func (r *Registry) List() []WireTool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]WireTool, 0, len(r.order))
	for _, name := range r.order {
		def := r.tools[name]
		out = append(out, WireTool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.Schema,
		})
	}
	return out
}

// Resolve looks a tool up by name.
func (r *Registry) Resolve(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.tools[name]
	return def, ok
}
