package agent

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ReflectSchema derives the input schema of a tool from its argument struct.
// Fields without omitempty become required.
func ReflectSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}
	var v T
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		panic("agent: reflect schema: " + err.Error())
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("agent: reflect schema: " + err.Error())
	}
	delete(out, "$schema")
	delete(out, "$id")
	return out
}
