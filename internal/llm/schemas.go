package llm

import "github.com/invopop/jsonschema"

// Schema is a named JSON schema sent as a strict response format.
type Schema struct {
	Name        string
	Description string
	Schema      interface{}
}

// GenerateSchema reflects T into a strict JSON schema. Strict mode needs every
// property required and no additional properties, so fields of T must not use
// omitempty.
func GenerateSchema[T any](name, description string) Schema {
	return Schema{
		Name:        name,
		Description: description,
		Schema:      reflectStrict[T](),
	}
}

func reflectStrict[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
