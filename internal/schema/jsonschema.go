package schema

import (
	"github.com/invopop/jsonschema"
)

// typePattern matches the spelling accepted by ParseType. Nesting depth is
// not limited by the pattern; ParseType does the full check.
const typePattern = `^(bool|i32|i64|u8|i16|f32|f64|string|self|Object\([A-Za-z_$][A-Za-z0-9_$]*\)|Array\(.+\))$`

// JSONSchema describes a Type as the string it is written as.
func (Type) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     typePattern,
		Description: "bool, i32, i64, u8, i16, f32, f64, string, self, Object(<name>) or Array(<type>)",
		Examples:    []any{"i32", "string", "Object(Player)", "Array(Array(f64))"},
	}
}

// JSONSchema returns the JSON Schema of the schema file format, suitable for
// editor integrations that validate YAML against JSON Schema.
func JSONSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "yaml",
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
	}

	s := r.Reflect(&Object{})
	s.Title = "Accessor schema"
	s.Description = "One class or enum to generate a reflection accessor for."

	return s
}
