package schema

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type is the recursive type of a schema field.
//
// Name is set only for KindObject, Elem only for KindArray. Every Type owns
// its element tree; nothing is shared between fields.
type Type struct {
	Kind Kind
	Name string
	Elem *Type
}

// Scalar returns a parameterless type (a primitive, string or self).
func Scalar(k Kind) Type {
	return Type{Kind: k}
}

// ObjectOf returns a reference to the object schema called name.
func ObjectOf(name string) Type {
	return Type{Kind: KindObject, Name: name}
}

// ArrayOf returns an array of elem.
func ArrayOf(elem Type) Type {
	return Type{Kind: KindArray, Elem: &elem}
}

const (
	objectPrefix = "Object("
	arrayPrefix  = "Array("
)

// ParseType parses the schema spelling of a type:
// bool, i32, i64, u8, i16, f32, f64, string, self, Object(<name>) or Array(<type>).
func ParseType(s string) (Type, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Type{}, errors.New("empty type")
	}

	if k, ok := kindByKeyword[s]; ok {
		return Scalar(k), nil
	}

	switch {
	case strings.HasPrefix(s, objectPrefix):
		name, err := parenBody(s, objectPrefix)
		if err != nil {
			return Type{}, err
		}

		name = strings.TrimSpace(name)
		if !IsJavaIdent(name) {
			return Type{}, fmt.Errorf("invalid type %q: invalid object name %q", s, name)
		}

		return ObjectOf(name), nil

	case strings.HasPrefix(s, arrayPrefix):
		inner, err := parenBody(s, arrayPrefix)
		if err != nil {
			return Type{}, err
		}

		elem, err := ParseType(inner)
		if err != nil {
			return Type{}, fmt.Errorf("invalid type %q: %w", s, err)
		}

		return ArrayOf(elem), nil
	}

	return Type{}, fmt.Errorf("unknown type %q", s)
}

// parenBody returns what sits between prefix and the closing parenthesis
// that ends s.
func parenBody(s, prefix string) (string, error) {
	if !strings.HasSuffix(s, ")") {
		return "", fmt.Errorf("invalid type %q: missing closing parenthesis", s)
	}

	body := s[len(prefix) : len(s)-1]
	if strings.TrimSpace(body) == "" {
		return "", fmt.Errorf("invalid type %q: empty parameter", s)
	}

	return body, nil
}

// MustParseType is like ParseType but panics on error. Intended for tests
// and static tables.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}

	return t
}

// String returns the canonical schema spelling of t.
func (t Type) String() string {
	switch t.Kind {
	case KindObject:
		return objectPrefix + t.Name + ")"
	case KindArray:
		if t.Elem == nil {
			return arrayPrefix + ")"
		}

		return arrayPrefix + t.Elem.String() + ")"
	default:
		if kw := t.Kind.Keyword(); kw != "" {
			return kw
		}

		return t.Kind.String()
	}
}

// Equal reports whether t and other describe the same type tree.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Name != other.Name {
		return false
	}

	if t.Kind != KindArray {
		return true
	}

	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}

	return t.Elem.Equal(*other.Elem)
}

// Innermost returns the first non-array type found by walking through
// every array layer.
func (t Type) Innermost() Type {
	for t.Kind == KindArray && t.Elem != nil {
		t = *t.Elem
	}

	return t
}

// EndsInObject walks through array layers and returns the name of the
// innermost object. A self reference resolves to the display name of the
// enclosing object, which is the name its accessor is generated under.
func (t Type) EndsInObject(enclosing *Object) (string, bool) {
	inner := t.Innermost()

	switch inner.Kind {
	case KindObject:
		return inner.Name, true
	case KindSelf:
		return enclosing.DisplayName(), true
	default:
		return "", false
	}
}

// IsArray reports whether t is an array of any depth.
func (t Type) IsArray() bool {
	return t.Kind == KindArray
}

// IsNestedArray reports whether t is an array whose element is itself an
// array. Only the two outermost layers are inspected.
func (t Type) IsNestedArray() bool {
	return t.Kind == KindArray && t.Elem != nil && t.Elem.Kind == KindArray
}

// IsPrimitive reports whether t is a primitive, a string, or an array of
// those at any depth.
func (t Type) IsPrimitive() bool {
	if t.Kind == KindArray {
		return t.Elem != nil && t.Elem.IsPrimitive()
	}

	return t.Kind.IsScalar()
}

// UnmarshalYAML implements custom YAML unmarshaling for Type.
// Accepts the scalar spelling understood by ParseType.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected type string, got %v", node.Line, nodeKindName(node.Kind))
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*t = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Type.
func (t Type) MarshalYAML() (any, error) {
	if !t.Kind.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid type %s", t.Kind)
	}

	return t.String(), nil
}

func nodeKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("node kind %d", k)
	}
}
