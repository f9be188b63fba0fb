package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema(t *testing.T) {
	s := JSONSchema()
	require.NotNil(t, s)

	assert.Equal(t, "object", s.Type)
	assert.ElementsMatch(t, []string{"name", "package"}, s.Required)

	require.NotNil(t, s.Properties)
	_, ok := s.Properties.Get("fields")
	assert.True(t, ok)
	_, ok = s.Properties.Get("variants")
	assert.True(t, ok)
}

func TestTypeJSONSchema(t *testing.T) {
	s := Type{}.JSONSchema()
	assert.Equal(t, "string", s.Type)
	assert.Regexp(t, s.Pattern, "Array(Array(Object(Foo)))")
	assert.Regexp(t, s.Pattern, "i32")
	assert.NotRegexp(t, s.Pattern, "int")
}
