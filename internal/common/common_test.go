package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualify(t *testing.T) {
	assert.Equal(t, "com.example.ItemAccessor", Qualify("com.example", "ItemAccessor"))
	assert.Equal(t, "ItemAccessor", Qualify("", "ItemAccessor"))
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]string(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.Equal(t, "file", Plural(1, "file", "files"))
	assert.Equal(t, "files", Plural(0, "file", "files"))
}
