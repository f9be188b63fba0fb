package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var errBroken = errors.New("broken")

func TestDiagnostics_Err(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Err())

	d.AddError("io", "a.yaml", errBroken)
	d.AddError("decode", "b.yaml", errors.New("bad"))
	d.AddWarning("skipped", "c.txt", "not a schema")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.Warnings, 1)

	err := d.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "a.yaml: broken")
	assert.Contains(t, err.Error(), "b.yaml: bad")
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Severity: DiagnosticError, Code: "ambiguous", Message: "both", Path: "x.yaml"}
	assert.Equal(t, "x.yaml: [ambiguous] both", d.String())

	d = Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", d.String())

	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
