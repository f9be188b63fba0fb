package format

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"accessor-generator/internal/schema"
)

const messySchema = `package: com.example.shared
name:    Item
fields: [{name: id, type: "Array( i64 )"}]
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func canonical(t *testing.T, content string) string {
	t.Helper()

	out, _, err := schema.Canonicalize([]byte(content))
	require.NoError(t, err)

	return string(out)
}

// newTree creates one canonical, one messy and one broken schema plus a
// file that is not a schema.
func newTree(t *testing.T) (dir, clean, messy, broken string) {
	t.Helper()

	dir = t.TempDir()
	clean = filepath.Join(dir, "a", "Clean.yaml")
	messy = filepath.Join(dir, "b", "Messy.yaml")
	broken = filepath.Join(dir, "c", "Broken.yaml")

	writeFile(t, clean, canonical(t, messySchema))
	writeFile(t, messy, messySchema)
	writeFile(t, broken, "name: [")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	return dir, clean, messy, broken
}

func TestRun(t *testing.T) {
	dir, clean, messy, broken := newTree(t)

	var out bytes.Buffer

	cfg := DefaultConfig(dir, &out)
	cfg.Logger = zaptest.NewLogger(t)

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{clean, messy, broken}, res.Checked)
	assert.Equal(t, []string{messy}, res.Changed)
	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Equal(t, broken, res.Diagnostics.Errors[0].Path)
	assert.ErrorIs(t, res.Diagnostics.Errors[0].Err, schema.ErrDecode)
	assert.True(t, res.Dirty())

	assert.Equal(t, canonical(t, messySchema), readFile(t, messy))
	assert.Contains(t, readFile(t, messy), "type: Array(i64)")

	report := out.String()
	assert.Contains(t, report, "OK: "+clean+"\n")
	assert.Contains(t, report, "FORMATTED: "+messy+"\n")
	assert.Contains(t, report, "ERROR: "+broken+" ")
	assert.Contains(t, report, "All files checked - Modified 1 file\n")
	assert.NotContains(t, report, "notes.txt")
}

func TestRun_Idempotent(t *testing.T) {
	dir, _, _, broken := newTree(t)
	require.NoError(t, os.Remove(broken))

	_, err := Run(context.Background(), DefaultConfig(dir, nil))
	require.NoError(t, err)

	var out bytes.Buffer

	res, err := Run(context.Background(), DefaultConfig(dir, &out))
	require.NoError(t, err)

	assert.Empty(t, res.Changed)
	assert.False(t, res.Dirty())
	assert.Contains(t, out.String(), "All files checked - No changes were made\n")
}

func TestRun_CheckLeavesFiles(t *testing.T) {
	dir, _, messy, _ := newTree(t)

	var out bytes.Buffer

	cfg := DefaultConfig(dir, &out)
	cfg.Check = true

	res, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{messy}, res.Changed)
	assert.Equal(t, messySchema, readFile(t, messy))
	assert.Contains(t, out.String(), "All files checked - Would modify 1 file\n")
}

func TestRun_Diff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Item.yaml")
	writeFile(t, path, messySchema)

	var out bytes.Buffer

	cfg := DefaultConfig(dir, &out)
	cfg.Diff = true
	cfg.Check = true

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "- name:    Item\n")
	assert.Contains(t, report, "+ name: Item\n")
	assert.NotContains(t, report, "\x1b[")
}

func TestRun_Color(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Item.yaml"), canonical(t, messySchema))

	var out bytes.Buffer

	cfg := DefaultConfig(dir, &out)
	cfg.Color = true

	_, err := Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[32mOK:\x1b[0m")
}

func TestRun_MissingDir(t *testing.T) {
	_, err := Run(context.Background(), DefaultConfig(filepath.Join(t.TempDir(), "nope"), nil))
	assert.ErrorIs(t, err, schema.ErrIO)
}

func TestRun_Canceled(t *testing.T) {
	dir, _, messy, _ := newTree(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, DefaultConfig(dir, nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, messySchema, readFile(t, messy))
}
