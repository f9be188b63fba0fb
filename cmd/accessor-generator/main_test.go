package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"accessor-generator/internal/schema"
)

const itemSchema = `name: Item
package: com.example.shared
fields:
  - name: id
    type: i64
`

const bagSchema = `name: Bag
rename: Sack
package: com.example.game
includes: [Item.yaml]
fields:
  - name: item
    type: Object(Item)
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newStreams() (*streams, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &streams{Out: &out, Err: &errOut}, &out, &errOut
}

func TestCLI_Parse(t *testing.T) {
	var cli CLI

	parser, err := kong.New(&cli, kong.Name("accessor-generator"))
	require.NoError(t, err)

	dir := t.TempDir()

	ctx, err := parser.Parse([]string{"--log-level", "debug", "--no-color", "compile", dir, filepath.Join(dir, "out")})
	require.NoError(t, err)

	assert.Equal(t, "compile <input> <output>", ctx.Command())
	assert.Equal(t, "debug", cli.LogLevel)
	assert.True(t, cli.NoColor)
	assert.Equal(t, "yaml", cli.Compile.Extension)

	_, err = parser.Parse([]string{"--log-level", "loud", "version"})
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}

func TestCompileCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")

	writeFile(t, filepath.Join(in, "Item.yaml"), itemSchema)
	writeFile(t, filepath.Join(in, "game", "Bag.yaml"), bagSchema)
	writeFile(t, filepath.Join(in, "game", "Item.yaml"), itemSchema)

	s, _, _ := newStreams()
	cmd := &CompileCmd{Input: in, Output: out, Extension: "yaml"}
	require.NoError(t, cmd.Run(&Globals{NoColor: true}, zap.NewNop(), s))

	assert.FileExists(t, filepath.Join(out, "ItemAccessor.java"))
	assert.FileExists(t, filepath.Join(out, "game", "ItemAccessor.java"))

	data, err := os.ReadFile(filepath.Join(out, "game", "SackAccessor.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "public class SackAccessor {")
	assert.Contains(t, string(data), "// Class autogenerated from Bag.yaml. DO NOT EDIT.")
}

func TestCompileCmd_FailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in")
	out := filepath.Join(dir, "out")

	writeFile(t, filepath.Join(in, "Item.yaml"), itemSchema)
	writeFile(t, filepath.Join(in, "Bag.yaml"), "name: Bag\npackage: p\nincludes: [Missing.yaml]\n")

	s, _, errOut := newStreams()
	cmd := &CompileCmd{Input: in, Output: out, Extension: "yaml"}

	err := cmd.Run(&Globals{NoColor: true}, zap.NewNop(), s)
	require.ErrorIs(t, err, errCompileFailed)
	assert.EqualError(t, err, "compilation failed: 1 error")

	assert.Equal(t, 1, strings.Count(errOut.String(), "\n"))
	assert.Contains(t, errOut.String(), filepath.Join(in, "Bag.yaml")+": include \"Missing.yaml\"")
	assert.Contains(t, errOut.String(), schema.ErrIO.Error())
	assert.NoDirExists(t, out)
}

func TestFormatCmd_Check(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Item.yaml")
	writeFile(t, path, "package: com.example.shared\nname: Item\n")

	s, out, _ := newStreams()
	cmd := &FormatCmd{Directory: dir, Check: true, Extension: "yaml"}

	err := cmd.Run(&Globals{}, zap.NewNop(), s)
	require.ErrorIs(t, err, errNotFormatted)
	assert.Contains(t, out.String(), "FORMATTED: "+path)

	cmd.Check = false
	require.NoError(t, cmd.Run(&Globals{}, zap.NewNop(), s))

	cmd.Check = true
	require.NoError(t, cmd.Run(&Globals{}, zap.NewNop(), s))
}

func TestSchemaCmd(t *testing.T) {
	s, out, _ := newStreams()
	require.NoError(t, (&SchemaCmd{}).Run(s))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Contains(t, doc, "properties")
	assert.Contains(t, out.String(), `"includes"`)
}

func TestDumpCmd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Item.yaml"), itemSchema)
	writeFile(t, filepath.Join(dir, "Bag.yaml"), bagSchema)

	s, out, _ := newStreams()
	require.NoError(t, (&DumpCmd{File: filepath.Join(dir, "Bag.yaml")}).Run(zap.NewNop(), s))

	dump := out.String()
	assert.Contains(t, dump, `Name: (string) (len=3) "Bag"`)
	assert.Contains(t, dump, "# include Item.yaml")
	assert.Contains(t, dump, `Name: (string) (len=4) "Item"`)
	assert.Contains(t, dump, "Type: (schema.Type) Object(Item)")
	assert.Contains(t, dump, "Type: (schema.Type) i64")
}

func TestDumpCmd_AmbiguousWarning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Broken.yaml")
	writeFile(t, path, "name: Broken\npackage: p\nfields:\n  - name: a\n    type: i32\nvariants:\n  - name: A\n")

	s, out, errOut := newStreams()
	require.NoError(t, (&DumpCmd{File: path}).Run(zap.NewNop(), s))

	assert.Contains(t, out.String(), `Name: (string) (len=6) "Broken"`)
	assert.Contains(t, errOut.String(), "warning: "+path+": [ambiguous] "+schema.ErrAmbiguous.Error())
}

func TestVersionCmd(t *testing.T) {
	s, out, _ := newStreams()
	require.NoError(t, (&VersionCmd{}).Run(s))
	assert.NotEmpty(t, strings.TrimSpace(out.String()))
}
