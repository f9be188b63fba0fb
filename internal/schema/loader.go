package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extension is the file extension (without the dot) of schema files.
const Extension = "yaml"

// HasExtension reports whether path carries ext, given with or without
// the leading dot. An empty ext means Extension.
func HasExtension(path, ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = Extension
	}

	return filepath.Ext(path) == "."+ext
}

// LoadFile reads and parses the schema file at path.
func LoadFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err)
	}

	return Parse(data)
}

// Parse decodes a schema document and validates it.
// Ambiguity (fields and variants together) is not an error here.
func Parse(data []byte) (*Object, error) {
	var obj Object

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&obj); err != nil && !errors.Is(err, io.EOF) {
		return nil, decodeError(err)
	}

	if err := Validate(&obj); err != nil {
		return nil, decodeError(err)
	}

	return &obj, nil
}

// ResolveIncludePath returns the file an include refers to. Relative
// includes are resolved against baseDir, the directory of the including
// schema file.
func ResolveIncludePath(baseDir, include string) string {
	if filepath.IsAbs(include) {
		return filepath.Clean(include)
	}

	return filepath.Join(baseDir, filepath.FromSlash(include))
}

// LoadInclude reads the schema an include refers to. Nothing is cached:
// including the same file twice reads it twice.
func LoadInclude(baseDir, include string) (*Object, error) {
	obj, err := LoadFile(ResolveIncludePath(baseDir, include))
	if err != nil {
		return nil, fmt.Errorf("include %q: %w", include, err)
	}

	return obj, nil
}

// LoadIncludes resolves every include of obj in declaration order.
func LoadIncludes(baseDir string, obj *Object) ([]*Object, error) {
	res := make([]*Object, 0, len(obj.Includes))

	for _, inc := range obj.Includes {
		included, err := LoadInclude(baseDir, inc)
		if err != nil {
			return nil, err
		}

		res = append(res, included)
	}

	return res, nil
}

// Marshal serializes obj into its canonical YAML form.
func Marshal(obj *Object) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(obj); err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return buf.Bytes(), nil
}

// Canonicalize parses data and returns its canonical serialization, and
// whether that differs from data. Canonicalizing canonical input is a no-op.
func Canonicalize(data []byte) ([]byte, bool, error) {
	obj, err := Parse(data)
	if err != nil {
		return nil, false, err
	}

	out, err := Marshal(obj)
	if err != nil {
		return nil, false, err
	}

	return out, !bytes.Equal(out, data), nil
}
