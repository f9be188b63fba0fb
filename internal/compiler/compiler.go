package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/gen"
	"accessor-generator/internal/schema"
)

// Diagnostic codes recorded by the compiler.
const (
	CodeIO        = "io"
	CodeDecode    = "decode"
	CodeAmbiguous = "ambiguous"
	CodeGenerate  = "generate"
	CodeCanceled  = "canceled"
	CodeSkipped   = "skipped"
	CodeCompiled  = "compiled"
)

// Config configures a compile run.
type Config struct {
	// Input is the schema directory (or a single schema file).
	Input string
	// Extension is the schema file extension without the dot.
	Extension string
	// Generator configures the emitted files.
	Generator gen.GeneratorConfig
	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns a Config for input with default settings.
func DefaultConfig(input string) Config {
	return Config{
		Input:     input,
		Extension: schema.Extension,
		Generator: gen.DefaultGeneratorConfig(),
		Logger:    zap.NewNop(),
	}
}

// Compiler compiles schema files into accessor files.
type Compiler struct {
	ext       string
	generator *gen.Generator
	log       *zap.Logger
}

// New creates a Compiler from cfg, filling unset fields with defaults.
func New(cfg Config) *Compiler {
	ext := strings.TrimPrefix(cfg.Extension, ".")
	if ext == "" {
		ext = schema.Extension
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	genCfg := cfg.Generator
	if genCfg.FileExtension == "" {
		genCfg = gen.DefaultGeneratorConfig()
	}

	return &Compiler{
		ext:       ext,
		generator: gen.NewGenerator(genCfg),
		log:       log,
	}
}

// Compile compiles every schema under cfg.Input. The returned files are
// only complete when the diagnostics hold no error.
func Compile(ctx context.Context, cfg Config) ([]gen.GeneratedFile, *diagnostic.Diagnostics) {
	return New(cfg).Compile(ctx, cfg.Input)
}

// Compile compiles every schema under input, which may be a directory or a
// single schema file.
func (c *Compiler) Compile(ctx context.Context, input string) ([]gen.GeneratedFile, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	info, err := os.Stat(input)
	if err != nil {
		diags.AddError(CodeIO, input, fmt.Errorf("%w: %w", schema.ErrIO, err))
		return nil, diags
	}

	if !info.IsDir() {
		file, err := c.CompileFile(input, "")
		if err != nil {
			diags.AddError(codeOf(err), input, err)
			return nil, diags
		}

		return []gen.GeneratedFile{*file}, diags
	}

	var files []gen.GeneratedFile

	c.compileDir(ctx, input, "", &files, diags)

	return files, diags
}

// compileDir compiles dir, placing its output under outDir relative to the
// output root.
func (c *Compiler) compileDir(ctx context.Context, dir, outDir string, files *[]gen.GeneratedFile, diags *diagnostic.Diagnostics) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		diags.AddError(CodeIO, dir, fmt.Errorf("%w: %w", schema.ErrIO, err))
		return
	}

	if common.IsEmpty(entries) {
		c.log.Debug("empty directory", zap.String("dir", dir))
		return
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			diags.AddError(CodeCanceled, dir, err)
			return
		}

		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			c.compileDir(ctx, path, filepath.Join(outDir, entry.Name()), files, diags)
			continue
		}

		if !schema.HasExtension(entry.Name(), c.ext) {
			c.log.Debug("skipping file with unrecognized extension", zap.String("path", path))
			diags.AddInfo(CodeSkipped, path, "not a ."+c.ext+" file")

			continue
		}

		file, err := c.CompileFile(path, outDir)
		if err != nil {
			c.log.Debug("failed to compile", zap.String("path", path), zap.Error(err))
			diags.AddError(codeOf(err), path, err)

			continue
		}

		c.log.Debug("compiled", zap.String("path", path), zap.String("output", file.Filename))
		diags.AddInfo(CodeCompiled, path, file.Filename)

		*files = append(*files, *file)
	}
}

// CompileFile compiles the schema at path into a file placed under outDir
// relative to the output root.
func (c *Compiler) CompileFile(path, outDir string) (*gen.GeneratedFile, error) {
	obj, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}

	if err := schema.CheckAmbiguous(obj); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)

	includes, err := schema.LoadIncludes(baseDir, obj)
	if err != nil {
		return nil, err
	}

	if !common.IsEmpty(includes) {
		resolved := make([]string, 0, len(obj.Includes))
		for _, inc := range obj.Includes {
			resolved = append(resolved, schema.ResolveIncludePath(baseDir, inc))
		}

		c.log.Debug("resolved includes", zap.String("path", path), zap.Strings("includes", resolved))
	}

	return c.generator.Generate(gen.Input{
		Object:     obj,
		Includes:   includes,
		SourceName: filepath.Base(path),
		OutputDir:  outDir,
	})
}

// codeOf maps an error to its diagnostic code.
func codeOf(err error) string {
	switch {
	case errors.Is(err, schema.ErrAmbiguous):
		return CodeAmbiguous
	case errors.Is(err, schema.ErrIO):
		return CodeIO
	case errors.Is(err, schema.ErrDecode):
		return CodeDecode
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeCanceled
	default:
		return CodeGenerate
	}
}
