package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"accessor-generator/internal/common"
	"accessor-generator/internal/compiler"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/format"
	"accessor-generator/internal/gen"
	"accessor-generator/internal/schema"
)

var (
	errCompileFailed = errors.New("compilation failed")
	errNotFormatted  = errors.New("schema files are not formatted")
)

type CompileCmd struct {
	Input     string `arg:"" help:"Directory (or single file) of schema files." type:"path"`
	Output    string `arg:"" help:"Output directory for generated Java files." type:"path"`
	Extension string `help:"Schema file extension." default:"yaml"`
	NoHeader  bool   `help:"Omit the autogenerated header comment." name:"no-header"`
}

func (c *CompileCmd) Run(g *Globals, log *zap.Logger, s *streams) error {
	ctx := context.Background()

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.HeaderComments = !c.NoHeader

	cfg := compiler.DefaultConfig(c.Input)
	cfg.Extension = c.Extension
	cfg.Generator = genCfg
	cfg.Logger = log

	files, diags := compiler.Compile(ctx, cfg)
	if diags.HasErrors() {
		red := color.New(color.FgRed)
		if !g.useColor(s.Err) {
			red.DisableColor()
		}

		errs := multierr.Errors(diags.Err())
		for _, err := range errs {
			red.Fprintln(s.Err, err)
		}

		return fmt.Errorf("%w: %d %s", errCompileFailed,
			len(errs), common.Plural(len(errs), "error", "errors"))
	}

	if err := gen.WriteFiles(ctx, files, c.Output); err != nil {
		return err
	}

	log.Info("compiled schemas",
		zap.String("input", c.Input),
		zap.String("output", c.Output),
		zap.Int("files", len(files)))

	return nil
}

type FormatCmd struct {
	Directory string `arg:"" help:"Directory searched recursively for schema files." type:"existingdir"`
	Diff      bool   `help:"Print the changes made to each file." short:"d"`
	Check     bool   `help:"Report unformatted files without rewriting them." short:"c"`
	Extension string `help:"Schema file extension." default:"yaml"`
}

func (c *FormatCmd) Run(g *Globals, log *zap.Logger, s *streams) error {
	cfg := format.DefaultConfig(c.Directory, s.Out)
	cfg.Extension = c.Extension
	cfg.Diff = c.Diff
	cfg.Check = c.Check
	cfg.Color = g.useColor(s.Out)
	cfg.Logger = log

	res, err := format.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	if c.Check && res.Dirty() {
		return errNotFormatted
	}

	if n := len(res.Diagnostics.Errors); n > 0 {
		return fmt.Errorf("%d schema %s could not be formatted", n, common.Plural(n, "file", "files"))
	}

	return nil
}

type SchemaCmd struct{}

func (c *SchemaCmd) Run(s *streams) error {
	data, err := json.MarshalIndent(schema.JSONSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON schema: %w", err)
	}

	_, err = fmt.Fprintln(s.Out, string(data))

	return err
}

type DumpCmd struct {
	File string `arg:"" help:"Schema file to dump." type:"existingfile"`
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (c *DumpCmd) Run(log *zap.Logger, s *streams) error {
	obj, err := schema.LoadFile(c.File)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(c.File)
	log.Debug("loading includes", zap.String("dir", baseDir), zap.Strings("includes", obj.Includes))

	includes, err := schema.LoadIncludes(baseDir, obj)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	if err := schema.CheckAmbiguous(obj); err != nil {
		log.Warn("schema cannot be compiled", zap.String("file", c.File), zap.Error(err))
		diags.AddWarning(compiler.CodeAmbiguous, c.File, err.Error())
	}

	dumpConfig.Fdump(s.Out, obj)

	for i, inc := range includes {
		fmt.Fprintf(s.Out, "\n# include %s\n", obj.Includes[i])
		dumpConfig.Fdump(s.Out, inc)
	}

	for _, w := range diags.Warnings {
		fmt.Fprintln(s.Err, "warning:", w.String())
	}

	return nil
}
