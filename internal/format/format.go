package format

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"

	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/schema"
)

// Config configures a format run.
type Config struct {
	// Dir is the directory searched recursively for schema files.
	Dir string
	// Extension is the schema file extension without the dot.
	Extension string
	// Diff prints the changes of every file that is not canonical.
	Diff bool
	// Check reports without rewriting any file.
	Check bool
	// Color enables colored status lines.
	Color bool
	// Out receives the report. Nil discards it.
	Out io.Writer
	// Logger receives debug output. Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns a Config for dir that writes its report to out.
func DefaultConfig(dir string, out io.Writer) Config {
	return Config{
		Dir:       dir,
		Extension: schema.Extension,
		Out:       out,
		Logger:    zap.NewNop(),
	}
}

// Result summarizes a format run.
type Result struct {
	// Checked lists every schema file visited, in walk order.
	Checked []string
	// Changed lists the files that were (or, with Check, would be) rewritten.
	Changed []string
	// Diagnostics holds the files that could not be formatted.
	Diagnostics *diagnostic.Diagnostics
}

// Dirty reports whether a check run found files to rewrite or any error.
func (r *Result) Dirty() bool {
	return !common.IsEmpty(r.Changed) || r.Diagnostics.HasErrors()
}

type formatter struct {
	cfg Config
	ext string
	log *zap.Logger
	out io.Writer

	ok, formatted, failed *color.Color
	insert, remove        *color.Color
}

// Run formats every schema under cfg.Dir and prints one status line per
// file followed by a summary.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	f := newFormatter(cfg)
	res := &Result{Diagnostics: &diagnostic.Diagnostics{}}

	if err := f.walk(ctx, cfg.Dir, res); err != nil {
		return res, err
	}

	f.summary(res)

	return res, nil
}

func newFormatter(cfg Config) *formatter {
	f := &formatter{
		cfg:       cfg,
		ext:       strings.TrimPrefix(cfg.Extension, "."),
		log:       cfg.Logger,
		out:       cfg.Out,
		ok:        color.New(color.FgGreen),
		formatted: color.New(color.FgYellow),
		failed:    color.New(color.FgRed),
		insert:    color.New(color.FgGreen),
		remove:    color.New(color.FgRed),
	}

	if f.ext == "" {
		f.ext = schema.Extension
	}

	if f.log == nil {
		f.log = zap.NewNop()
	}

	if f.out == nil {
		f.out = io.Discard
	}

	for _, c := range []*color.Color{f.ok, f.formatted, f.failed, f.insert, f.remove} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return f
}

func (f *formatter) walk(ctx context.Context, dir string, res *Result) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", schema.ErrIO, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := f.walk(ctx, path, res); err != nil {
				return err
			}

			continue
		}

		if !schema.HasExtension(path, f.ext) {
			f.log.Debug("skipping file with unrecognized extension", zap.String("path", path))
			continue
		}

		f.file(path, res)
	}

	return nil
}

// file formats one schema file and prints its status line.
func (f *formatter) file(path string, res *Result) {
	res.Checked = append(res.Checked, path)

	data, err := os.ReadFile(path)
	if err != nil {
		f.fail(path, fmt.Errorf("%w: %w", schema.ErrIO, err), res)
		return
	}

	out, changed, err := schema.Canonicalize(data)
	if err != nil {
		f.fail(path, err, res)
		return
	}

	if !changed {
		f.log.Debug("already canonical", zap.String("path", path))
		fmt.Fprintln(f.out, f.ok.Sprint("OK:"), path)

		return
	}

	if !f.cfg.Check {
		info, err := os.Stat(path)
		if err != nil {
			f.fail(path, fmt.Errorf("%w: %w", schema.ErrIO, err), res)
			return
		}

		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			f.fail(path, fmt.Errorf("%w: %w", schema.ErrIO, err), res)
			return
		}
	}

	res.Changed = append(res.Changed, path)
	fmt.Fprintln(f.out, f.formatted.Sprint("FORMATTED:"), path)

	if f.cfg.Diff {
		f.diff(data, out)
	}
}

func (f *formatter) fail(path string, err error, res *Result) {
	f.log.Debug("failed to format", zap.String("path", path), zap.Error(err))
	res.Diagnostics.AddError("format", path, err)
	fmt.Fprintln(f.out, f.failed.Sprint("ERROR:"), path, err)
}

// diff prints a line diff between the original and canonical content.
func (f *formatter) diff(from, to []byte) {
	dmp := diffpatch.New()

	a, b, lines := dmp.DiffLinesToChars(string(from), string(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffInsert:
				f.insert.Fprintln(f.out, "+ "+line)
			case diffpatch.DiffDelete:
				f.remove.Fprintln(f.out, "- "+line)
			case diffpatch.DiffEqual:
				fmt.Fprintln(f.out, "  "+line)
			}
		}
	}
}

func (f *formatter) summary(res *Result) {
	if common.IsEmpty(res.Changed) {
		fmt.Fprintln(f.out, "All files checked - No changes were made")
		return
	}

	verb := "Modified"
	if f.cfg.Check {
		verb = "Would modify"
	}

	fmt.Fprintf(f.out, "All files checked - %s %d %s\n",
		verb, len(res.Changed), common.Plural(len(res.Changed), "file", "files"))
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
