// Package main provides the CLI entrypoint for accessor-generator.
//
// accessor-generator compiles YAML schema files describing runtime classes
// and enums into Java accessor classes that read those objects reflectively:
//   - compile turns a schema directory into .java files
//   - format rewrites schema files into their canonical form
//   - schema prints the JSON Schema of the schema format
//   - dump prints the parsed model of one schema file
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"warn" enum:"debug,info,warn,error" name:"log-level"`
	NoColor  bool   `help:"Disable colored output." name:"no-color"`
}

// useColor reports whether output written to w should be colored.
func (g *Globals) useColor(w io.Writer) bool {
	return !g.NoColor && isTerminal(w)
}

// streams are the writers commands print to.
type streams struct {
	Out io.Writer
	Err io.Writer
}

type CLI struct {
	Globals

	Compile CompileCmd `cmd:"" help:"Compile a directory of schema files into Java accessors."`
	Format  FormatCmd  `cmd:"" help:"Rewrite schema files into their canonical form."`
	Schema  SchemaCmd  `cmd:"" help:"Print the JSON Schema of the schema file format."`
	Dump    DumpCmd    `cmd:"" help:"Print the parsed model of a schema file and its includes."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("accessor-generator"),
		kong.Description("Generate Java reflective accessors from YAML schemas."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals, logger, &streams{Out: os.Stdout, Err: os.Stderr})
	_ = logger.Sync()

	ctx.FatalIfErrorf(err)
}

type VersionCmd struct{}

func (c *VersionCmd) Run(s *streams) error {
	_, err := io.WriteString(s.Out, Version()+"\n")
	return err
}

