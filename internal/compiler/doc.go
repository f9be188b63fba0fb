// Package compiler walks a directory of schema files and turns every one of
// them into a generated accessor file.
//
// The walk mirrors the input tree: a schema at in/game/Player.yaml yields
// game/PlayerAccessor.java relative to the output root. Entries are visited
// in name order so that the result is deterministic.
//
// A failing file never stops the walk. Each failure is recorded against its
// path in a diagnostic.Diagnostics and the caller decides what to write.
//
// Includes are resolved relative to the including file's directory. The
// process working directory is never read or changed.
package compiler
