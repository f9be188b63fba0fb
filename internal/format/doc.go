// Package format rewrites schema files into their canonical form.
//
// Every schema under a directory is parsed and re-serialized. Files that
// already are canonical are left alone. A file that fails to parse is
// reported and the run moves on to its siblings.
package format
