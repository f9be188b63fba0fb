// Package diagnostic collects per-path errors and warnings of a compile or
// format run, so that one bad schema file never hides the others.
//
// Key capabilities:
//   - Failures keyed by file path and error kind code
//   - Warnings for skipped or suspicious input
//   - A single combined error for callers that only need pass/fail
package diagnostic
