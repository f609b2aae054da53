// Package filesystem provides filesystem implementations for roster.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by the CLI and an afero-backed one for tests.
package filesystem
