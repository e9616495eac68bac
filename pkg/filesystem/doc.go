// Package filesystem provides implementations of the types.FS interface:
// a thin wrapper over the os package for real use, and an afero-backed
// implementation so tests can run against an in-memory tree.
package filesystem
