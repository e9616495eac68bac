// Package types defines the shared data model for vapor: mod records,
// file entries, ledger snapshots, and the filesystem interface used by
// every component that touches disk.
package types
