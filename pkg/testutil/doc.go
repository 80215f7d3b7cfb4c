// Package testutil provides helpers shared by the confc test suites:
// temporary source files, file assertions and in-memory filesystems.
package testutil
