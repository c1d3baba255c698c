// Package filesystem provides a small filesystem abstraction.
//
// It backs the path-existence checks done while validating driver info and
// the reads of node files and CA bundles, so those code paths can be tested
// against an in-memory tree.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
