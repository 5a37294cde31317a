// Package filesystem provides the read-only file access used by the table loaders.
//
// Loaders depend on FileSystemProvider rather than the os package so tests
// can serve game data from memory, including files that fail to read.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Both implementations are safe for concurrent reads.
package filesystem
