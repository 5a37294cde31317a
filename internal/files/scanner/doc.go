// Package scanner reads a list of table files and records their size,
// modification time and checksums.
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
//
// Unreadable files are reported in the result rather than failing the scan,
// so a manifest can show every expected file at once.
package scanner
