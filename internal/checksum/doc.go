// Package checksum provides table file hashing with normalization support.
//
// Two checksums are computed per file:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash of the compacted JSON document, so that
//     re-indenting or re-wrapping a table export does not change it
//
// Content that is not well-formed JSON has no compact form; its normalized
// checksum equals the raw one.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
