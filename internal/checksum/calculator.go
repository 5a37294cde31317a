package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	json "github.com/goccy/go-json"
)

// Calculator is an interface for computing file checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of the content with
	// insignificant JSON whitespace removed.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of the compacted JSON content.
func (c SHA256) CalculateNormalized(content []byte) string {
	return c.CalculateRaw(c.normalize(content))
}

// normalize strips whitespace outside JSON strings. Invalid JSON is
// returned unchanged.
func (c SHA256) normalize(content []byte) []byte {
	if !json.Valid(content) {
		return content
	}
	var buf bytes.Buffer
	buf.Grow(len(content))
	if err := json.Compact(&buf, content); err != nil {
		return content
	}
	return buf.Bytes()
}

var _ Calculator = SHA256{}
