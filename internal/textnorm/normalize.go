// Package textnorm canonicalizes free text before it is hashed or embedded.
package textnorm

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DefaultMaxLength is the default cap applied to normalized text.
const DefaultMaxLength = 1000

// Normalize lower-cases the input, collapses whitespace runs to single spaces,
// trims, and truncates to DefaultMaxLength. Empty or whitespace-only input
// yields the empty string.
func Normalize(raw string) string {
	return NormalizeWithLimit(raw, DefaultMaxLength)
}

// NormalizeWithLimit is Normalize with an explicit maximum length.
// A non-positive limit falls back to DefaultMaxLength.
func NormalizeWithLimit(raw string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	lower := strings.ToLower(raw)
	fields := strings.Fields(lower)
	if len(fields) == 0 {
		return ""
	}

	normalized := strings.Join(fields, " ")
	runes := []rune(normalized)
	if len(runes) > maxLength {
		normalized = string(runes[:maxLength])
	}

	return normalized
}

// Fingerprint returns the content hash of a normalized text, used as the sole
// cache key downstream. Identical normalized text always produces the same
// fingerprint, so semantically identical inputs collide correctly regardless
// of original formatting.
func Fingerprint(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// FingerprintRaw normalizes the input first, then fingerprints it.
func FingerprintRaw(raw string) string {
	return Fingerprint(Normalize(raw))
}
