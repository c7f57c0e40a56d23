package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

const (
	// MinLength is the shortest identifier the generator will produce.
	MinLength = 16
	// MaxLength is the longest identifier the generator will produce.
	// SHA-256 yields 64 hex characters, so longer identifiers chain
	// additional hash rounds over the previous digest.
	MaxLength = 256
	// DefaultLength is used when the configured length is out of range.
	DefaultLength = 32
)

// New returns a fresh identifier of exactly length hex characters.
// The caller is expected to pass a value already normalized via Clamp;
// out-of-range lengths are clamped here as well so New never returns
// an identifier outside [MinLength, MaxLength].
func New(length int) string {
	length = Clamp(length)

	seed := time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00") + uuid.NewString()
	sum := sha256.Sum256([]byte(seed))
	out := hex.EncodeToString(sum[:])

	// Stretch the digest for lengths past 64 hex chars. This adds no
	// entropy beyond the first round; it only satisfies the length contract.
	for len(out) < length {
		next := sha256.Sum256([]byte(out))
		out += hex.EncodeToString(next[:])
	}
	return out[:length]
}

// Clamp normalizes a configured identifier length. Values outside
// [MinLength, MaxLength] fall back to DefaultLength rather than erroring,
// keeping identifier length a startup preference instead of a failure mode.
func Clamp(length int) int {
	if length < MinLength || length > MaxLength {
		return DefaultLength
	}
	return length
}
