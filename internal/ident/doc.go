// Package ident generates page identifiers used as both filename keys and
// public URL path segments.
//
// An identifier is the hex encoding of a SHA-256 hash over the current
// timestamp concatenated with a freshly drawn random value, truncated to the
// requested length. This avoids a persisted counter or database while keeping
// collisions astronomically unlikely for practical request rates.
//
// Note that truncating a single hash does not scale entropy with length:
// beyond 64 hex characters the output saturates at the hash's 256 bits.
// Length is a filename-length preference, not a collision-resistance dial.
package ident
