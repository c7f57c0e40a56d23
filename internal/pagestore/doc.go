// Package pagestore persists rendered pages on the local filesystem.
//
// Pages are written one file per identifier at <dir>/page-<id>.html and read
// back byte-for-byte. Identifiers are freshly generated per request, so writes
// never coordinate: a colliding write would silently overwrite, which is an
// accepted property of the identifier scheme rather than something the store
// defends against. Preview images live in a sibling img/ directory.
package pagestore
