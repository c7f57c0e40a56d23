// Package server exposes the HTTP surface of the service: page creation,
// page retrieval, a static home page, and a configured not-found page.
//
// Error bodies follow the external contract exactly: JSON objects for the
// create endpoint, plain text for retrieval. Internal failures are logged
// with full detail server-side while client-facing bodies stay generic.
package server
