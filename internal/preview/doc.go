// Package preview generates decorative Open Graph preview images for pages.
//
// The feature has no functional dependents: page creation and serving work
// identically whether a preview exists or not, so failures are logged by the
// caller and never surfaced. The Renderer interface keeps the implementation
// pluggable; the default writes a QR code pointing at the page URL.
package preview
