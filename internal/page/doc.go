// Package page implements the core page lifecycle: validate the submitted
// title and message, mint an identifier, render the HTML document, persist
// it, and kick off the best-effort notification and preview image.
//
// Pages are immutable once written. There is no update or delete path; a
// fresh identifier is minted for every create, so writes never conflict.
package page
