// Package render implements the page template engine.
//
// Templates are plain text containing {{name}} placeholders where name is a
// word (letters, digits, underscore). Render substitutes known placeholders
// verbatim — values are trusted or already HTML, so nothing is escaped — and
// leaves unknown placeholders untouched in the output. There is no nested or
// conditional syntax.
//
// The page template is loaded once at process start via Load; a missing
// template file is a fatal configuration error because the service cannot
// safely render pages without it.
package render
