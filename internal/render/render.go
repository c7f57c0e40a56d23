package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrTemplateNotFound is returned by Load when the template file is absent.
// Callers treat this as fatal at startup.
var ErrTemplateNotFound = errors.New("template file not found")

// placeholderRegex matches {{name}} tokens with word-character names.
var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes {{name}} placeholders in tpl with matching entries from
// values. Placeholders without a matching key are left unchanged, repeated
// placeholders are all replaced, and values are inserted verbatim.
func Render(tpl string, values map[string]string) string {
	return placeholderRegex.ReplaceAllStringFunc(tpl, func(token string) string {
		name := token[2 : len(token)-2]
		if v, ok := values[name]; ok {
			return v
		}
		return token
	})
}

// Load reads a template file from dir once at startup.
// A missing file yields ErrTemplateNotFound; other I/O errors pass through.
func Load(dir, file string) (string, error) {
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	return string(data), nil
}

// Breaks converts line breaks in a plain-text message to HTML <br> markers.
// Used for messages that are not already complete HTML documents.
func Breaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
