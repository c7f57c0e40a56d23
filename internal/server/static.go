package server

import (
	"log/slog"
	"os"
	"path/filepath"
)

// StaticPages holds the home and not-found documents served verbatim.
type StaticPages struct {
	Home     []byte
	NotFound []byte
}

// Built-in fallbacks used when the template directory does not provide
// home.html or 404.html. Unlike the page template these are not required for
// the service to operate, so their absence is part of best-effort setup.
var (
	defaultHome = []byte(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>pagepost</title></head>
<body>
<h1>pagepost</h1>
<p>POST a JSON body with <code>title</code> and <code>message</code> to <code>/new</code> to publish a page.</p>
</body>
</html>
`)
	defaultNotFound = []byte(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Not found</title></head>
<body><h1>404</h1><p>Page not found.</p></body>
</html>
`)
)

// LoadStaticPages reads home.html and 404.html from dir, falling back to the
// built-in documents when a file is missing or unreadable.
func LoadStaticPages(dir string, log *slog.Logger) StaticPages {
	return StaticPages{
		Home:     loadOrDefault(filepath.Join(dir, "home.html"), defaultHome, log),
		NotFound: loadOrDefault(filepath.Join(dir, "404.html"), defaultNotFound, log),
	}
}

func loadOrDefault(path string, fallback []byte, log *slog.Logger) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("static page not loaded, using built-in", "path", path, "error", err)
		return fallback
	}
	return data
}
