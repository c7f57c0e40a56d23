package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/pagepost/pagepost/internal/ident"
	"github.com/pagepost/pagepost/internal/pagestore"
	"github.com/pagepost/pagepost/internal/preview"
	"github.com/pagepost/pagepost/internal/render"
)

// ErrEmptyFields indicates a create request with a missing title or message.
var ErrEmptyFields = errors.New("title and message are required")

// Store is the persistence surface the service needs from pagestore.
type Store interface {
	Save(id string, content []byte) error
	Load(id string) ([]byte, error)
	PreviewPath(id string) string
}

// Notifier dispatches a best-effort notification for a created page.
type Notifier interface {
	PageCreated(ctx context.Context, pageURL, title string)
}

// descriptionLimit caps the Open Graph description derived from the message.
const descriptionLimit = 160

// idRegex matches well-formed page identifiers. Anything else is treated as
// not found without touching the filesystem.
var idRegex = regexp.MustCompile(`^[0-9a-f]{16,256}$`)

// Service composes identifier generation, rendering, persistence, and
// notification into the page lifecycle.
type Service struct {
	store    Store
	notifier Notifier
	preview  preview.Renderer
	tpl      string
	baseURL  string
	idLength int
	log      *slog.Logger
}

// NewService builds a page Service. tpl is the already-loaded page template;
// baseURL is the public base URL without a trailing slash.
func NewService(store Store, notifier Notifier, pr preview.Renderer, tpl, baseURL string, idLength int, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		preview:  pr,
		tpl:      tpl,
		baseURL:  baseURL,
		idLength: ident.Clamp(idLength),
		log:      log,
	}
}

// Create runs the page through its lifecycle and returns the new identifier.
// A message already containing an <html marker is stored verbatim; anything
// else gets newline-to-<br> conversion and template substitution. The
// notification and preview image run detached and never affect the result.
func (s *Service) Create(ctx context.Context, title, message string) (string, error) {
	if title == "" || message == "" {
		return "", ErrEmptyFields
	}

	id := ident.New(s.idLength)
	pageURL := s.baseURL + "/" + id

	content := message
	if !strings.Contains(strings.ToLower(message), "<html") {
		content = render.Render(s.tpl, map[string]string{
			"title":       title,
			"message":     render.Breaks(message),
			"url":         pageURL,
			"description": description(message),
			"date":        time.Now().Format("January 2, 2006"),
		})
	}

	if err := s.store.Save(id, []byte(content)); err != nil {
		return "", fmt.Errorf("persist page: %w", err)
	}

	// Detached from the request: the HTTP response does not wait for, and is
	// never affected by, notification or preview outcomes.
	go s.postPersist(context.WithoutCancel(ctx), id, pageURL, title)

	return id, nil
}

func (s *Service) postPersist(ctx context.Context, id, pageURL, title string) {
	s.notifier.PageCreated(ctx, pageURL, title)

	path, err := s.preview.RenderPreview(s.store.PreviewPath(id), pageURL)
	if err != nil {
		s.log.Warn("failed to render preview image", "page", id, "error", err)
		return
	}
	if path != "" {
		s.log.Debug("preview image written", "page", id, "path", path)
	}
}

// Get returns the stored content for id. Malformed identifiers map to
// pagestore.ErrNotFound so they cannot reach the filesystem.
func (s *Service) Get(_ context.Context, id string) ([]byte, error) {
	if !idRegex.MatchString(id) {
		return nil, fmt.Errorf("%w: %s", pagestore.ErrNotFound, id)
	}
	return s.store.Load(id)
}

// description derives a single-line summary from the message for the
// Open Graph description placeholder. Truncation respects rune boundaries
// so multibyte text never yields invalid UTF-8.
func description(message string) string {
	d := strings.Join(strings.Fields(message), " ")
	if runes := []rune(d); len(runes) > descriptionLimit {
		d = string(runes[:descriptionLimit])
	}
	return d
}
