package page_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagepost/pagepost/internal/page"
	"github.com/pagepost/pagepost/internal/pagestore"
	"github.com/pagepost/pagepost/internal/preview"
)

const testTemplate = `<!DOCTYPE html>
<html>
<head><title>{{title}}</title><meta name="description" content="{{description}}"></head>
<body><h1>{{title}}</h1><p>{{message}}</p><a href="{{url}}">{{url}}</a><footer>{{date}}</footer></body>
</html>`

// notifierRecorder captures the PageCreated call for synchronization in tests.
type notifierRecorder struct {
	called chan struct {
		url   string
		title string
	}
}

func newNotifierRecorder() *notifierRecorder {
	return &notifierRecorder{called: make(chan struct {
		url   string
		title string
	}, 1)}
}

func (n *notifierRecorder) PageCreated(_ context.Context, pageURL, title string) {
	n.called <- struct {
		url   string
		title string
	}{pageURL, title}
}

func (n *notifierRecorder) wait(t *testing.T) (string, string) {
	t.Helper()
	select {
	case c := <-n.called:
		return c.url, c.title
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not called")
		return "", ""
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, notifier page.Notifier) (*page.Service, *pagestore.Store) {
	t.Helper()
	store, err := pagestore.NewStrict(t.TempDir())
	require.NoError(t, err)
	svc := page.NewService(store, notifier, preview.Noop{}, testTemplate, "http://localhost:3000", 32, discardLogger())
	return svc, store
}

func TestService_Create(t *testing.T) {
	t.Parallel()

	t.Run("plain message is templated with break markers", func(t *testing.T) {
		t.Parallel()

		notifier := newNotifierRecorder()
		svc, store := newTestService(t, notifier)

		id, err := svc.Create(context.Background(), "My Title", "line1\nline2")
		require.NoError(t, err)
		require.Len(t, id, 32)

		content, err := store.Load(id)
		require.NoError(t, err)
		assert.Contains(t, string(content), "<h1>My Title</h1>")
		assert.Contains(t, string(content), "line1<br>line2")
		assert.Contains(t, string(content), "http://localhost:3000/"+id)

		url, title := notifier.wait(t)
		assert.Equal(t, "http://localhost:3000/"+id, url)
		assert.Equal(t, "My Title", title)
	})

	t.Run("html message is stored verbatim", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(t, newNotifierRecorder())

		msg := "<HTML><body>already\na full document</body></HTML>"
		id, err := svc.Create(context.Background(), "Raw", msg)
		require.NoError(t, err)

		content, err := store.Load(id)
		require.NoError(t, err)
		assert.Equal(t, msg, string(content))
	})

	t.Run("empty fields are rejected", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, newNotifierRecorder())

		_, err := svc.Create(context.Background(), "", "message")
		assert.ErrorIs(t, err, page.ErrEmptyFields)

		_, err = svc.Create(context.Background(), "title", "")
		assert.ErrorIs(t, err, page.ErrEmptyFields)
	})

	t.Run("multibyte message keeps the description valid UTF-8", func(t *testing.T) {
		t.Parallel()

		svc, store := newTestService(t, newNotifierRecorder())

		// 3-byte runes: a byte-level cut at the description limit would
		// land mid-rune and corrupt the meta tag.
		id, err := svc.Create(context.Background(), "Unicode", strings.Repeat("日", 200))
		require.NoError(t, err)

		content, err := store.Load(id)
		require.NoError(t, err)
		assert.True(t, utf8.Valid(content))
		// The description attribute ends exactly at the rune limit.
		assert.Contains(t, string(content), strings.Repeat("日", 160)+`"`)
		assert.NotContains(t, string(content), strings.Repeat("日", 161)+`"`)
	})

	t.Run("distinct identifiers per call", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, newNotifierRecorder())

		a, err := svc.Create(context.Background(), "t", "m")
		require.NoError(t, err)
		b, err := svc.Create(context.Background(), "t", "m")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

// failingStore simulates a persistence failure.
type failingStore struct{}

func (failingStore) Save(string, []byte) error    { return errors.New("disk full") }
func (failingStore) Load(string) ([]byte, error)  { return nil, errors.New("disk full") }
func (failingStore) PreviewPath(id string) string { return id }

func TestService_Create_PersistenceFailure(t *testing.T) {
	t.Parallel()

	svc := page.NewService(failingStore{}, newNotifierRecorder(), preview.Noop{},
		testTemplate, "http://localhost:3000", 32, discardLogger())

	_, err := svc.Create(context.Background(), "t", "m")
	require.Error(t, err)
	assert.NotErrorIs(t, err, page.ErrEmptyFields)
}

func TestService_Get(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, newNotifierRecorder())

		id, err := svc.Create(context.Background(), "Round Trip", "body")
		require.NoError(t, err)

		content, err := svc.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Round Trip")
	})

	t.Run("unknown identifier", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, newNotifierRecorder())

		_, err := svc.Get(context.Background(), strings.Repeat("a", 32))
		assert.ErrorIs(t, err, pagestore.ErrNotFound)
	})

	t.Run("malformed identifier never reaches the filesystem", func(t *testing.T) {
		t.Parallel()

		svc, _ := newTestService(t, newNotifierRecorder())

		for _, id := range []string{"../../etc/passwd", "short", "UPPERCASE0000000", ""} {
			_, err := svc.Get(context.Background(), id)
			assert.ErrorIs(t, err, pagestore.ErrNotFound, "id %q", id)
		}
	})
}

func TestService_PreviewImageWritten(t *testing.T) {
	t.Parallel()

	notifier := newNotifierRecorder()
	store, err := pagestore.NewStrict(t.TempDir())
	require.NoError(t, err)
	svc := page.NewService(store, notifier, preview.NewQRRenderer(),
		testTemplate, "http://localhost:3000", 32, discardLogger())

	id, err := svc.Create(context.Background(), "With Preview", "body")
	require.NoError(t, err)
	notifier.wait(t)

	// The preview renders after the notification on the same goroutine.
	require.Eventually(t, func() bool {
		return fileExists(store.PreviewPath(id))
	}, 2*time.Second, 10*time.Millisecond)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
