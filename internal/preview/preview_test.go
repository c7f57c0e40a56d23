package preview_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagepost/pagepost/internal/preview"
)

func TestQRRenderer_WritesImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page-abc.png")
	got, err := preview.NewQRRenderer().RenderPreview(path, "http://example.com/abc")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestQRRenderer_BadPath(t *testing.T) {
	t.Parallel()

	_, err := preview.NewQRRenderer().RenderPreview(
		filepath.Join(t.TempDir(), "missing", "p.png"), "http://example.com/abc")
	require.Error(t, err)
}

func TestNoop(t *testing.T) {
	t.Parallel()

	got, err := preview.Noop{}.RenderPreview("ignored", "ignored")
	require.NoError(t, err)
	assert.Empty(t, got)
}
