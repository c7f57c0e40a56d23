package preview

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// imageSize is the edge length in pixels of generated preview images.
const imageSize = 512

// Renderer produces a preview image for a page, returning the path it was
// written to. Implementations must be safe for concurrent use.
type Renderer interface {
	RenderPreview(path, pageURL string) (string, error)
}

// QRRenderer renders a QR code pointing at the page URL.
type QRRenderer struct{}

// NewQRRenderer returns the default preview renderer.
func NewQRRenderer() QRRenderer {
	return QRRenderer{}
}

func (QRRenderer) RenderPreview(path, pageURL string) (string, error) {
	if err := qrcode.WriteFile(pageURL, qrcode.Medium, imageSize, path); err != nil {
		return "", fmt.Errorf("write preview image %s: %w", path, err)
	}
	return path, nil
}

// Noop is used when preview generation is disabled.
type Noop struct{}

func (Noop) RenderPreview(_, _ string) (string, error) {
	return "", nil
}
