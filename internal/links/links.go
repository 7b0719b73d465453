package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// codeSize in pixels. Generous enough that a print between business-card and
// A5 size still resolves on a phone camera.
const codeSize = 512

// Builder derives the public and admin URLs for an event from the configured
// base URL and renders the scannable code for the public one.
type Builder struct {
	baseURL  string
	adminKey string
}

func NewBuilder(baseURL, adminKey string) *Builder {
	return &Builder{
		baseURL:  strings.TrimRight(baseURL, "/"),
		adminKey: adminKey,
	}
}

// SignupURL is the link encoded in the printed code. The duplicate v
// parameter busts mobile browser caches that would otherwise reuse the page
// of a previously scanned code for a different event.
func (b *Builder) SignupURL(id string) string {
	return fmt.Sprintf("%s/index.html?event=%s&mode=form&v=%s", b.baseURL, url.QueryEscape(id), url.QueryEscape(id))
}

// AdminURL embeds the shared secret in the query string. Convenient for the
// organizer, hazardous anywhere the link gets forwarded.
func (b *Builder) AdminURL(id string) string {
	return fmt.Sprintf("%s/index.html?event=%s&mode=admin&key=%s", b.baseURL, url.QueryEscape(id), url.QueryEscape(b.adminKey))
}

// RenderCode encodes target as a PNG QR code. Highest error correction so
// the code still scans when printed small or photographed at an angle.
func (b *Builder) RenderCode(target string) ([]byte, error) {
	png, err := qrcode.Encode(target, qrcode.Highest, codeSize)
	if err != nil {
		return nil, fmt.Errorf("encoding qr code: %w", err)
	}
	return png, nil
}
