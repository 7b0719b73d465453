package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupURL(t *testing.T) {
	b := NewBuilder("https://sheet.example.org/", "secret")
	assert.Equal(t,
		"https://sheet.example.org/index.html?event=abcdef0123&mode=form&v=abcdef0123",
		b.SignupURL("abcdef0123"))
}

func TestAdminURLEscapesKey(t *testing.T) {
	b := NewBuilder("https://sheet.example.org", "s3cret key!")
	assert.Equal(t,
		"https://sheet.example.org/index.html?event=abcdef0123&mode=admin&key=s3cret+key%21",
		b.AdminURL("abcdef0123"))
}

func TestRenderCodeProducesPNG(t *testing.T) {
	b := NewBuilder("https://sheet.example.org", "secret")
	png, err := b.RenderCode(b.SignupURL("abcdef0123"))
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), png[:8])
}
