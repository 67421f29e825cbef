package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x01, 0x02, 0x03}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ref := EncodeInline(pngBytes)
	assert.True(t, IsInline(ref))
	assert.Contains(t, ref, "data:image/png;base64,")
	assert.Equal(t, pngBytes, DecodeInline(ref))
}

func TestDetectMIME(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngBytes, "image/png"},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "image/webp"},
		{"svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), "image/svg+xml"},
		{"unknown falls back to jpeg", []byte{0x00, 0x01, 0x02}, "image/jpeg"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectMIME(tc.data))
		})
	}
}

func TestEncodeInlineEmpty(t *testing.T) {
	assert.Equal(t, "", EncodeInline(nil))
	assert.Equal(t, "", EncodeInline([]byte{}))
}

func TestDecodeInlineRejectsNonInline(t *testing.T) {
	assert.Nil(t, DecodeInline(""))
	assert.Nil(t, DecodeInline("/uploads/icon.png"))
	// marker but no payload
	assert.Nil(t, DecodeInline("data:image/png;base64,"))
	assert.Nil(t, DecodeInline("data:image/png"))
	// marker but payload is not valid base64
	assert.Nil(t, DecodeInline("data:image/png;base64,???!"))
}

func TestExtensionForMIME(t *testing.T) {
	assert.Equal(t, "png", ExtensionForMIME("image/png"))
	assert.Equal(t, "webp", ExtensionForMIME("image/webp"))
	assert.Equal(t, "svg", ExtensionForMIME("image/svg+xml"))
	assert.Equal(t, "jpg", ExtensionForMIME("image/jpeg"))
	assert.Equal(t, "jpg", ExtensionForMIME("application/octet-stream"))
}
