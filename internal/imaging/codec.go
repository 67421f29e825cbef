// Package imaging converts image bytes to and from the inline data-URI form
// the dashboard uses to transport images inside JSON.
package imaging

import (
	"bytes"
	"encoding/base64"
	"strings"
)

const InlineMarker = "data:image"

const base64Separator = ";base64,"

// IsInline reports whether ref is an inline data-URI reference (a new upload)
// as opposed to an already-stored public path.
func IsInline(ref string) bool {
	return strings.HasPrefix(ref, InlineMarker)
}

// DetectMIME infers an image MIME type from magic bytes. Unknown content
// falls back to image/jpeg.
func DetectMIME(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return "image/png"
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg"
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "image/webp"
	case bytes.Contains(bytes.ToUpper(sniffWindow(data)), []byte("SVG")):
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}

// sniffWindow bounds the textual SVG sniff to the head of the payload.
func sniffWindow(data []byte) []byte {
	if len(data) > 256 {
		return data[:256]
	}
	return data
}

// EncodeInline renders image bytes as a self-describing data URI. Empty input
// yields "" rather than an encoded empty blob.
func EncodeInline(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return "data:" + DetectMIME(data) + base64Separator + base64.StdEncoding.EncodeToString(data)
}

// DecodeInline returns the payload bytes of an inline reference. Plain paths,
// empty strings and malformed references yield nil; it never fails.
func DecodeInline(ref string) []byte {
	if !IsInline(ref) {
		return nil
	}
	idx := strings.Index(ref, base64Separator)
	if idx < 0 {
		return nil
	}
	payload := ref[idx+len(base64Separator):]
	if payload == "" {
		return nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	return data
}

// ExtensionForMIME derives a file extension for persisting an inline upload
// to disk.
func ExtensionForMIME(mime string) string {
	switch mime {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/svg+xml":
		return "svg"
	default:
		return "jpg"
	}
}
