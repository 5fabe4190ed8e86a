package imagestore_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/require"
)

// encodeJPEGWithOrientation encodes a w×h JPEG tagged with an Exif
// Orientation value.
func encodeJPEGWithOrientation(t *testing.T, w, h int, orientation uint16) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 12), G: uint8(y * 12), B: 60, A: 255})
		}
	}

	var raw bytes.Buffer
	require.NoError(t, jpeg.Encode(&raw, img, &jpeg.Options{Quality: 95}))

	payload := []byte("Exif\x00\x00")
	payload = append(payload, 'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08)
	payload = append(payload, 0x00, 0x01)
	payload = append(payload,
		0x01, 0x12, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		byte(orientation>>8), byte(orientation), 0x00, 0x00,
	)
	payload = append(payload, 0x00, 0x00, 0x00, 0x00)

	size := len(payload) + 2
	segment := append([]byte{0xFF, 0xE1, byte(size >> 8), byte(size)}, payload...)

	data := raw.Bytes()
	out := make([]byte, 0, len(data)+len(segment))
	out = append(out, data[:2]...)
	out = append(out, segment...)
	return append(out, data[2:]...)
}
