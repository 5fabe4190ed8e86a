package storage_test

import (
	"bytes"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/pixbox/internal/domain"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/storage"
)

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

func TestImageCodec_Decode(t *testing.T) {
	codec := storage.NewImageCodec()

	t.Run("decodes png", func(t *testing.T) {
		img, err := codec.Decode(encodePNG(t, 10, 10))
		require.NoError(t, err)

		assert.Equal(t, 10, img.Bounds().Dx())
		assert.Equal(t, 10, img.Bounds().Dy())
	})

	t.Run("ignores exif orientation", func(t *testing.T) {
		data := encodeJPEGWithOrientation(t, 20, 10, 6)

		rotated, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		require.NoError(t, err)
		require.Equal(t, image.Pt(10, 20), rotated.Bounds().Size())

		img, err := codec.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, image.Pt(20, 10), img.Bounds().Size())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := codec.Decode([]byte("definitely not an image"))
		assert.ErrorIs(t, err, domain.ErrImageDecode)
	})
}

func TestImageCodec_Encode(t *testing.T) {
	codec := storage.NewImageCodec()
	img, err := codec.Decode(encodePNG(t, 4, 3))
	require.NoError(t, err)

	tests := []struct {
		name  string
		magic []byte
	}{
		{"oceanic-cat.png", pngMagic},
		{"oceanic-cat.jpg", jpegMagic},
		{"oceanic-cat.JPEG", jpegMagic},
		{"oceanic-cat", pngMagic},
		{"oceanic-cat.webp", pngMagic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.Encode(img, tt.name)
			require.NoError(t, err)

			assert.True(t, bytes.HasPrefix(data, tt.magic))

			decoded, err := codec.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds().Size(), decoded.Bounds().Size())
		})
	}
}

func TestImageCodec_FormatFor(t *testing.T) {
	codec := storage.NewImageCodec()

	assert.Equal(t, imaging.GIF, codec.FormatFor("a.gif"))
	assert.Equal(t, imaging.BMP, codec.FormatFor("a.bmp"))
	assert.Equal(t, imaging.PNG, codec.FormatFor("no-extension"))
}

func TestDigest(t *testing.T) {
	a := storage.Digest([]byte("pixels"))
	b := storage.Digest([]byte("pixels"))
	c := storage.Digest([]byte("other"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", storage.ContentType("oceanic-cat.png"))
	assert.Equal(t, "image/jpeg", storage.ContentType("oceanic-cat.jpg"))
	assert.Equal(t, "application/octet-stream", storage.ContentType("oceanic-cat"))
}
