package storage

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/pixbox/internal/domain"
)

const JPEGQuality = 90

// ImageCodecImpl decodes any format imaging understands and encodes in the
// format implied by the target name, falling back to PNG.
type ImageCodecImpl struct {
	quality  int
	fallback imaging.Format
}

func NewImageCodec() *ImageCodecImpl {
	return &ImageCodecImpl{
		quality:  JPEGQuality,
		fallback: imaging.PNG,
	}
}

// Decode keeps the stored pixel layout. EXIF orientation is not applied, so
// the decoded bounds always match the encoded ones.
func (c *ImageCodecImpl) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageDecode, err)
	}
	return img, nil
}

func (c *ImageCodecImpl) Encode(img image.Image, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, c.FormatFor(name), imaging.JPEGQuality(c.quality)); err != nil {
		return nil, fmt.Errorf("%w: encoding image: %v", domain.ErrStorage, err)
	}
	return buf.Bytes(), nil
}

// FormatFor returns the output format for name.
func (c *ImageCodecImpl) FormatFor(name string) imaging.Format {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return c.fallback
	}
	return format
}
