package storage

import (
	"context"
	"image"

	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ArtifactStorage is the flat, write-once namespace edited images live in.
type ArtifactStorage interface {
	Write(ctx context.Context, key string, data []byte) (*entity.Artifact, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Location(key string) string
}

// ImageTransformer applies one edit per call, chosen from a fixed named set.
type ImageTransformer interface {
	Transform(img image.Image) (name string, edited image.Image)
	Names() []string
}

type ImageCodec interface {
	Decode(data []byte) (image.Image, error)
	Encode(img image.Image, name string) ([]byte, error)
}
