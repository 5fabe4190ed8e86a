package imagestore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixbox/internal/adapter/storage"
	"github.com/marcos-nsantos/pixbox/internal/domain"
	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
)

const StatusSaved = "Image saved"

type Service struct {
	slot        *Slot
	transformer storage.ImageTransformer
	codec       storage.ImageCodec
	storage     storage.ArtifactStorage
	logger      *zap.Logger
}

func NewService(
	transformer storage.ImageTransformer,
	codec storage.ImageCodec,
	artifactStorage storage.ArtifactStorage,
	logger *zap.Logger,
) *Service {
	return &Service{
		slot:        NewSlot(),
		transformer: transformer,
		codec:       codec,
		storage:     artifactStorage,
		logger:      logger,
	}
}

type UploadResult struct {
	Status   string
	Artifact *entity.Artifact
}

// Upload overwrites the shared slot with img, then decodes, edits and
// persists it while still holding the slot, so concurrent uploads are
// serialized end to end. The slot keeps the payload even when validation
// fails.
func (s *Service) Upload(ctx context.Context, img entity.Image) (*UploadResult, error) {
	ctx = context.WithoutCancel(ctx)

	var result *UploadResult
	err := s.slot.With(func(buf *entity.Image) error {
		buf.Name = img.Name
		buf.Data = img.Data

		if buf.IsEmpty() {
			s.logger.Warn("rejected empty image", zap.String("name", buf.Name))
			return domain.ErrInvalidImage
		}

		decoded, err := s.codec.Decode(buf.Data)
		if err != nil {
			return fmt.Errorf("decoding upload %q: %w", buf.Name, err)
		}

		transformName, edited := s.transformer.Transform(decoded)
		key := entity.ArtifactKey(transformName, buf.ShortName())

		encoded, err := s.codec.Encode(edited, key)
		if err != nil {
			return fmt.Errorf("encoding artifact %q: %w", key, err)
		}

		artifact, err := s.storage.Write(ctx, key, encoded)
		if err != nil {
			return fmt.Errorf("persisting artifact %q: %w", key, err)
		}
		artifact.Transform = transformName

		s.logger.Info("image saved",
			zap.String("transform", transformName),
			zap.String("key", key),
			zap.String("location", artifact.Location),
			zap.Int64("bytes", artifact.Size),
			zap.String("digest", artifact.Digest),
		)

		result = &UploadResult{Status: StatusSaved, Artifact: artifact}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Download reads the artifact stored under imageID and returns it
// re-encoded, named by its storage location.
func (s *Service) Download(ctx context.Context, imageID string) (*entity.Image, error) {
	ctx = context.WithoutCancel(ctx)

	if !entity.IsValidArtifactKey(imageID) {
		return nil, fmt.Errorf("%w: %q", domain.ErrArtifactNotFound, imageID)
	}

	location := s.storage.Location(imageID)

	data, err := s.storage.Read(ctx, imageID)
	if err != nil {
		return nil, fmt.Errorf("reading artifact %q: %w", imageID, err)
	}

	decoded, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding artifact %q: %w", imageID, err)
	}

	encoded, err := s.codec.Encode(decoded, imageID)
	if err != nil {
		return nil, fmt.Errorf("encoding artifact %q: %w", imageID, err)
	}

	s.logger.Info("image retrieved", zap.String("path", location), zap.Int("bytes", len(encoded)))

	return &entity.Image{Name: location, Data: encoded}, nil
}

// Current returns a copy of the shared slot contents.
func (s *Service) Current() entity.Image {
	return s.slot.Snapshot()
}

func (s *Service) Transforms() []string {
	return s.transformer.Names()
}
