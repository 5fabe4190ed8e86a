package handler

import (
	"context"

	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
	"github.com/marcos-nsantos/pixbox/internal/usecase/imagestore"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ImageService interface {
	Upload(ctx context.Context, img entity.Image) (*imagestore.UploadResult, error)
	Download(ctx context.Context, imageID string) (*entity.Image, error)
}
