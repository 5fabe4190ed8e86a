package handler

import (
	"context"

	"github.com/marcos-nsantos/pixbox/internal/adapter/rpc/pixbox"
	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
	"github.com/marcos-nsantos/pixbox/internal/pkg/apperror"
)

// StorageServer exposes ImageService over gRPC.
type StorageServer struct {
	pixbox.UnimplementedStorageServer
	imageSvc ImageService
}

func NewStorageServer(imageSvc ImageService) *StorageServer {
	return &StorageServer{imageSvc: imageSvc}
}

func (s *StorageServer) Upload(ctx context.Context, in *pixbox.Image) (*pixbox.StorageResponse, error) {
	result, err := s.imageSvc.Upload(ctx, entity.Image{
		Name: in.GetName(),
		Data: in.GetData(),
	})
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &pixbox.StorageResponse{Status: result.Status}, nil
}

func (s *StorageServer) Download(ctx context.Context, in *pixbox.ImageRequest) (*pixbox.Image, error) {
	img, err := s.imageSvc.Download(ctx, in.GetImageId())
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return &pixbox.Image{Name: img.Name, Data: img.Data}, nil
}
