package handler_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/marcos-nsantos/pixbox/internal/adapter/handler"
	"github.com/marcos-nsantos/pixbox/internal/adapter/rpc/pixbox"
	"github.com/marcos-nsantos/pixbox/internal/domain"
	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
	"github.com/marcos-nsantos/pixbox/internal/mocks"
	"github.com/marcos-nsantos/pixbox/internal/usecase/imagestore"
)

func TestStorageServer_Upload(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode codes.Code
	}{
		{"saved", nil, codes.OK},
		{"invalid image", domain.ErrInvalidImage, codes.InvalidArgument},
		{"decode fault", fmt.Errorf("decoding: %w", domain.ErrImageDecode), codes.Internal},
		{"storage fault", fmt.Errorf("writing: %w", domain.ErrStorage), codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			imageSvc := mocks.NewMockImageService(ctrl)
			srv := handler.NewStorageServer(imageSvc)

			call := imageSvc.EXPECT().Upload(gomock.Any(), entity.Image{Name: "cat.png", Data: []byte{1}})
			if tt.svcErr != nil {
				call.Return(nil, tt.svcErr)
			} else {
				call.Return(&imagestore.UploadResult{Status: imagestore.StatusSaved}, nil)
			}

			resp, err := srv.Upload(context.Background(), &pixbox.Image{Name: "cat.png", Data: []byte{1}})
			if tt.wantCode == codes.OK {
				require.NoError(t, err)
				assert.Equal(t, "Image saved", resp.GetStatus())
				return
			}

			assert.Nil(t, resp)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}

	t.Run("invalid image message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		imageSvc := mocks.NewMockImageService(ctrl)
		srv := handler.NewStorageServer(imageSvc)

		imageSvc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInvalidImage)

		_, err := srv.Upload(context.Background(), &pixbox.Image{})
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, "provided image was invalid", st.Message())
	})
}

func TestStorageServer_Download(t *testing.T) {
	t.Run("returns image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		imageSvc := mocks.NewMockImageService(ctrl)
		srv := handler.NewStorageServer(imageSvc)

		imageSvc.EXPECT().
			Download(gomock.Any(), "oceanic-cat.png").
			Return(&entity.Image{Name: "./images/edited/oceanic-cat.png", Data: []byte{9}}, nil)

		img, err := srv.Download(context.Background(), &pixbox.ImageRequest{ImageId: "oceanic-cat.png"})
		require.NoError(t, err)
		assert.Equal(t, "./images/edited/oceanic-cat.png", img.GetName())
		assert.Equal(t, []byte{9}, img.GetData())
	})

	t.Run("maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		imageSvc := mocks.NewMockImageService(ctrl)
		srv := handler.NewStorageServer(imageSvc)

		imageSvc.EXPECT().Download(gomock.Any(), "nope").Return(nil, domain.ErrArtifactNotFound)

		_, err := srv.Download(context.Background(), &pixbox.ImageRequest{ImageId: "nope"})
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}
