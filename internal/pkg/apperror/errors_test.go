package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/marcos-nsantos/pixbox/internal/domain"
	"github.com/marcos-nsantos/pixbox/internal/pkg/apperror"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       string
		httpStatus int
		grpcCode   codes.Code
	}{
		{"invalid image", domain.ErrInvalidImage, "INVALID_ARGUMENT", http.StatusBadRequest, codes.InvalidArgument},
		{"not found", fmt.Errorf("reading: %w", domain.ErrArtifactNotFound), "NOT_FOUND", http.StatusNotFound, codes.NotFound},
		{"decode", fmt.Errorf("decoding: %w", domain.ErrImageDecode), "DECODE_FAULT", http.StatusInternalServerError, codes.Internal},
		{"storage", fmt.Errorf("writing: %w", domain.ErrStorage), "STORAGE_FAULT", http.StatusInternalServerError, codes.Internal},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperror.FromDomain(tt.err)
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.httpStatus, appErr.StatusCode)
			assert.Equal(t, tt.grpcCode, appErr.GRPCCode)
		})
	}
}

func TestGRPCStatus(t *testing.T) {
	t.Run("invalid image keeps fixed message", func(t *testing.T) {
		err := apperror.GRPCStatus(domain.ErrInvalidImage)

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
		assert.Equal(t, "provided image was invalid", st.Message())
	})

	t.Run("passes status errors through", func(t *testing.T) {
		original := status.Error(codes.ResourceExhausted, "busy")
		assert.Equal(t, original, apperror.GRPCStatus(original))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, apperror.GRPCStatus(nil))
	})
}
