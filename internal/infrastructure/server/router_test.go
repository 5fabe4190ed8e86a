package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixbox/internal/adapter/handler"
	"github.com/marcos-nsantos/pixbox/internal/domain"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/server"
	"github.com/marcos-nsantos/pixbox/internal/mocks"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	imageSvc := mocks.NewMockImageService(ctrl)
	router := server.NewRouter(server.RouterConfig{
		ImageHandler: handler.NewImageHandler(imageSvc, 1<<20),
		Logger:       zap.NewNop(),
		Environment:  "test",
	})

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("download route", func(t *testing.T) {
		imageSvc.EXPECT().Download(gomock.Any(), "oceanic-cat.png").Return(nil, domain.ErrArtifactNotFound)

		w := httptest.NewRecorder()
		router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/images/oceanic-cat.png", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router := server.NewRouter(server.RouterConfig{
		ImageHandler: handler.NewImageHandler(nil, 1<<20),
		Logger:       zap.NewNop(),
		Environment:  "test",
	})

	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/images/{id}")
}
