package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/storage"
	"github.com/marcos-nsantos/pixbox/internal/pkg/httputil"
)

const (
	HeaderImageName = "X-Image-Name"

	// multipartOverhead leaves room for boundaries and part headers.
	multipartOverhead = 1 << 20
)

type StatusResponse struct {
	Status string `json:"status"`
}

type ImageHandler struct {
	imageSvc      ImageService
	maxUploadSize int64
}

func NewImageHandler(imageSvc ImageService, maxUploadSize int64) *ImageHandler {
	return &ImageHandler{imageSvc: imageSvc, maxUploadSize: maxUploadSize}
}

// Upload godoc
//
//	@Summary		Upload an image
//	@Description	Applies a randomly chosen filter and stores the result as {filter}-{name}
//	@Tags			images
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		201		{object}	StatusResponse
//	@Failure		400		{object}	httputil.ErrorResponse
//	@Failure		413		{object}	httputil.ErrorResponse
//	@Failure		500		{object}	httputil.ErrorResponse
//	@Router			/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+multipartOverhead)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "TOO_LARGE", "image exceeds upload limit")
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "TOO_LARGE", "image exceeds upload limit")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file could not be read")
		return
	}

	result, err := h.imageSvc.Upload(c.Request.Context(), entity.Image{
		Name: header.Filename,
		Data: data,
	})
	if err != nil {
		_ = c.Error(err)
		httputil.HandleError(c, err)
		return
	}

	httputil.Created(c, StatusResponse{Status: result.Status})
}

// Download godoc
//
//	@Summary		Download an edited image
//	@Tags			images
//	@Produce		image/png,image/jpeg,image/gif,image/tiff,image/bmp
//	@Param			id	path		string	true	"Artifact key"
//	@Success		200	{file}		binary
//	@Header			200	{string}	X-Image-Name	"Lookup path of the artifact"
//	@Failure		404	{object}	httputil.ErrorResponse
//	@Failure		500	{object}	httputil.ErrorResponse
//	@Router			/images/{id} [get]
func (h *ImageHandler) Download(c *gin.Context) {
	img, err := h.imageSvc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		httputil.HandleError(c, err)
		return
	}

	c.Header(HeaderImageName, img.Name)
	c.Data(http.StatusOK, storage.ContentType(img.Name), img.Data)
}
