package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/marcos-nsantos/pixbox/internal/domain"
)

type AppError struct {
	Code       string     `json:"code"`
	Message    string     `json:"message"`
	StatusCode int        `json:"-"`
	GRPCCode   codes.Code `json:"-"`
	Err        error      `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int, grpcCode codes.Code) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		GRPCCode:   grpcCode,
	}
}

func InvalidArgument(message string) *AppError {
	return &AppError{
		Code:       "INVALID_ARGUMENT",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		GRPCCode:   codes.InvalidArgument,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
		GRPCCode:   codes.NotFound,
	}
}

func DecodeFault(err error) *AppError {
	return &AppError{
		Code:       "DECODE_FAULT",
		Message:    "image could not be decoded",
		StatusCode: http.StatusInternalServerError,
		GRPCCode:   codes.Internal,
		Err:        err,
	}
}

func StorageFault(err error) *AppError {
	return &AppError{
		Code:       "STORAGE_FAULT",
		Message:    "storage unavailable",
		StatusCode: http.StatusInternalServerError,
		GRPCCode:   codes.Internal,
		Err:        err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		GRPCCode:   codes.Internal,
		Err:        err,
	}
}

// FromDomain classifies err by the domain sentinel it wraps.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		return InvalidArgument(domain.ErrInvalidImage.Error())
	case errors.Is(err, domain.ErrArtifactNotFound):
		return NotFound("artifact")
	case errors.Is(err, domain.ErrImageDecode):
		return DecodeFault(err)
	case errors.Is(err, domain.ErrStorage):
		return StorageFault(err)
	default:
		return Internal(err)
	}
}

// GRPCStatus converts err into a gRPC status error carrying the stable message.
func GRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	appErr := FromDomain(err)
	return status.Error(appErr.GRPCCode, appErr.Message)
}

func Is(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func StatusCode(err error) int {
	return FromDomain(err).StatusCode
}
