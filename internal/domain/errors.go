package domain

import "errors"

var (
	ErrInvalidImage     = errors.New("provided image was invalid")
	ErrImageDecode      = errors.New("image could not be decoded")
	ErrArtifactNotFound = errors.New("artifact not found")
	ErrStorage          = errors.New("storage unavailable")
	ErrUnknownTransform = errors.New("unknown transform")
)
