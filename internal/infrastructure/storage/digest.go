package storage

import (
	"encoding/hex"
	"mime"
	"path"

	"github.com/zeebo/blake3"

	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
)

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ContentType guesses the MIME type of an artifact from its key.
func ContentType(key string) string {
	if ct := mime.TypeByExtension(path.Ext(key)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func newArtifact(key, location string, data []byte) *entity.Artifact {
	return &entity.Artifact{
		Key:      key,
		Location: location,
		Size:     int64(len(data)),
		Digest:   Digest(data),
	}
}
