package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcos-nsantos/pixbox/internal/domain"
	"github.com/marcos-nsantos/pixbox/internal/domain/entity"
)

// LocalStorage keeps artifacts as plain files directly under root.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

// Location joins root and key verbatim, the same path Read opens.
func (s *LocalStorage) Location(key string) string {
	if strings.HasSuffix(s.root, "/") || strings.HasSuffix(s.root, string(filepath.Separator)) {
		return s.root + key
	}
	return s.root + string(filepath.Separator) + key
}

// Write stores data under key. The file appears atomically: readers see
// either nothing or the complete artifact.
func (s *LocalStorage) Write(ctx context.Context, key string, data []byte) (*entity.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating temp file: %v", domain.ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("%w: writing artifact: %v", domain.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing artifact: %v", domain.ErrStorage, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return nil, fmt.Errorf("%w: setting artifact mode: %v", domain.ErrStorage, err)
	}

	location := s.Location(key)
	if err := os.Rename(tmpName, location); err != nil {
		return nil, fmt.Errorf("%w: publishing artifact: %v", domain.ErrStorage, err)
	}

	return newArtifact(key, location, data), nil
}

func (s *LocalStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Location(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, key)
		}
		return nil, fmt.Errorf("%w: reading artifact: %v", domain.ErrStorage, err)
	}
	return data, nil
}
