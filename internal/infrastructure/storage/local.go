package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/senda-infinita/internal/config"
	"github.com/senda-infinita/internal/domain/repository"
	"github.com/senda-infinita/internal/pkg/errors"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type localStorage struct {
	dir       string
	publicURL string
	logger    *zap.Logger
}

// NewLocalStorage creates a PhotoStorage that writes files to a local
// directory and serves them under the configured public prefix.
func NewLocalStorage(cfg *config.UploadConfig, logger *zap.Logger) (repository.PhotoStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStorage{
		dir:       cfg.Dir,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}, nil
}

func (s *localStorage) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", errors.ErrValidation.WithMessage(
			fmt.Sprintf("unsupported content type %q", contentType))
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("Failed to write upload",
			zap.String("path", path),
			zap.Error(err))
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	url := s.publicURL + "/" + name
	s.logger.Debug("Upload stored",
		zap.String("path", path),
		zap.String("url", url))
	return url, nil
}

func (s *localStorage) Remove(ctx context.Context, url string) error {
	// Only URLs we produced ourselves map back to files on disk.
	if !strings.HasPrefix(url, s.publicURL+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, s.publicURL+"/"))
	path := filepath.Join(s.dir, name)

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.logger.Error("Failed to remove upload",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}
