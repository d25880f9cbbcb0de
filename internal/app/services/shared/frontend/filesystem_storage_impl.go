package frontend

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

type filesystemStorage struct {
	Root string
}

func NewFilesystemStorage(root string) contracts.FrontendStorage {
	return &filesystemStorage{Root: root}
}

func (s *filesystemStorage) Open(ctx context.Context, name string) (*models.FrontendObject, error) {
	cleaned := cleanObjectName(name)
	fullPath := filepath.Join(s.Root, filepath.FromSlash(cleaned))

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, exceptions.ErrFrontendObjectNotFound(err, cleaned)
		}
		return nil, exceptions.ErrFrontendObjectRead(err, cleaned)
	}
	if info.IsDir() {
		return nil, exceptions.ErrFrontendObjectNotFound(nil, cleaned)
	}

	body, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, exceptions.ErrFrontendObjectRead(err, cleaned)
	}

	return &models.FrontendObject{
		Name:        cleaned,
		ContentType: contentTypeFor(cleaned, body),
		ModTime:     info.ModTime(),
		Body:        body,
	}, nil
}

// cleanObjectName turns a request path into a relative object name that
// cannot escape the root.
func cleanObjectName(name string) string {
	cleaned := path.Clean("/" + name)
	return cleaned[1:]
}
