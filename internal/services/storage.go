package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// StorageService resolves uploaded resume files on disk. Uploads themselves
// are written by the application-submission endpoint; this subsystem only
// reads them back by basename.
type StorageService interface {
	EnsureUploadDir() error
	GetFilePath(filename string) string
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}
