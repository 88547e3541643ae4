package filestorage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pradeep/vidyapith/internal/pkg/logger"
)

// LocalStorage saves uploaded documents on the local filesystem.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new LocalStorage rooted at basePath,
// creating the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Save writes data under a unique filename derived from originalName's
// extension and returns the stored path relative to the storage root.
func (ls *LocalStorage) Save(data []byte, originalName string) (string, error) {
	storedName := uuid.New().String() + filepath.Ext(originalName)
	dstPath := filepath.Join(ls.basePath, storedName)

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file")
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", originalName).Str("saved_as", storedName).Msg("File saved")
	return storedName, nil
}

// Delete removes a stored file. Deleting a file that does not exist is not
// an error (idempotent cleanup).
func (ls *LocalStorage) Delete(storedPath string) error {
	if storedPath == "" {
		return nil
	}

	filename := filepath.Base(storedPath)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid file path: %s", storedPath)
	}

	physicalPath := filepath.Join(ls.basePath, filename)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// FullPath returns the full filesystem path for a stored file
func (ls *LocalStorage) FullPath(storedPath string) string {
	return filepath.Join(ls.basePath, filepath.Base(storedPath))
}
