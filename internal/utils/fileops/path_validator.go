package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/dtsdoc/internal/errors"
)

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// ValidateAndClean validates and cleans a file path, ensuring it exists
func (pv *PathValidator) ValidateAndClean(filePath string) (string, error) {
	cleanPath, err := pv.ValidateAndCleanOptional(filePath)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", errors.FileSystemError("access", cleanPath, "file does not exist")
	}

	return cleanPath, nil
}

// ValidateAndCleanOptional validates and cleans a path but doesn't require it to exist
func (pv *PathValidator) ValidateAndCleanOptional(filePath string) (string, error) {
	if filePath == "" {
		return "", errors.FileSystemError("access", filePath, "file path cannot be empty")
	}

	cleanPath := filepath.Clean(filePath)

	// Clean leaves '..' segments only at the start of a relative path.
	// Names such as "my..types" are ordinary segments.
	leading := true
	for _, segment := range strings.Split(filepath.ToSlash(cleanPath), "/") {
		if segment != ".." {
			leading = false
			continue
		}
		if !leading {
			return "", errors.FileSystemError("access", filePath, "path traversal not allowed")
		}
	}

	return cleanPath, nil
}

// Exists checks if a path exists
func (pv *PathValidator) Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile checks if a path exists and is a regular file
func (pv *PathValidator) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GetAbsolutePath resolves a path to its absolute form
func (pv *PathValidator) GetAbsolutePath(path string) (string, error) {
	cleanPath, err := pv.ValidateAndCleanOptional(path)
	if err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return "", errors.WrapFileSystemError("resolve path", cleanPath, err)
	}

	return absPath, nil
}

// Within reports whether path is root itself or lies below it. Both paths
// must be absolute and clean.
func (pv *PathValidator) Within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
