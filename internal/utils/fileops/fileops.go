package fileops

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FileOps provides a unified interface for common file operations
// combining path validation, error handling, and caching
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
	cacheManager  *CacheManager
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return newFileOpsWithCache(NewCacheManager())
}

// newFileOpsWithCache creates a FileOps instance with a shared cache manager
func newFileOpsWithCache(cacheManager *CacheManager) *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
		cacheManager:  cacheManager,
	}
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ErrorWrapper returns the error wrapper instance
func (fo *FileOps) ErrorWrapper() *ErrorWrapper {
	return fo.errorWrapper
}

// CacheManager returns the cache manager instance
func (fo *FileOps) CacheManager() *CacheManager {
	return fo.cacheManager
}

// ReadFile reads a file with path validation, error handling, and caching
func (fo *FileOps) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return nil, err
	}

	if cached, exists := fo.cacheManager.GetContent(cleanPath); exists {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	fo.cacheManager.SetContent(cleanPath, content)

	return content, nil
}

// WriteFile writes content to a file with path validation and error handling
func (fo *FileOps) WriteFile(filePath string, content []byte, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}

	err = os.WriteFile(cleanPath, content, perm)
	if err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	fo.cacheManager.InvalidateFile(cleanPath)

	return nil
}

// EnsureDir creates dirPath and any missing parents
func (fo *FileOps) EnsureDir(dirPath string, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dirPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cleanPath, perm); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}

	return nil
}

// RemoveFile removes a file with path validation and error handling
func (fo *FileOps) RemoveFile(filePath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return err
	}

	err = os.Remove(cleanPath)
	if err != nil {
		return fo.errorWrapper.WrapFileRemovalError(cleanPath, err)
	}

	fo.cacheManager.InvalidateFile(cleanPath)

	return nil
}

// Glob expands a doublestar pattern into the sorted list of matching files.
// Directories are left out.
func (fo *FileOps) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Clean(pattern), doublestar.WithFilesOnly())
	if err != nil {
		return nil, fo.errorWrapper.WrapGlobError(pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// HasMeta reports whether path contains glob metacharacters
func (fo *FileOps) HasMeta(path string) bool {
	return hasMeta(path)
}

// Exists checks if a path exists using the path validator
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}

func hasMeta(path string) bool {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
