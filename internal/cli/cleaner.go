package cli

import (
	"github.com/toyz/dtsdoc/internal/utils/fileops"
)

// Cleaner handles removing a generated document
type Cleaner struct {
	fileOps *fileops.FileOps
}

// NewCleaner creates a new cleaner
func NewCleaner(fileOps *fileops.FileOps) *Cleaner {
	if fileOps == nil {
		fileOps = fileops.NewFileOps()
	}
	return &Cleaner{
		fileOps: fileOps,
	}
}

// CleanDocument removes the document at path. A missing document is not an
// error; removed reports whether a file was deleted.
func (c *Cleaner) CleanDocument(path string) (removed bool, err error) {
	if !c.fileOps.IsFile(path) {
		return false, nil
	}

	if err := c.fileOps.RemoveFile(path); err != nil {
		return false, err
	}

	return true, nil
}
