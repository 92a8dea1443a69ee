package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const targetExistsErrorTemplateConstant = "%w: %s"

// OSFileSystem implements the flatten filesystem contract using operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Move renames sourcePath to targetPath, refusing to replace an existing
// target. os.Rename silently clobbers on POSIX, so the target is checked
// first; a racing writer can still win between the check and the rename.
func (OSFileSystem) Move(sourcePath string, targetPath string) error {
	_, statError := os.Lstat(targetPath)
	if statError == nil {
		return fmt.Errorf(targetExistsErrorTemplateConstant, fs.ErrExist, targetPath)
	}
	if !errors.Is(statError, fs.ErrNotExist) {
		return statError
	}
	return os.Rename(sourcePath, targetPath)
}

// ListDirectory returns the names of all entries in a directory, hidden ones included.
func (OSFileSystem) ListDirectory(path string) ([]string, error) {
	directoryEntries, readError := os.ReadDir(path)
	if readError != nil {
		return nil, readError
	}

	entryNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entryNames = append(entryNames, directoryEntry.Name())
	}
	return entryNames, nil
}

// RemoveDirectory removes a directory; it fails when the directory is not empty.
func (OSFileSystem) RemoveDirectory(path string) error {
	return os.Remove(path)
}
