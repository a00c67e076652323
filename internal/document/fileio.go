package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileIO is the file-system collaborator. The document layer never touches
// files except through it.
type FileIO interface {
	Read(path string) (string, error)
	Write(path, text string) error
	Canonicalize(path string) (string, error)
}

// OSFileIO reads and writes the local file system.
type OSFileIO struct{}

func (OSFileIO) Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func (OSFileIO) Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	return nil
}

// Canonicalize returns the absolute, symlink-resolved path. For a file that
// does not exist yet only its directory is resolved.
func (OSFileIO) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if dir, derr := filepath.EvalSymlinks(filepath.Dir(abs)); derr == nil {
				return filepath.Join(dir, filepath.Base(abs)), nil
			}
			return filepath.Clean(abs), nil
		}
		return "", err
	}
	return resolved, nil
}
