package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxUploadSize caps files read for avatar and story uploads.
const MaxUploadSize = 20 << 20

var ErrTooLarge = errors.New("file exceeds upload size limit")

// EnsureParentDir creates the directory that will hold path, if any.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadUpload reads a local file for a multipart upload and returns its base
// name and contents.
func ReadUpload(path string) (string, []byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxUploadSize {
		return "", nil, ErrTooLarge
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	return filepath.Base(path), data, nil
}
