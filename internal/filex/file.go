// Package filex holds the file helpers of the CLI: its data directory and
// the face inputs users point it at.
package filex

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotJPEG = errors.New("not a JPEG file")

var jpegMagic = []byte{0xFF, 0xD8, 0xFF}

// EnsureDir creates dir (relative paths are taken from the working
// directory) and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadJPEG reads a snapshot from path and checks its SOI marker.
func ReadJPEG(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !bytes.HasPrefix(b, jpegMagic) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotJPEG)
	}
	return b, nil
}

// ReadDescriptor returns the trimmed contents of a face descriptor file.
func ReadDescriptor(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

// WriteFile stores data at path, creating parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0o600)
}
