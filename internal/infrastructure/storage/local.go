// Package storage persists uploaded profile photos on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedExtension is returned for files outside the allow-list.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
}

// LocalStore writes photos under a single directory with generated
// names, so client-supplied filenames never touch the filesystem.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save stores the content under <uuid-hex>.<ext> and returns the stored
// filename. Only the extension of the original name is kept, lowercased
// and checked against the allow-list; content is not inspected.
func (s *LocalStore) Save(originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrUnsupportedExtension
	}

	name := fmt.Sprintf("%s.%s", strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}
