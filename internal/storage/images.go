// Package storage persists uploaded images on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore writes uploaded files under a base directory and hands back
// the relative path stored with the owning row.
type ImageStore struct {
	baseDir string
}

func NewImageStore(baseDir string) *ImageStore {
	return &ImageStore{baseDir: baseDir}
}

// Save stores the uploaded file under baseDir/subdir with a random name,
// keeping the original extension, and returns the relative path. Uploaded
// file names are never trusted as-is.
func (s *ImageStore) Save(subdir string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(filepath.Join(s.baseDir, subdir, name)), nil
}
