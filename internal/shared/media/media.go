package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go-hrm/internal/shared/apperror"

	"github.com/google/uuid"
)

const MaxUploadBytes = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

// Validate checks size and extension of an uploaded file for the given form field.
func Validate(field string, fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadBytes {
		return apperror.Validation(map[string]string{
			field: "File too large. Maximum size allowed is 5 MB.",
		})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return apperror.Validation(map[string]string{field: "Unsupported file extension."})
	}
	return nil
}

type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Save writes the file to <root>/<field>/<uuid><ext> and returns the relative path.
func (s *Store) Save(field string, fh *multipart.FileHeader) (string, error) {
	if err := Validate(field, fh); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, field)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	rel := filepath.Join(field, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// Open resolves a stored relative path, refusing traversal outside root.
func (s *Store) Open(rel string) (*os.File, error) {
	clean := filepath.Clean("/" + rel)
	return os.Open(filepath.Join(s.root, clean))
}
