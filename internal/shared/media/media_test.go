package media

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go-hrm/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", name)
	assert.NoError(t, err)
	_, _ = part.Write(content)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	assert.NoError(t, req.ParseMultipartForm(10<<20))
	return req.MultipartForm.File["file"][0]
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("profile_photo", &multipart.FileHeader{Filename: "me.JPG", Size: 1024}))

	err := Validate("profile_photo", &multipart.FileHeader{Filename: "me.exe", Size: 10})
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, map[string]string{"profile_photo": "Unsupported file extension."}, appErr.Details)

	err = Validate("pan_front_image", &multipart.FileHeader{Filename: "pan.pdf", Size: MaxUploadBytes + 1})
	assert.Error(t, err)
}

func TestStore_SaveAndOpen(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	rel, err := store.Save("profile_photo", fileHeader(t, "me.png", []byte("png-bytes")))
	assert.NoError(t, err)
	assert.Equal(t, "profile_photo", filepath.Dir(rel))

	f, err := store.Open(rel)
	assert.NoError(t, err)
	defer f.Close()

	data, err := os.ReadFile(f.Name())
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}
