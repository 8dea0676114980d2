// Package uploads stores multipart uploads on the local filesystem under
// random names. Records persist the returned relative path, never the file
// content.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmarquez-dev/picboard/core"
)

// LocalStore writes files into Dir and exposes them under BasePath.
type LocalStore struct {
	Dir      string // filesystem directory uploads are written to
	BasePath string // public path prefix persisted with records, e.g. "/uploads"
}

var _ core.UploadStore = (*LocalStore)(nil)

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{
		Dir:      dir,
		BasePath: "/uploads",
	}
}

// Save writes the uploaded file under a fresh random name. The original
// client file name only contributes its extension.
func (s *LocalStore) Save(fh *multipart.FileHeader) (*core.StoredFile, error) {
	if fh == nil {
		return nil, fmt.Errorf("no file provided")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	return &core.StoredFile{
		Name: name,
		Path: path.Join(s.BasePath, name),
	}, nil
}
