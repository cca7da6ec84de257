package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/castkeep/catalog-api/pkg/errors"
	"github.com/google/uuid"
)

// MaxUploadSize is the default cover image size cap (5 MiB)
const MaxUploadSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Service stores uploaded cover images under a static-served directory.
// Files are opaque blobs; nothing is transcoded or resized.
type Service struct {
	dir        string
	publicPath string
	maxSize    int64
}

// NewService creates the upload store, ensuring the directory exists
func NewService(dir, publicPath string, maxSize int64) (*Service, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	return &Service{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		maxSize:    maxSize,
	}, nil
}

// Save validates and persists one uploaded image, returning the
// relative path clients use to fetch it (e.g. /uploads/image-....png).
// Rejections are validation errors, surfaced to clients as 400s.
func (s *Service) Save(fieldName string, file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxSize {
		return "", apperrors.ValidationError(fieldName,
			fmt.Sprintf("file exceeds the maximum size of %d bytes", s.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ValidationError(fieldName,
			"only images are allowed (jpeg, jpg, png, gif, webp)")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	// Sniff the real content type rather than trusting the client header
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading uploaded file: %w", err)
	}
	if !allowedMIMETypes[http.DetectContentType(head[:n])] {
		return "", apperrors.ValidationError(fieldName,
			"only images are allowed (jpeg, jpg, png, gif, webp)")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding uploaded file: %w", err)
	}

	name := fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixMilli(), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxSize)); err != nil {
		return "", fmt.Errorf("writing stored file: %w", err)
	}

	return path.Join(s.publicPath, name), nil
}

// Dir returns the directory uploads are stored in (served statically)
func (s *Service) Dir() string {
	return s.dir
}
