// Package storage handles badge file uploads attached to admin reviews.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
)

// Images and PDFs only; everything else is rejected before touching disk.
var allowedContentTypes = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"application/pdf": ".pdf",
}

// BadgeStore writes uploaded badge files to local disk and computes the
// stable public URL they are served under.
type BadgeStore struct {
	dir     string
	baseURL string
	maxSize int64
}

func NewBadgeStore(cfg config.UploadsConfig) (*BadgeStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &BadgeStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		maxSize: cfg.MaxSize,
	}, nil
}

// Dir returns the on-disk uploads directory (served statically by main).
func (s *BadgeStore) Dir() string {
	return s.dir
}

// Save stores an uploaded badge file and returns its public URL. Filenames
// are disambiguated with a timestamp plus a random suffix so concurrent
// uploads of the same original name never collide.
func (s *BadgeStore) Save(header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported file type %q: only images and PDFs are allowed", contentType)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	base := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "" || base == "." {
		base = "badge"
	}

	filename := fmt.Sprintf("%s-%d-%s%s", base, time.Now().UnixMilli(), uuid.New().String()[:8], ext)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create badge file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write badge file: %w", err)
	}

	return s.baseURL + "/" + filename, nil
}
