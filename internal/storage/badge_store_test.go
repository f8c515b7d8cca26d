package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
)

func newTestStore(t *testing.T) *BadgeStore {
	t.Helper()
	store, err := NewBadgeStore(config.UploadsConfig{
		Dir:     t.TempDir(),
		BaseURL: "/uploads",
		MaxSize: 1024,
	})
	if err != nil {
		t.Fatalf("NewBadgeStore: %v", err)
	}
	return store
}

// uploadHeader builds a real multipart.FileHeader the same way gin's
// FormFile does, so Save sees exactly what it gets in production.
func uploadHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="badgeFile"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["badgeFile"][0]
}

func TestSave_WritesFileAndReturnsURL(t *testing.T) {
	store := newTestStore(t)

	header := uploadHeader(t, "badge.png", "image/png", []byte("png-bytes"))
	url, err := store.Save(header)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasPrefix(url, "/uploads/badge-") {
		t.Errorf("url = %q, want /uploads/badge-... prefix", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want .png suffix", url)
	}

	onDisk := filepath.Join(store.Dir(), strings.TrimPrefix(url, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content = %q", data)
	}
}

func TestSave_UniqueFilenames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save(uploadHeader(t, "badge.png", "image/png", []byte("a")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, err := store.Save(uploadHeader(t, "badge.png", "image/png", []byte("b")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if first == second {
		t.Error("two uploads of the same filename produced the same URL")
	}
}

func TestSave_RejectsDisallowedType(t *testing.T) {
	store := newTestStore(t)

	cases := []struct {
		filename    string
		contentType string
	}{
		{"script.sh", "application/x-sh"},
		{"page.html", "text/html"},
		{"archive.zip", "application/zip"},
	}
	for _, tc := range cases {
		if _, err := store.Save(uploadHeader(t, tc.filename, tc.contentType, []byte("x"))); err == nil {
			t.Errorf("Save(%s %s) should be rejected", tc.filename, tc.contentType)
		}
	}
}

func TestSave_AcceptsPdf(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save(uploadHeader(t, "certificate.pdf", "application/pdf", []byte("%PDF-1.4")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !strings.HasSuffix(url, ".pdf") {
		t.Errorf("url = %q, want .pdf suffix", url)
	}
}

func TestSave_RejectsOversizedFile(t *testing.T) {
	store := newTestStore(t)

	big := bytes.Repeat([]byte("x"), 2048)
	if _, err := store.Save(uploadHeader(t, "big.png", "image/png", big)); err == nil {
		t.Error("Save() should reject files over the size limit")
	}
}

func TestSave_SanitizesFilename(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save(uploadHeader(t, "my badge file.png", "image/png", []byte("x")))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if strings.Contains(url, " ") {
		t.Errorf("url %q contains spaces", url)
	}
}
