// internal/app/features/uploads/handler_test.go
package uploads

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestServe_MissingFileField(t *testing.T) {
	h := NewHandler(nil, zap.NewNop())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("note", "no file here"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Fatal("expected an error message in the response")
	}
}

func TestServe_NotMultipart(t *testing.T) {
	h := NewHandler(nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadPath(t *testing.T) {
	path := uploadPath("team photo.png")

	if !strings.HasPrefix(path, "uploads/") {
		t.Fatalf("expected uploads/ prefix, got %q", path)
	}
	if !strings.HasSuffix(path, "-team_photo.png") {
		t.Fatalf("expected sanitized filename suffix, got %q", path)
	}
	if strings.Contains(path, " ") {
		t.Fatalf("path contains a space: %q", path)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"logo.png", "logo.png"},
		{"team photo.jpg", "team_photo.jpg"},
		{"../../etc/passwd", "passwd"},
		{"", "file"},
		{".", "file"},
		{"..", "file"},
		{"résumé.pdf", "r__sum__.pdf"},
	}
	for _, tc := range tests {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFilename_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("a", 200) + ".png"
	got := sanitizeFilename(long)
	if len(got) > 100 {
		t.Fatalf("expected at most 100 chars, got %d", len(got))
	}
	if !strings.HasSuffix(got, ".png") {
		t.Fatalf("expected extension preserved, got %q", got)
	}
}
