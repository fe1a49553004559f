// internal/app/features/uploads/handler.go
package uploads

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadBytes is the server-side limit on a single uploaded image.
const MaxUploadBytes = 5 << 20 // 5 MB

// Handler accepts admin image uploads and returns the stored file's URL.
type Handler struct {
	Storage storage.Store
	Log     *zap.Logger
}

// NewHandler constructs an uploads Handler.
func NewHandler(store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{Storage: store, Log: logger}
}

// Serve stores one multipart file and responds with JSON. The admin forms
// call this from their image pickers and paste the returned URL into the
// image_url field.
// POST /admin/upload
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the 5 MB upload limit.")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field.")
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the 5 MB upload limit.")
		return
	}

	contentType := header.Header.Get("Content-Type")
	path := uploadPath(header.Filename)

	err = h.Storage.Put(r.Context(), path, file, &storage.PutOptions{ContentType: contentType})
	if err != nil {
		h.Log.Error("store upload failed", zap.Error(err), zap.String("path", path))
		writeError(w, http.StatusInternalServerError, "Could not store the file.")
		return
	}

	h.Log.Info("file uploaded",
		zap.String("path", path),
		zap.Int64("size", header.Size),
		zap.String("content_type", contentType))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"url": h.Storage.URL(path)})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// uploadPath builds a collision-free storage path: uploads/YYYY/MM/uuid-name.
func uploadPath(filename string) string {
	now := time.Now().UTC()
	dir := fmt.Sprintf("uploads/%04d/%02d", now.Year(), now.Month())
	name := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	return filepath.ToSlash(filepath.Join(dir, name))
}

// sanitizeFilename strips path components and characters that are unsafe
// in storage keys.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	// Base maps "" to "." and a bare parent reference stays "..";
	// neither is a usable storage key segment.
	if filename == "." || filename == ".." {
		return "file"
	}

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}
	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
