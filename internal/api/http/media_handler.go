package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/storage"
)

const maxUploadBytes = 20 << 20

// MediaHandler accepts multipart uploads (house photos, avatars,
// contract PDFs) and serves stored files back by their opaque name.
type MediaHandler struct {
	files storage.FileStore
}

func NewMediaHandler(files storage.FileStore) *MediaHandler {
	return &MediaHandler{files: files}
}

type uploadResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, domain.NewValidation("invalid multipart payload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, domain.NewValidation("missing form field %q", "file"))
		return
	}
	defer file.Close()

	name, url, err := h.files.Save(file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Name: name, URL: url})
}

func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	reader, err := h.files.Open(name)
	if err != nil {
		writeError(w, domain.NewNotFound("media %q not found", name))
		return
	}
	defer reader.Close()

	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, reader); err != nil {
		return
	}
}
