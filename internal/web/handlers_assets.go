package web

import (
	"errors"
	"net/http"
)

// handleUploadAsset stores an uploaded image and returns its public URL.
func (s *Server) handleUploadAsset(w http.ResponseWriter, r *http.Request) {
	if s.assets == nil {
		writeError(w, http.StatusNotImplemented, "asset uploads are not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Assets.MaxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "image exceeds the maximum upload size")
			return
		}
		writeError(w, http.StatusBadRequest, `multipart upload with a "file" field is required`)
		return
	}
	defer file.Close()

	url, err := s.assets.Save(header.Filename, file)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}
