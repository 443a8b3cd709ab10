package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/validate"
	"github.com/eventdesk/agendahub/internal/workbook"
)

// importResponse is the envelope returned by both import endpoints.
type importResponse struct {
	Success bool                        `json:"success"`
	Stats   *model.ReconciliationReport `json:"stats"`
}

// handleImportWorkbook accepts a multipart upload with the workbook in
// the "file" field and reconciles it into the event's agenda.
func (s *Server) handleImportWorkbook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "workbook exceeds the maximum upload size")
			return
		}
		writeError(w, http.StatusBadRequest, `multipart upload with a "file" field is required`)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Import.Timeout)
	defer cancel()

	report, err := s.service.ImportWorkbook(ctx, chi.URLParam(r, "eventID"), file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{Success: true, Stats: report})
}

// handleImportGoogleSheet imports from a publicly shared Google Sheet.
func (s *Server) handleImportGoogleSheet(w http.ResponseWriter, r *http.Request) {
	var req model.ImportSheetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Import.Timeout)
	defer cancel()

	report, err := s.service.ImportGoogleSheet(ctx, chi.URLParam(r, "eventID"), req.URL)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Success: true, Stats: report})
}

// handleDownloadTemplate serves the sample workbook organizers fill in.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	raw, err := workbook.Template()
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda_template.xlsx"`)
	w.Write(raw)
}
