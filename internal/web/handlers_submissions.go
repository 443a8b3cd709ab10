package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/validate"
)

// statusFilter parses the optional ?status= query parameter. An empty
// value means all statuses.
func statusFilter(r *http.Request) (model.SubmissionStatus, bool) {
	raw := r.URL.Query().Get("status")
	switch model.SubmissionStatus(raw) {
	case "", model.StatusPending, model.StatusApproved, model.StatusRejected:
		return model.SubmissionStatus(raw), true
	default:
		return "", false
	}
}

func (s *Server) handleSubmitExpert(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitExpertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.service.SubmitExpert(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleSubmitCompany(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := s.service.SubmitCompany(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleListExpertSubmissions(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "status must be pending, approved, or rejected")
		return
	}

	subs, err := s.service.ListExpertSubmissions(r.Context(), chi.URLParam(r, "eventID"), status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (s *Server) handleListCompanySubmissions(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "status must be pending, approved, or rejected")
		return
	}

	subs, err := s.service.ListCompanySubmissions(r.Context(), chi.URLParam(r, "eventID"), status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (s *Server) handleApproveExpertSubmission(w http.ResponseWriter, r *http.Request) {
	expert, err := s.service.ApproveExpertSubmission(r.Context(), chi.URLParam(r, "submissionID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expert)
}

func (s *Server) handleApproveCompanySubmission(w http.ResponseWriter, r *http.Request) {
	company, err := s.service.ApproveCompanySubmission(r.Context(), chi.URLParam(r, "submissionID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (s *Server) handleRejectExpertSubmission(w http.ResponseWriter, r *http.Request) {
	// An empty body means "no reason given".
	var req model.RejectSubmissionRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.service.RejectExpertSubmission(r.Context(), chi.URLParam(r, "submissionID"), req.Reason); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"rejected": true})
}

func (s *Server) handleRejectCompanySubmission(w http.ResponseWriter, r *http.Request) {
	var req model.RejectSubmissionRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.service.RejectCompanySubmission(r.Context(), chi.URLParam(r, "submissionID"), req.Reason); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"rejected": true})
}
