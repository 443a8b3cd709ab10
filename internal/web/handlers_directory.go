package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/validate"
)

// --- Experts ---

func (s *Server) handleListExperts(w http.ResponseWriter, r *http.Request) {
	experts, err := s.service.ListExperts(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, experts)
}

func (s *Server) handleCreateExpert(w http.ResponseWriter, r *http.Request) {
	var req model.ExpertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expert, err := s.service.CreateExpert(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, expert)
}

func (s *Server) handleGetExpert(w http.ResponseWriter, r *http.Request) {
	expert, err := s.service.GetExpert(r.Context(), chi.URLParam(r, "expertID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expert)
}

func (s *Server) handleUpdateExpert(w http.ResponseWriter, r *http.Request) {
	var req model.ExpertRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	expert, err := s.service.UpdateExpert(r.Context(), chi.URLParam(r, "expertID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expert)
}

func (s *Server) handleDeleteExpert(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteExpert(r.Context(), chi.URLParam(r, "expertID")); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Companies ---

func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.service.ListCompanies(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, companies)
}

func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req model.CompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	company, err := s.service.CreateCompany(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := s.service.GetCompany(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req model.CompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	company, err := s.service.UpdateCompany(r.Context(), chi.URLParam(r, "companyID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteCompany(r.Context(), chi.URLParam(r, "companyID")); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
