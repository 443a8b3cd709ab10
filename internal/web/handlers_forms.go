package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/validate"
)

func entityTypeParam(r *http.Request) (model.EntityType, bool) {
	t := model.EntityType(chi.URLParam(r, "entityType"))
	return t, t.Valid()
}

func (s *Server) handleGetFormConfig(w http.ResponseWriter, r *http.Request) {
	entityType, ok := entityTypeParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "entity type must be expert or company")
		return
	}

	fields, err := s.service.FormFields(r.Context(), chi.URLParam(r, "eventID"), entityType)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

func (s *Server) handleSaveFormConfig(w http.ResponseWriter, r *http.Request) {
	entityType, ok := entityTypeParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "entity type must be expert or company")
		return
	}

	var req model.SaveFormConfigRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields, err := s.service.SaveFormFields(r.Context(), chi.URLParam(r, "eventID"), entityType, req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}
