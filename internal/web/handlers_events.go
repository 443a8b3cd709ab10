package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/validate"
)

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.service.ListEvents(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := s.service.CreateEvent(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.service.GetEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	event, err := s.service.UpdateEvent(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteEvent(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleFullAgenda(w http.ResponseWriter, r *http.Request) {
	agenda, err := s.service.FullAgenda(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, agenda)
}
