package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventdesk/agendahub/internal/model"
	"github.com/eventdesk/agendahub/internal/validate"
)

// --- Days ---

func (s *Server) handleListDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.service.ListDays(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, days)
}

func (s *Server) handleCreateDay(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	day, err := s.service.CreateDay(r.Context(), chi.URLParam(r, "eventID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, day)
}

func (s *Server) handleUpdateDay(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	day, err := s.service.UpdateDay(r.Context(), chi.URLParam(r, "dayID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteDay(r.Context(), chi.URLParam(r, "dayID")); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Slots ---

func (s *Server) handleListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := s.service.ListSlots(r.Context(), chi.URLParam(r, "dayID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slots)
}

func (s *Server) handleCreateSlot(w http.ResponseWriter, r *http.Request) {
	var req model.CreateSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slot, err := s.service.CreateSlot(r.Context(), chi.URLParam(r, "dayID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, slot)
}

func (s *Server) handleGetSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := s.service.GetSlot(r.Context(), chi.URLParam(r, "slotID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (s *Server) handleUpdateSlot(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	slot, err := s.service.UpdateSlot(r.Context(), chi.URLParam(r, "slotID"), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slot)
}

func (s *Server) handleDeleteSlot(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteSlot(r.Context(), chi.URLParam(r, "slotID")); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
