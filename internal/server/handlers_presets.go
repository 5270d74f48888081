package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/classgrid/internal/catalog"
	"github.com/go-chi/chi/v5"
)

func (s *Server) presetsEnabled(w http.ResponseWriter) bool {
	if s.presets == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "presets are disabled"})
		return false
	}
	return true
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	if !s.presetsEnabled(w) {
		return
	}
	all, err := s.presets.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// savePresetPayload names a filter state to store. An omitted state saves
// the board's currently applied filters.
type savePresetPayload struct {
	Name  string               `json:"name"`
	State *catalog.FilterState `json:"state,omitempty"`
}

func (s *Server) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	if !s.presetsEnabled(w) {
		return
	}

	var p savePresetPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	state := s.ctrl.State()
	if p.State != nil {
		state = catalog.StateFromValues(p.State.Search, p.State.Level, p.State.Category)
	}

	if err := s.presets.Save(p.Name, state); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"name": p.Name, "state": state})
}

// handleApplyPreset loads a saved preset and pushes it through the board's
// input surface. The search term goes through the debounce path like any
// other keystroke burst.
func (s *Server) handleApplyPreset(w http.ResponseWriter, r *http.Request) {
	if !s.presetsEnabled(w) {
		return
	}

	name := chi.URLParam(r, "name")
	p, ok, err := s.presets.Get(name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "preset not found"})
		return
	}

	s.ctrl.SetLevel(p.State.Level)
	s.ctrl.SetCategory(p.State.Category)
	s.ctrl.SetSearch(p.State.Search)

	writeJSON(w, http.StatusOK, s.currentBoardState())
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if !s.presetsEnabled(w) {
		return
	}

	name := chi.URLParam(r, "name")
	removed, err := s.presets.Delete(name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !removed {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "preset not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
