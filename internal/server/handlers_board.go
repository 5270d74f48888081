package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/classgrid/internal/catalog"
)

// boardState is the JSON shape of the live board.
type boardState struct {
	State       catalog.FilterState `json:"state"`
	Visible     []int               `json:"visible"`
	Classes     []catalog.Class     `json:"classes"`
	Empty       bool                `json:"empty"`
	Placeholder bool                `json:"placeholder"`
	Toasts      any                 `json:"toasts,omitempty"`
}

func (s *Server) currentBoardState() boardState {
	b := s.ctrl.Board()
	visible := b.Visible()
	state := boardState{
		State:   s.ctrl.State(),
		Visible: visible,
		Classes: catalog.Select(b.Classes(), visible),
		Empty:   len(visible) == 0,
	}
	if p := b.Placeholder(); p != nil {
		state.Placeholder = p.Visible()
	}
	if t := s.ctrl.Toasts(); t != nil {
		state.Toasts = t.Active()
	}
	return state
}

func (s *Server) handleBoardState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.currentBoardState())
}

// inputPayload carries one filter-input change.
type inputPayload struct {
	Value string `json:"value"`
}

func decodeInput(w http.ResponseWriter, r *http.Request) (string, bool) {
	var p inputPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return "", false
	}
	return p.Value, true
}

// handleBoardSearch records a search keystroke. The recompute is debounced,
// so the response reports acceptance, not the eventual filter result.
func (s *Server) handleBoardSearch(w http.ResponseWriter, r *http.Request) {
	value, ok := decodeInput(w, r)
	if !ok {
		return
	}
	s.ctrl.SetSearch(value)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "debounced"})
}

func (s *Server) handleBoardLevel(w http.ResponseWriter, r *http.Request) {
	value, ok := decodeInput(w, r)
	if !ok {
		return
	}
	s.ctrl.SetLevel(value)
	writeJSON(w, http.StatusOK, s.currentBoardState())
}

func (s *Server) handleBoardCategory(w http.ResponseWriter, r *http.Request) {
	value, ok := decodeInput(w, r)
	if !ok {
		return
	}
	s.ctrl.SetCategory(value)
	writeJSON(w, http.StatusOK, s.currentBoardState())
}

func (s *Server) handleBoardRefilter(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Refilter()
	writeJSON(w, http.StatusOK, s.currentBoardState())
}

func (s *Server) handleBoardReanimate(w http.ResponseWriter, r *http.Request) {
	s.ctrl.Reanimate()
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBoardRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.ctrl.Refresh(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.currentBoardState())
}
