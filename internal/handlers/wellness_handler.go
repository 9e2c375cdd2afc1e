package handlers

import (
	"errors"
	"net/http"

	"learnsafe/internal/service"
)

// WellnessHandler serves the mindfulness collaborators: journal entries
// and the breathing timer's completion event.
type WellnessHandler struct {
	wellness *service.WellnessService
}

// NewWellnessHandler creates a new wellness handler
func NewWellnessHandler(wellness *service.WellnessService) *WellnessHandler {
	return &WellnessHandler{wellness: wellness}
}

type journalRequest struct {
	Entry string `json:"entry"`
}

// SaveJournal awards points for a journal entry.
func (h *WellnessHandler) SaveJournal(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding journal request", err)
		return
	}

	profile, err := h.wellness.SaveJournalEntry(req.Entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyJournalEntry):
			respondWithError(w, http.StatusUnprocessableEntity, err.Error(), "", nil)
		case errors.Is(err, service.ErrNoProfile):
			respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error saving journal entry", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// CompleteBreathing awards energy when the breathing exercise finishes.
func (h *WellnessHandler) CompleteBreathing(w http.ResponseWriter, r *http.Request) {
	profile, err := h.wellness.CompleteBreathing()
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			respondWithError(w, http.StatusConflict, err.Error(), "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error completing breathing", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
