package handlers

import (
	"errors"
	"net/http"

	"learnsafe/internal/service"
	"learnsafe/internal/tutor"
	"learnsafe/internal/utils"
)

// ProfileHandler serves registration and the learner profile.
type ProfileHandler struct {
	profiles     *service.ProfileService
	registration *service.RegistrationService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService, registration *service.RegistrationService) *ProfileHandler {
	return &ProfileHandler{
		profiles:     profiles,
		registration: registration,
	}
}

// placementQuestionView hides the correct option index from the client.
type placementQuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// GetRegistrationForm returns the grade list and placement quiz.
func (h *ProfileHandler) GetRegistrationForm(w http.ResponseWriter, r *http.Request) {
	questions := h.registration.Questions()
	views := make([]placementQuestionView, len(questions))
	for i, q := range questions {
		views[i] = placementQuestionView{Question: q.Question, Options: q.Options}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"grades":    service.Grades,
		"questions": views,
	})
}

type registerRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Grade   string `json:"grade"`
	Answers []int  `json:"answers"`
}

// Register creates the initial profile from the registration wizard's
// demographics and placement answers.
func (h *ProfileHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding register request", err)
		return
	}

	profile, err := h.registration.Register(req.Name, req.Age, req.Grade, req.Answers)
	if err != nil {
		var vErr utils.ValidationError
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			respondWithError(w, http.StatusConflict, err.Error(), "", nil)
		case errors.As(err, &vErr),
			errors.Is(err, service.ErrInvalidAge),
			errors.Is(err, service.ErrInvalidGrade):
			respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error registering profile", err)
		}
		return
	}

	respondJSON(w, http.StatusCreated, profile)
}

// GetProfile returns the loaded profile, 404 when nobody is registered.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile := h.profiles.Current()
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "No profile registered", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// GetSubjects returns the fixed subject catalog.
func (h *ProfileHandler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, tutor.Catalog())
}
