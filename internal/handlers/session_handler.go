package handlers

import (
	"errors"
	"net/http"

	"learnsafe/internal/service"
	"learnsafe/internal/tutor"
)

// SessionHandler serves the learning session lifecycle and both flows'
// step actions.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type startSessionRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// Start begins a session for a subject+topic pair from the catalog.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding start request", err)
		return
	}

	view, err := h.sessions.Start(req.Subject, req.Topic)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, view)
}

// Current returns the active session's step state.
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.Current()
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Abandon discards the active session without committing points.
func (h *SessionHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Abandon(); err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})
}

type textRequest struct {
	Text string `json:"text"`
}

// SubmitGap handles the STEM identify step.
func (h *SessionHandler) SubmitGap(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding identify request", err)
		return
	}

	view, err := h.sessions.SubmitGap(req.Text)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// AdvanceLearn moves past the STEM learn step.
func (h *SessionHandler) AdvanceLearn(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.AdvanceLearn()
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// SubmitSummary handles the STEM summarize step.
func (h *SessionHandler) SubmitSummary(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding summary request", err)
		return
	}

	view, err := h.sessions.SubmitSummary(req.Text)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// SubmitPracticeAnswer handles one STEM practice submission.
func (h *SessionHandler) SubmitPracticeAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding answer request", err)
		return
	}

	result, view, err := h.sessions.SubmitPracticeAnswer(req.Answer)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"result":  result,
		"session": view,
	})
}

// AddFact handles the humanities assess step.
func (h *SessionHandler) AddFact(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding fact request", err)
		return
	}

	added, view, err := h.sessions.AddFact(req.Text)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"added":   added,
		"session": view,
	})
}

// AdvanceAssess moves the humanities flow to the explore step.
func (h *SessionHandler) AdvanceAssess(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.AdvanceAssess()
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type exploreRequest struct {
	Area string `json:"area"`
}

// ExploreArea marks one exploration area as explored.
func (h *SessionHandler) ExploreArea(w http.ResponseWriter, r *http.Request) {
	var req exploreRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding explore request", err)
		return
	}

	awarded, view, err := h.sessions.ExploreArea(req.Area)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"awarded": awarded,
		"session": view,
	})
}

// AdvanceExplore loads the quiz and moves to the quiz step.
func (h *SessionHandler) AdvanceExplore(w http.ResponseWriter, r *http.Request) {
	view, err := h.sessions.AdvanceExplore()
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type selectAnswerRequest struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}

// SelectQuizAnswer records one quiz selection.
func (h *SessionHandler) SelectQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req selectAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding select request", err)
		return
	}

	view, err := h.sessions.SelectQuizAnswer(req.Question, req.Option)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// SubmitQuiz scores the quiz.
func (h *SessionHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	result, view, err := h.sessions.SubmitQuiz()
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"result":  result,
		"session": view,
	})
}

// FinishReflection commits the session and returns the profile deltas.
func (h *SessionHandler) FinishReflection(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding reflect request", err)
		return
	}

	result, err := h.sessions.FinishReflection(req.Text)
	if err != nil {
		respondFlowError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// respondFlowError maps session and flow errors onto HTTP statuses.
// Validation rejections are 422s: the flow stays where it was and the
// client may retry.
func respondFlowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoSession):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, service.ErrNoProfile):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, tutor.ErrUnknownSubject):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	case errors.Is(err, service.ErrNotSTEM),
		errors.Is(err, service.ErrNotHum),
		errors.Is(err, tutor.ErrWrongStep),
		errors.Is(err, tutor.ErrSessionDone):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, tutor.ErrEmptyInput),
		errors.Is(err, tutor.ErrSummaryTooShort),
		errors.Is(err, tutor.ErrUnknownArea),
		errors.Is(err, tutor.ErrQuizIncomplete),
		errors.Is(err, tutor.ErrBadQuestion),
		errors.Is(err, tutor.ErrBadOption):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Unexpected session error", err)
	}
}
