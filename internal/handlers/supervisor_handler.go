package handlers

import (
	"net/http"

	"learnsafe/internal/service"
	"learnsafe/internal/utils"
)

// SupervisorHandler serves read-only progress views and the emailed
// progress report. Supervisors never touch the session machine.
type SupervisorHandler struct {
	profiles *service.ProfileService
	reports  *service.ReportService
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(profiles *service.ProfileService, reports *service.ReportService) *SupervisorHandler {
	return &SupervisorHandler{
		profiles: profiles,
		reports:  reports,
	}
}

// GetReport returns the progress snapshot for the loaded profile.
func (h *SupervisorHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	profile := h.profiles.Current()
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "No profile registered", "", nil)
		return
	}
	respondJSON(w, http.StatusOK, service.BuildSupervisorReport(profile))
}

type emailReportRequest struct {
	Email string `json:"email"`
}

// EmailReport sends the progress snapshot to a supervisor's address.
func (h *SupervisorHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	var req emailReportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidRequestBody, "Error decoding email request", err)
		return
	}
	if err := utils.ValidateEmail(req.Email); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
		return
	}

	profile := h.profiles.Current()
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "No profile registered", "", nil)
		return
	}

	report := service.BuildSupervisorReport(profile)
	if err := h.reports.SendProgressReport(r.Context(), req.Email, report); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to send report", "Error sending progress report", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sent":    h.reports.IsEnabled(),
		"enabled": h.reports.IsEnabled(),
	})
}
