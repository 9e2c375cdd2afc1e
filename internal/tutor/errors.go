package tutor

import "errors"

// Validation rejections. None of these are fatal: the flow stays in its
// current step and the learner simply retries.
var (
	ErrWrongStep       = errors.New("action is not valid in the current step")
	ErrEmptyInput      = errors.New("input is required")
	ErrSummaryTooShort = errors.New("summary must be at least 10 characters")
	ErrUnknownArea     = errors.New("unknown exploration area")
	ErrQuizIncomplete  = errors.New("every question needs an answer before submitting")
	ErrBadQuestion     = errors.New("question index out of range")
	ErrBadOption       = errors.New("option index out of range")
	ErrUnknownSubject  = errors.New("subject and topic are not in the catalog")
	ErrSessionDone     = errors.New("session already finished")
)
