package service

import (
	"errors"
	"strings"

	"learnsafe/internal/models"
	"learnsafe/internal/tutor"
)

// Wellness awards. These bypass the session machine entirely and call
// straight into the profile store, per the collaborator contract.
const (
	JournalPoints         = 5
	BreathingEnergy       = 10
	BreathingDurationSecs = 180
)

var ErrEmptyJournalEntry = errors.New("journal entry is empty")

// WellnessService handles the mindfulness collaborators: journal entries
// and the breathing timer's completion event.
type WellnessService struct {
	profiles *ProfileService
}

// NewWellnessService creates a new wellness service
func NewWellnessService(profiles *ProfileService) *WellnessService {
	return &WellnessService{profiles: profiles}
}

// SaveJournalEntry awards points for a non-empty journal entry. The entry
// text itself is not stored.
func (s *WellnessService) SaveJournalEntry(text string) (*models.UserProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyJournalEntry
	}
	profile := s.profiles.Current()
	if profile == nil {
		return nil, ErrNoProfile
	}

	return s.profiles.Update(models.ProfileDelta{
		TotalPoints: models.IntPtr(profile.TotalPoints + JournalPoints),
	}), nil
}

// CompleteBreathing awards energy when the breathing timer finishes. The
// timer itself runs in the client; this is its single completion event.
func (s *WellnessService) CompleteBreathing() (*models.UserProfile, error) {
	profile := s.profiles.Current()
	if profile == nil {
		return nil, ErrNoProfile
	}

	return s.profiles.Update(models.ProfileDelta{
		EnergyPoints: models.IntPtr(tutor.ClampEnergy(profile.EnergyPoints + BreathingEnergy)),
	}), nil
}
