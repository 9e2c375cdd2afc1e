package service

import (
	"log"
	"sync"

	"learnsafe/internal/models"
)

// ProfileRepository is the persistence surface the profile store needs.
// *repository.ProfileRepository satisfies it; tests use fakes.
type ProfileRepository interface {
	Load() (*models.UserProfile, error)
	Save(*models.UserProfile) error
}

// ProfileService owns the single mutable learner profile. Every mutation
// goes through Update (shallow merge, replace semantics) and is persisted
// synchronously, so a crash never loses more than the in-flight change.
//
// When storage fails the service degrades to memory-only for the rest of
// the process: the learning flows keep working, persistence is skipped.
type ProfileService struct {
	mu         sync.Mutex
	repo       ProfileRepository
	current    *models.UserProfile
	memoryOnly bool
}

// NewProfileService creates a profile service. A nil repository starts the
// service in memory-only mode.
func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{
		repo:       repo,
		memoryOnly: repo == nil,
	}
}

// Load restores the persisted profile into the service. Returns nil when
// no usable profile is stored; a storage read failure also returns nil and
// flips the service to memory-only.
func (s *ProfileService) Load() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.memoryOnly {
		return s.current
	}

	profile, err := s.repo.Load()
	if err != nil {
		log.Printf("Profile storage unavailable, continuing in memory only: %v", err)
		s.memoryOnly = true
		return nil
	}
	s.current = profile
	return profile
}

// Current returns the loaded profile, nil when nobody is registered.
func (s *ProfileService) Current() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetProfile installs a freshly registered profile and persists it.
func (s *ProfileService) SetProfile(profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = profile
	s.persist()
}

// Update shallow-merges the delta over the current profile, persists the
// result and returns it. Delta fields replace, they never accumulate: the
// caller computes final values (clamped energy, summed totals) first.
func (s *ProfileService) Update(delta models.ProfileDelta) *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	merged := s.current.Merge(delta)
	s.current = &merged
	s.persist()
	return s.current
}

// MemoryOnly reports whether persistence has been disabled for this
// process.
func (s *ProfileService) MemoryOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memoryOnly
}

// persist writes the current profile, degrading to memory-only on failure.
// Callers hold the lock.
func (s *ProfileService) persist() {
	if s.memoryOnly || s.current == nil {
		return
	}
	if err := s.repo.Save(s.current); err != nil {
		log.Printf("Failed to save profile, continuing in memory only: %v", err)
		s.memoryOnly = true
	}
}
