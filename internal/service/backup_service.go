package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"learnsafe/internal/models"
	"learnsafe/internal/repository"
)

// ProfileSnapshot is the on-disk format of an exported profile.
type ProfileSnapshot struct {
	Version    string              `json:"version"`
	ExportedAt time.Time           `json:"exported_at"`
	Profile    *models.UserProfile `json:"profile"`
}

// snapshotVersion identifies the export format.
const snapshotVersion = "1.0"

// BackupService exports and imports the stored profile document.
type BackupService struct {
	repo *repository.ProfileRepository
}

// NewBackupService creates a new backup service
func NewBackupService(repo *repository.ProfileRepository) *BackupService {
	return &BackupService{repo: repo}
}

// Export writes the stored profile to a JSON snapshot file.
func (s *BackupService) Export(path string) (*ProfileSnapshot, error) {
	profile, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile to export")
	}

	snapshot := &ProfileSnapshot{
		Version:    snapshotVersion,
		ExportedAt: time.Now(),
		Profile:    profile,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return snapshot, nil
}

// Import restores a profile from a snapshot file, overwriting any stored
// profile.
func (s *BackupService) Import(path string) (*models.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot ProfileSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if snapshot.Profile == nil || snapshot.Profile.ID == "" {
		return nil, fmt.Errorf("snapshot contains no usable profile")
	}

	if err := s.repo.Save(snapshot.Profile); err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}
	return snapshot.Profile, nil
}
