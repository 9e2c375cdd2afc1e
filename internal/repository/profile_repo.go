package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"learnsafe/internal/database"
	"learnsafe/internal/models"
)

// ProfileStorageKey is the fixed key the single learner profile is stored
// under. It mirrors the document-store contract: one JSON payload, read
// once at startup, overwritten on every mutation.
const ProfileStorageKey = "current_user"

// ProfileRepository persists the learner profile as a JSON document.
type ProfileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Load restores the persisted profile. A missing row returns (nil, nil).
// A stored payload that no longer unmarshals into the profile shape is
// treated as absent rather than an error, so a stale or corrupt record
// sends the learner back through registration instead of crashing.
func (r *ProfileRepository) Load() (*models.UserProfile, error) {
	var payload string
	query := `SELECT payload FROM profiles WHERE storage_key = ?`
	err := r.db.QueryRow(query, ProfileStorageKey).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		log.Printf("Stored profile is not readable, treating as absent: %v", err)
		return nil, nil
	}
	if profile.ID == "" {
		log.Printf("Stored profile has no id, treating as absent")
		return nil, nil
	}
	return &profile, nil
}

// Save persists the full profile, overwriting any prior value.
func (r *ProfileRepository) Save(profile *models.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	query := r.db.Dialect.UpsertProfileQuery()
	if _, err := r.db.Exec(query, ProfileStorageKey, string(payload)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Delete removes the stored profile. Used by the backup tool's import and
// by explicit resets.
func (r *ProfileRepository) Delete() error {
	query := `DELETE FROM profiles WHERE storage_key = ?`
	if _, err := r.db.Exec(query, ProfileStorageKey); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
