package service

import (
	"errors"
	"testing"

	"learnsafe/internal/models"
)

// fakeRepo is an in-memory ProfileRepository with switchable failures.
type fakeRepo struct {
	stored  *models.UserProfile
	loadErr error
	saveErr error
	saves   int
}

func (r *fakeRepo) Load() (*models.UserProfile, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.stored, nil
}

func (r *fakeRepo) Save(p *models.UserProfile) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *p
	r.stored = &clone
	r.saves++
	return nil
}

func TestProfileServiceLoad(t *testing.T) {
	stored := &models.UserProfile{ID: "p1", Name: "Maya", TotalPoints: 40}
	repo := &fakeRepo{stored: stored}
	svc := NewProfileService(repo)

	profile := svc.Load()
	if profile == nil || profile.Name != "Maya" {
		t.Fatalf("Load() = %+v, want stored profile", profile)
	}
	if svc.MemoryOnly() {
		t.Error("healthy load flipped service to memory-only")
	}
}

func TestProfileServiceLoadEmptyStore(t *testing.T) {
	svc := NewProfileService(&fakeRepo{})
	if profile := svc.Load(); profile != nil {
		t.Errorf("Load() = %+v, want nil for empty store", profile)
	}
	if svc.Current() != nil {
		t.Error("Current() non-nil after empty load")
	}
}

func TestProfileServiceLoadFailureDegrades(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("disk on fire")}
	svc := NewProfileService(repo)

	if profile := svc.Load(); profile != nil {
		t.Errorf("Load() = %+v, want nil on storage failure", profile)
	}
	if !svc.MemoryOnly() {
		t.Fatal("service not memory-only after load failure")
	}

	// Later writes must not touch the repo again.
	svc.SetProfile(&models.UserProfile{ID: "p2", Name: "Sam"})
	if repo.saves != 0 {
		t.Errorf("repo saved %d times after degrade", repo.saves)
	}
	if svc.Current() == nil {
		t.Error("in-memory profile lost after degrade")
	}
}

func TestProfileServiceSaveFailureDegrades(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("write failed")}
	svc := NewProfileService(repo)

	svc.SetProfile(&models.UserProfile{ID: "p3", Name: "Ana", TotalPoints: 10})
	if !svc.MemoryOnly() {
		t.Fatal("service not memory-only after save failure")
	}

	// The in-memory profile keeps working.
	updated := svc.Update(models.ProfileDelta{TotalPoints: models.IntPtr(25)})
	if updated == nil || updated.TotalPoints != 25 {
		t.Errorf("Update after degrade = %+v, want TotalPoints 25", updated)
	}
}

func TestProfileServiceUpdate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewProfileService(repo)
	svc.SetProfile(&models.UserProfile{ID: "p4", Name: "Leo", TotalPoints: 30, EnergyPoints: 80})

	updated := svc.Update(models.ProfileDelta{
		TotalPoints:  models.IntPtr(60),
		EnergyPoints: models.IntPtr(95),
	})
	if updated.TotalPoints != 60 || updated.EnergyPoints != 95 {
		t.Errorf("updated = %+v", updated)
	}
	if updated.Name != "Leo" {
		t.Errorf("unset field changed: Name = %q", updated.Name)
	}

	// Each mutation persists synchronously.
	if repo.saves != 2 {
		t.Errorf("saves = %d, want 2 (SetProfile + Update)", repo.saves)
	}
	if repo.stored.TotalPoints != 60 {
		t.Errorf("stored TotalPoints = %d, want 60", repo.stored.TotalPoints)
	}
}

func TestProfileServiceUpdateWithoutProfile(t *testing.T) {
	svc := NewProfileService(nil)
	if updated := svc.Update(models.ProfileDelta{TotalPoints: models.IntPtr(5)}); updated != nil {
		t.Errorf("Update with no profile = %+v, want nil", updated)
	}
}

func TestProfileServiceNilRepoIsMemoryOnly(t *testing.T) {
	svc := NewProfileService(nil)
	if !svc.MemoryOnly() {
		t.Error("nil repo should start memory-only")
	}
	svc.SetProfile(&models.UserProfile{ID: "p5", Name: "Ida"})
	if svc.Current() == nil {
		t.Error("memory-only profile not retained")
	}
}
