package tutor

import "learnsafe/internal/models"

// Point awards per flow action. All awards are small positive integers;
// there are no fractional points anywhere in the model.
const (
	IdentifyPoints    = 5  // STEM: naming a knowledge gap
	SummaryPoints     = 10 // STEM: submitting an acceptable summary
	FactPoints        = 3  // Humanities: each distinct known fact
	ExplorePoints     = 5  // Humanities: first selection of an area
	QuizCorrectPoints = 15 // Humanities: per correct quiz answer

	PracticeBasePoints    = 20 // STEM: practice award before attempt decay
	PracticeAttemptDecay  = 5  // STEM: deducted per attempt
	PracticeMinimumPoints = 5  // STEM: floor, forward progress is always rewarded

	EnergyCap = 100
)

// PracticeAward returns the points for a correct practice answer on the
// given attempt (1-based, counted after the submission that got it right).
// The reward decays with attempts and never drops below the floor, so a
// first-try answer earns 15 and a learner who needed many tries still
// earns 5.
func PracticeAward(attempts int) int {
	award := PracticeBasePoints - attempts*PracticeAttemptDecay
	if award < PracticeMinimumPoints {
		return PracticeMinimumPoints
	}
	return award
}

// EnergyGain converts session points into an energy gain at commit time.
func EnergyGain(sessionPoints int) int {
	return sessionPoints / 2
}

// ClampEnergy bounds an energy value to [0, EnergyCap].
func ClampEnergy(energy int) int {
	if energy < 0 {
		return 0
	}
	if energy > EnergyCap {
		return EnergyCap
	}
	return energy
}

// CommitDelta computes the profile delta for committing a finished session:
// total points grow by the session points and energy gains half the session
// points, clamped to the cap. Callers hand the result to the profile store
// unchanged.
func CommitDelta(p *models.UserProfile, sessionPoints int) models.ProfileDelta {
	return models.ProfileDelta{
		TotalPoints:  models.IntPtr(p.TotalPoints + sessionPoints),
		EnergyPoints: models.IntPtr(ClampEnergy(p.EnergyPoints + EnergyGain(sessionPoints))),
	}
}
