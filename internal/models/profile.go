package models

// SubjectMastery tracks a learner's standing in one subject.
// The session flows do not write these yet; the fields are populated by a
// future session-outcome writer (see DESIGN.md).
type SubjectMastery struct {
	Level       int `json:"level"`
	Progress    int `json:"progress"`
	AIAssisted  int `json:"aiAssisted"`
	SelfReliant int `json:"selfReliant"`
}

// UserProfile is the single long-lived learner record. Exactly one profile
// is loaded per running instance.
type UserProfile struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Age            int                       `json:"age"`
	Grade          string                    `json:"grade"`
	EnergyPoints   int                       `json:"energyPoints"`
	TotalPoints    int                       `json:"totalPoints"`
	TimeSpentToday int                       `json:"timeSpentToday"`
	TimeLimit      int                       `json:"timeLimit"`
	CurrentStreak  int                       `json:"currentStreak"`
	Subjects       map[string]SubjectMastery `json:"subjects"`
}

// ProfileDelta carries the fields a caller wants to replace on the profile.
// Nil fields are left untouched. Values replace, they never accumulate:
// callers compute the final number (e.g. clamped energy) before building
// the delta.
type ProfileDelta struct {
	Name           *string
	Age            *int
	Grade          *string
	EnergyPoints   *int
	TotalPoints    *int
	TimeSpentToday *int
	TimeLimit      *int
	CurrentStreak  *int
	Subjects       map[string]SubjectMastery
}

// Merge returns a copy of the profile with the delta's set fields replaced.
func (p UserProfile) Merge(delta ProfileDelta) UserProfile {
	if delta.Name != nil {
		p.Name = *delta.Name
	}
	if delta.Age != nil {
		p.Age = *delta.Age
	}
	if delta.Grade != nil {
		p.Grade = *delta.Grade
	}
	if delta.EnergyPoints != nil {
		p.EnergyPoints = *delta.EnergyPoints
	}
	if delta.TotalPoints != nil {
		p.TotalPoints = *delta.TotalPoints
	}
	if delta.TimeSpentToday != nil {
		p.TimeSpentToday = *delta.TimeSpentToday
	}
	if delta.TimeLimit != nil {
		p.TimeLimit = *delta.TimeLimit
	}
	if delta.CurrentStreak != nil {
		p.CurrentStreak = *delta.CurrentStreak
	}
	if delta.Subjects != nil {
		p.Subjects = delta.Subjects
	}
	return p
}

// TimeRemaining returns the minutes left in today's time budget, never
// negative.
func (p *UserProfile) TimeRemaining() int {
	remaining := p.TimeLimit - p.TimeSpentToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IntPtr is a convenience for building deltas.
func IntPtr(v int) *int {
	return &v
}
