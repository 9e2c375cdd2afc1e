package tutor

import (
	"time"

	"learnsafe/internal/models"
)

// Session pairs the session record with exactly one active flow, chosen by
// the subject's family. The session value is owned by its controller and
// discarded once it ends.
type Session struct {
	Record     models.LearningSession
	Stem       *StemFlow
	Humanities *HumanitiesFlow
}

// NewSession validates the subject+topic pair against the catalog and
// starts the matching flow.
func NewSession(subject, topic string, now time.Time) (*Session, error) {
	family, ok := ValidatePair(subject, topic)
	if !ok {
		return nil, ErrUnknownSubject
	}

	s := &Session{
		Record: models.LearningSession{
			Subject:   subject,
			Topic:     topic,
			StartTime: now,
		},
	}
	switch family {
	case FamilySTEM:
		s.Stem = NewStemFlow(subject, topic)
	default:
		s.Humanities = NewHumanitiesFlow(subject, topic)
	}
	return s, nil
}

// Points returns the active flow's running point total.
func (s *Session) Points() int {
	if s.Stem != nil {
		return s.Stem.Points()
	}
	return s.Humanities.Points()
}

// Step returns the active flow's step tag as a string.
func (s *Session) Step() string {
	if s.Stem != nil {
		return string(s.Stem.Step())
	}
	return string(s.Humanities.Step())
}

// Finish terminates the active flow with the reflection text and stamps the
// record with the final point total and end time.
func (s *Session) Finish(reflection string, now time.Time) (int, error) {
	var (
		points int
		err    error
	)
	if s.Stem != nil {
		points, err = s.Stem.Finish(reflection)
	} else {
		points, err = s.Humanities.Finish(reflection)
	}
	if err != nil {
		return 0, err
	}

	s.Record.PointsEarned = points
	s.Record.ReflectionComplete = true
	s.Record.EndTime = &now
	return points, nil
}

// End stamps the end time without a commit, used when a session is
// abandoned. Accumulated points are lost.
func (s *Session) End(now time.Time) {
	if s.Record.EndTime == nil {
		s.Record.EndTime = &now
	}
}
