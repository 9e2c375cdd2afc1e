package models

import "time"

// LearningSession is one run of a tutoring flow against a subject+topic
// pair. At most one session is active at a time; starting a new one
// discards the old one along with its accumulated points.
//
// AIInteractions and SelfSolvedProblems exist to separate assisted from
// self-reliant problem solving. No flow step increments them yet; they are
// kept so stored sessions stay forward compatible (see DESIGN.md).
type LearningSession struct {
	Subject            string     `json:"subject"`
	Topic              string     `json:"topic"`
	StartTime          time.Time  `json:"startTime"`
	EndTime            *time.Time `json:"endTime,omitempty"`
	AIInteractions     int        `json:"aiInteractions"`
	SelfSolvedProblems int        `json:"selfSolvedProblems"`
	PointsEarned       int        `json:"pointsEarned"`
	ReflectionComplete bool       `json:"reflectionComplete"`
}

// Active reports whether the session has not been ended yet.
func (s *LearningSession) Active() bool {
	return s.EndTime == nil
}
