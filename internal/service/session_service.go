package service

import (
	"errors"
	"sync"
	"time"

	"learnsafe/internal/tutor"
)

var (
	ErrNoSession = errors.New("no active session")
	ErrNoProfile = errors.New("no learner profile registered")
	ErrNotSTEM   = errors.New("action belongs to the STEM flow")
	ErrNotHum    = errors.New("action belongs to the humanities flow")
)

// SessionView is the step-state snapshot returned to the caller after
// every action. It exposes only what the current step needs.
type SessionView struct {
	Subject string       `json:"subject"`
	Topic   string       `json:"topic"`
	Family  tutor.Family `json:"family"`
	Step    string       `json:"step"`
	Points  int          `json:"points"`

	// STEM practice step
	Problem  *tutor.Problem `json:"problem,omitempty"`
	Attempts int            `json:"attempts,omitempty"`
	Hint     string         `json:"hint,omitempty"`

	// Humanities steps
	Facts        []string             `json:"facts,omitempty"`
	ExploreAreas []string             `json:"exploreAreas,omitempty"`
	Explored     []string             `json:"explored,omitempty"`
	Quiz         []tutor.QuizQuestion `json:"quiz,omitempty"`
	Answers      []int                `json:"answers,omitempty"`
}

// CommitResult reports a committed session.
type CommitResult struct {
	PointsEarned int `json:"pointsEarned"`
	TotalPoints  int `json:"totalPoints"`
	EnergyPoints int `json:"energyPoints"`
}

// SessionService is the controller for the single active learning session.
// It owns the session value exclusively; no other component keeps a
// reference after the session ends.
type SessionService struct {
	mu       sync.Mutex
	profiles *ProfileService
	current  *tutor.Session
	now      func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(profiles *ProfileService) *SessionService {
	return &SessionService{
		profiles: profiles,
		now:      time.Now,
	}
}

// Start begins a session for a catalog subject+topic pair. An already open
// session is silently discarded along with its point progress, matching
// the abandon-and-restart flow.
func (s *SessionService) Start(subject, topic string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profiles.Current() == nil {
		return nil, ErrNoProfile
	}
	if s.current != nil {
		s.current.End(s.now())
	}

	session, err := tutor.NewSession(subject, topic, s.now())
	if err != nil {
		return nil, err
	}
	s.current = session
	return s.view(), nil
}

// Current returns the active session's view.
func (s *SessionService) Current() (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoSession
	}
	return s.view(), nil
}

// Abandon discards the active session without committing anything.
func (s *SessionService) Abandon() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoSession
	}
	s.current.End(s.now())
	s.current = nil
	return nil
}

// SubmitGap handles the STEM identify step.
func (s *SessionService) SubmitGap(text string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.stem()
	if err != nil {
		return nil, err
	}
	if err := flow.SubmitGap(text); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// AdvanceLearn handles the STEM learn step.
func (s *SessionService) AdvanceLearn() (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.stem()
	if err != nil {
		return nil, err
	}
	if err := flow.AdvanceLearn(); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// SubmitSummary handles the STEM summarize step.
func (s *SessionService) SubmitSummary(text string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.stem()
	if err != nil {
		return nil, err
	}
	if err := flow.SubmitSummary(text); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// SubmitPracticeAnswer handles one STEM practice submission.
func (s *SessionService) SubmitPracticeAnswer(text string) (tutor.AnswerResult, *SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.stem()
	if err != nil {
		return tutor.AnswerResult{}, nil, err
	}
	result, err := flow.SubmitAnswer(text)
	if err != nil {
		return tutor.AnswerResult{}, nil, err
	}
	return result, s.view(), nil
}

// AddFact handles the humanities assess step. The bool reports whether the
// fact was new.
func (s *SessionService) AddFact(text string) (bool, *SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.humanities()
	if err != nil {
		return false, nil, err
	}
	added, err := flow.AddFact(text)
	if err != nil {
		return false, nil, err
	}
	return added, s.view(), nil
}

// AdvanceAssess moves the humanities flow to the explore step.
func (s *SessionService) AdvanceAssess() (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.humanities()
	if err != nil {
		return nil, err
	}
	if err := flow.AdvanceAssess(); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// ExploreArea handles one explore selection.
func (s *SessionService) ExploreArea(name string) (bool, *SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.humanities()
	if err != nil {
		return false, nil, err
	}
	awarded, err := flow.ExploreArea(name)
	if err != nil {
		return false, nil, err
	}
	return awarded, s.view(), nil
}

// AdvanceExplore moves the humanities flow to the quiz step.
func (s *SessionService) AdvanceExplore() (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.humanities()
	if err != nil {
		return nil, err
	}
	if err := flow.AdvanceExplore(); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// SelectQuizAnswer records one quiz selection.
func (s *SessionService) SelectQuizAnswer(question, option int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.humanities()
	if err != nil {
		return nil, err
	}
	if err := flow.SelectAnswer(question, option); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// SubmitQuiz scores the quiz.
func (s *SessionService) SubmitQuiz() (tutor.QuizResult, *SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flow, err := s.humanities()
	if err != nil {
		return tutor.QuizResult{}, nil, err
	}
	result, err := flow.SubmitQuiz()
	if err != nil {
		return tutor.QuizResult{}, nil, err
	}
	return result, s.view(), nil
}

// FinishReflection commits the session: accumulated session points become
// profile deltas through the scoring policy, the profile is persisted and
// the session is discarded. Both flow families share this contract.
func (s *SessionService) FinishReflection(text string) (*CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, ErrNoSession
	}
	profile := s.profiles.Current()
	if profile == nil {
		return nil, ErrNoProfile
	}

	points, err := s.current.Finish(text, s.now())
	if err != nil {
		return nil, err
	}

	updated := s.profiles.Update(tutor.CommitDelta(profile, points))
	s.current = nil

	return &CommitResult{
		PointsEarned: points,
		TotalPoints:  updated.TotalPoints,
		EnergyPoints: updated.EnergyPoints,
	}, nil
}

// stem returns the active STEM flow. Callers hold the lock.
func (s *SessionService) stem() (*tutor.StemFlow, error) {
	if s.current == nil {
		return nil, ErrNoSession
	}
	if s.current.Stem == nil {
		return nil, ErrNotSTEM
	}
	return s.current.Stem, nil
}

// humanities returns the active humanities flow. Callers hold the lock.
func (s *SessionService) humanities() (*tutor.HumanitiesFlow, error) {
	if s.current == nil {
		return nil, ErrNoSession
	}
	if s.current.Humanities == nil {
		return nil, ErrNotHum
	}
	return s.current.Humanities, nil
}

// view builds the step-state snapshot for the active session. Callers hold
// the lock.
func (s *SessionService) view() *SessionView {
	session := s.current
	v := &SessionView{
		Subject: session.Record.Subject,
		Topic:   session.Record.Topic,
		Step:    session.Step(),
		Points:  session.Points(),
	}

	if flow := session.Stem; flow != nil {
		v.Family = tutor.FamilySTEM
		if flow.Step() == tutor.StemPractice || flow.Step() == tutor.StemReflect {
			problem := flow.Problem()
			v.Problem = &problem
			v.Attempts = flow.Attempts()
			if flow.HintShown() {
				v.Hint = problem.Hint
			}
		}
		return v
	}

	flow := session.Humanities
	v.Family = tutor.FamilyHumanities
	v.Facts = flow.Facts()
	if flow.Step() == tutor.HumExplore {
		v.ExploreAreas = tutor.ExploreAreas
		v.Explored = flow.Explored()
	}
	if flow.Step() == tutor.HumQuiz {
		v.Quiz = flow.Quiz()
		v.Answers = flow.Answers()
	}
	return v
}
