package service

import (
	"errors"

	"github.com/google/uuid"

	"learnsafe/internal/models"
	"learnsafe/internal/tutor"
	"learnsafe/internal/utils"
)

// Initial profile values for a new learner.
const (
	StartingEnergy     = 100
	DefaultTimeLimit   = 120 // minutes per day
	PlacementBonusPerQ = 10
	MinLearnerAge      = 5
	MaxLearnerAge      = 18
)

// Grades is the fixed list of selectable grade levels.
var Grades = []string{"K", "1st", "2nd", "3rd", "4th", "5th", "6th", "7th", "8th", "9th", "10th", "11th", "12th"}

// placementQuestions is the short quiz shown during registration. Each
// correct answer adds a starting-point bonus.
var placementQuestions = []tutor.QuizQuestion{
	{
		Question: "What is 5 + 3?",
		Options:  []string{"6", "7", "8", "9"},
		Correct:  2,
	},
	{
		Question: "Which planet is closest to the Sun?",
		Options:  []string{"Earth", "Mars", "Mercury", "Venus"},
		Correct:  2,
	},
	{
		Question: "What is the capital of France?",
		Options:  []string{"London", "Berlin", "Paris", "Madrid"},
		Correct:  2,
	},
}

var (
	ErrAlreadyRegistered = errors.New("a profile already exists")
	ErrInvalidAge        = errors.New("age must be between 5 and 18")
	ErrInvalidGrade      = errors.New("grade is not in the list")
)

// RegistrationService produces the initial learner profile.
type RegistrationService struct {
	profiles *ProfileService
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(profiles *ProfileService) *RegistrationService {
	return &RegistrationService{profiles: profiles}
}

// Questions returns the placement quiz.
func (s *RegistrationService) Questions() []tutor.QuizQuestion {
	out := make([]tutor.QuizQuestion, len(placementQuestions))
	copy(out, placementQuestions)
	return out
}

// Register validates the demographics, scores the placement quiz and
// installs the initial profile. Answers are matched by position; missing
// answers simply earn no bonus.
func (s *RegistrationService) Register(name string, age int, grade string, answers []int) (*models.UserProfile, error) {
	if s.profiles.Current() != nil {
		return nil, ErrAlreadyRegistered
	}
	if err := utils.ValidateName(name); err != nil {
		return nil, err
	}
	if age < MinLearnerAge || age > MaxLearnerAge {
		return nil, ErrInvalidAge
	}
	if !validGrade(grade) {
		return nil, ErrInvalidGrade
	}

	bonus := s.placementBonus(answers)
	profile := &models.UserProfile{
		ID:             uuid.New().String(),
		Name:           name,
		Age:            age,
		Grade:          grade,
		EnergyPoints:   StartingEnergy + bonus,
		TotalPoints:    bonus,
		TimeSpentToday: 0,
		TimeLimit:      DefaultTimeLimit,
		CurrentStreak:  0,
		Subjects:       map[string]models.SubjectMastery{},
	}

	s.profiles.SetProfile(profile)
	return profile, nil
}

// placementBonus counts correct placement answers and converts them to
// starting points.
func (s *RegistrationService) placementBonus(answers []int) int {
	correct := 0
	for i, q := range placementQuestions {
		if i < len(answers) && answers[i] == q.Correct {
			correct++
		}
	}
	return correct * PlacementBonusPerQ
}

func validGrade(grade string) bool {
	for _, g := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}
