package tutor

import "strings"

// HumanitiesStep is the step tag for the humanities flow. Linear order,
// no backward transitions.
type HumanitiesStep string

const (
	HumAssess  HumanitiesStep = "assess"
	HumExplore HumanitiesStep = "explore"
	HumQuiz    HumanitiesStep = "quiz"
	HumReflect HumanitiesStep = "reflect"
)

// unanswered marks a quiz question without a selection yet.
const unanswered = -1

// HumanitiesFlow drives the assess -> explore -> quiz -> reflect tutoring
// sequence for one session.
type HumanitiesFlow struct {
	subject string
	topic   string

	step       HumanitiesStep
	facts      []string
	explored   []string
	quiz       []QuizQuestion
	answers    []int
	reflection string
	points     int
	finished   bool
}

// NewHumanitiesFlow starts a humanities flow at the assess step.
func NewHumanitiesFlow(subject, topic string) *HumanitiesFlow {
	return &HumanitiesFlow{
		subject: subject,
		topic:   topic,
		step:    HumAssess,
	}
}

// Step returns the current step tag.
func (f *HumanitiesFlow) Step() HumanitiesStep {
	return f.step
}

// Points returns the session points accumulated so far.
func (f *HumanitiesFlow) Points() int {
	return f.points
}

// Facts returns the known facts collected in the assess step.
func (f *HumanitiesFlow) Facts() []string {
	out := make([]string, len(f.facts))
	copy(out, f.facts)
	return out
}

// Explored returns the exploration areas selected so far.
func (f *HumanitiesFlow) Explored() []string {
	out := make([]string, len(f.explored))
	copy(out, f.explored)
	return out
}

// Quiz returns the loaded quiz questions. Empty until the flow reaches the
// quiz step.
func (f *HumanitiesFlow) Quiz() []QuizQuestion {
	return f.quiz
}

// Answers returns the current selections, -1 for unanswered questions.
func (f *HumanitiesFlow) Answers() []int {
	out := make([]int, len(f.answers))
	copy(out, f.answers)
	return out
}

// AddFact records a known fact. Duplicates (exact string match after
// trimming) are ignored and earn nothing; the returned bool reports whether
// the fact was new.
func (f *HumanitiesFlow) AddFact(text string) (bool, error) {
	if f.step != HumAssess {
		return false, ErrWrongStep
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, ErrEmptyInput
	}
	for _, known := range f.facts {
		if known == trimmed {
			return false, nil
		}
	}
	f.facts = append(f.facts, trimmed)
	f.points += FactPoints
	return true, nil
}

// AdvanceAssess moves to the explore step. Zero facts is fine.
func (f *HumanitiesFlow) AdvanceAssess() error {
	if f.step != HumAssess {
		return ErrWrongStep
	}
	f.step = HumExplore
	return nil
}

// ExploreArea marks one of the fixed areas as explored. The first selection
// of an area awards points; re-selecting is a no-op. The returned bool
// reports whether the selection was new.
func (f *HumanitiesFlow) ExploreArea(name string) (bool, error) {
	if f.step != HumExplore {
		return false, ErrWrongStep
	}
	if !IsExploreArea(name) {
		return false, ErrUnknownArea
	}
	for _, seen := range f.explored {
		if seen == name {
			return false, nil
		}
	}
	f.explored = append(f.explored, name)
	f.points += ExplorePoints
	return true, nil
}

// AdvanceExplore loads the quiz for the session's subject and moves to the
// quiz step.
func (f *HumanitiesFlow) AdvanceExplore() error {
	if f.step != HumExplore {
		return ErrWrongStep
	}
	f.quiz = QuizFor(f.subject)
	f.answers = make([]int, len(f.quiz))
	for i := range f.answers {
		f.answers[i] = unanswered
	}
	f.step = HumQuiz
	return nil
}

// SelectAnswer records the learner's choice for one question. Selections
// may be overwritten until the quiz is submitted.
func (f *HumanitiesFlow) SelectAnswer(question, option int) error {
	if f.step != HumQuiz {
		return ErrWrongStep
	}
	if question < 0 || question >= len(f.quiz) {
		return ErrBadQuestion
	}
	if option < 0 || option >= len(f.quiz[question].Options) {
		return ErrBadOption
	}
	f.answers[question] = option
	return nil
}

// QuizResult describes a submitted quiz.
type QuizResult struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Award   int `json:"award"`
}

// SubmitQuiz scores the quiz and advances to reflect. Submission is
// rejected while any question is unanswered.
func (f *HumanitiesFlow) SubmitQuiz() (QuizResult, error) {
	if f.step != HumQuiz {
		return QuizResult{}, ErrWrongStep
	}
	for _, a := range f.answers {
		if a == unanswered {
			return QuizResult{}, ErrQuizIncomplete
		}
	}

	correct := 0
	for i, q := range f.quiz {
		if f.answers[i] == q.Correct {
			correct++
		}
	}
	award := correct * QuizCorrectPoints
	f.points += award
	f.step = HumReflect
	return QuizResult{Correct: correct, Total: len(f.quiz), Award: award}, nil
}

// Finish records the reflection text and terminates the flow, returning the
// session point total for the commit. Same contract as the STEM flow.
func (f *HumanitiesFlow) Finish(reflection string) (int, error) {
	if f.finished {
		return 0, ErrSessionDone
	}
	if f.step != HumReflect {
		return 0, ErrWrongStep
	}
	f.reflection = strings.TrimSpace(reflection)
	f.finished = true
	return f.points, nil
}
