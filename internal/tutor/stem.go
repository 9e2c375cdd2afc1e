package tutor

import "strings"

// StemStep is the step tag for the STEM flow. Steps advance strictly in
// order; there are no backward transitions and no skipping.
type StemStep string

const (
	StemIdentify  StemStep = "identify"
	StemLearn     StemStep = "learn"
	StemSummarize StemStep = "summarize"
	StemPractice  StemStep = "practice"
	StemReflect   StemStep = "reflect"
)

// minSummaryLength is the shortest acceptable trimmed summary.
const minSummaryLength = 10

// StemFlow drives the identify -> learn -> summarize -> practice -> reflect
// tutoring sequence for one session. All state is local to the flow and
// discarded when the session ends.
type StemFlow struct {
	subject string
	topic   string

	step       StemStep
	gap        string
	summary    string
	reflection string
	problem    Problem
	attempts   int
	hintShown  bool
	points     int
	finished   bool
}

// NewStemFlow starts a STEM flow at the identify step.
func NewStemFlow(subject, topic string) *StemFlow {
	return &StemFlow{
		subject: subject,
		topic:   topic,
		step:    StemIdentify,
	}
}

// Step returns the current step tag.
func (f *StemFlow) Step() StemStep {
	return f.step
}

// Points returns the session points accumulated so far.
func (f *StemFlow) Points() int {
	return f.points
}

// Attempts returns the number of practice submissions so far.
func (f *StemFlow) Attempts() int {
	return f.attempts
}

// HintShown reports whether the practice hint has been revealed.
func (f *StemFlow) HintShown() bool {
	return f.hintShown
}

// Problem returns the practice problem. Only meaningful once the flow has
// reached the practice step.
func (f *StemFlow) Problem() Problem {
	return f.problem
}

// SubmitGap records what the learner does not understand yet. Empty or
// whitespace-only input is rejected and the flow stays in identify.
func (f *StemFlow) SubmitGap(text string) error {
	if f.step != StemIdentify {
		return ErrWrongStep
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyInput
	}
	f.gap = trimmed
	f.points += IdentifyPoints
	f.step = StemLearn
	return nil
}

// AdvanceLearn moves past the presentational learn step. No validation,
// no points.
func (f *StemFlow) AdvanceLearn() error {
	if f.step != StemLearn {
		return ErrWrongStep
	}
	f.step = StemSummarize
	return nil
}

// SubmitSummary records the learner's summary and generates the practice
// problem. Summaries under the minimum length are rejected.
func (f *StemFlow) SubmitSummary(text string) error {
	if f.step != StemSummarize {
		return ErrWrongStep
	}
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minSummaryLength {
		return ErrSummaryTooShort
	}
	f.summary = trimmed
	f.points += SummaryPoints
	f.problem = ProblemFor(f.subject, f.topic)
	f.step = StemPractice
	return nil
}

// AnswerResult describes the outcome of one practice submission.
type AnswerResult struct {
	Correct  bool   `json:"correct"`
	Attempts int    `json:"attempts"`
	Award    int    `json:"award"`
	Hint     string `json:"hint,omitempty"`
}

// SubmitAnswer checks a practice answer. The check is deliberately
// permissive: the answer is correct when the lowercased submission contains
// the lowercased canonical answer. A correct answer earns the attempt-decayed
// award and advances to reflect; from the third wrong try on, the hint is
// revealed. The learner may retry indefinitely.
func (f *StemFlow) SubmitAnswer(text string) (AnswerResult, error) {
	if f.step != StemPractice {
		return AnswerResult{}, ErrWrongStep
	}
	f.attempts++

	if strings.Contains(strings.ToLower(text), strings.ToLower(f.problem.Answer)) {
		award := PracticeAward(f.attempts)
		f.points += award
		f.step = StemReflect
		return AnswerResult{Correct: true, Attempts: f.attempts, Award: award}, nil
	}

	if f.attempts >= 3 {
		f.hintShown = true
	}
	result := AnswerResult{Attempts: f.attempts}
	if f.hintShown {
		result.Hint = f.problem.Hint
	}
	return result, nil
}

// Finish records the reflection text and terminates the flow, returning the
// session point total for the commit. The reflection is not validated.
// Finishing twice is rejected so points can never be committed twice.
func (f *StemFlow) Finish(reflection string) (int, error) {
	if f.finished {
		return 0, ErrSessionDone
	}
	if f.step != StemReflect {
		return 0, ErrWrongStep
	}
	f.reflection = strings.TrimSpace(reflection)
	f.finished = true
	return f.points, nil
}
