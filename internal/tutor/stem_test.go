package tutor

import (
	"errors"
	"testing"
)

func TestStemFlowHappyPath(t *testing.T) {
	f := NewStemFlow("Math", "Basic Arithmetic")

	if f.Step() != StemIdentify {
		t.Fatalf("initial step = %v, want %v", f.Step(), StemIdentify)
	}

	if err := f.SubmitGap("I don't understand carrying"); err != nil {
		t.Fatalf("SubmitGap failed: %v", err)
	}
	if f.Points() != 5 {
		t.Errorf("points after identify = %d, want 5", f.Points())
	}
	if f.Step() != StemLearn {
		t.Errorf("step after identify = %v, want %v", f.Step(), StemLearn)
	}

	if err := f.AdvanceLearn(); err != nil {
		t.Fatalf("AdvanceLearn failed: %v", err)
	}
	if f.Points() != 5 {
		t.Errorf("learn step awarded points: got %d, want 5", f.Points())
	}

	if err := f.SubmitSummary("Adding two numbers column by column"); err != nil {
		t.Fatalf("SubmitSummary failed: %v", err)
	}
	if f.Points() != 15 {
		t.Errorf("points after summary = %d, want 15", f.Points())
	}
	if f.Problem().Question != "What is 12 + 15?" {
		t.Errorf("unexpected problem: %q", f.Problem().Question)
	}

	result, err := f.SubmitAnswer("27")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !result.Correct {
		t.Fatal("correct answer reported as wrong")
	}
	if result.Award != 15 {
		t.Errorf("first try award = %d, want 15", result.Award)
	}
	if f.Points() != 30 {
		t.Errorf("points after practice = %d, want 30", f.Points())
	}
	if f.Step() != StemReflect {
		t.Errorf("step after correct answer = %v, want %v", f.Step(), StemReflect)
	}

	points, err := f.Finish("I learned how to add")
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if points != 30 {
		t.Errorf("Finish returned %d points, want 30", points)
	}
}

func TestStemFlowEmptyGapRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "spaces only", input: "   "},
		{name: "tabs and newlines", input: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewStemFlow("Math", "Algebra")
			err := f.SubmitGap(tt.input)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("SubmitGap(%q) error = %v, want ErrEmptyInput", tt.input, err)
			}
			if f.Step() != StemIdentify {
				t.Errorf("step moved to %v on rejected input", f.Step())
			}
			if f.Points() != 0 {
				t.Errorf("rejected input awarded %d points", f.Points())
			}
		})
	}
}

func TestStemFlowShortSummaryRejected(t *testing.T) {
	f := NewStemFlow("Physics", "Forces")
	if err := f.SubmitGap("forces confuse me"); err != nil {
		t.Fatal(err)
	}
	if err := f.AdvanceLearn(); err != nil {
		t.Fatal(err)
	}

	if err := f.SubmitSummary("  too short  "); !errors.Is(err, ErrSummaryTooShort) {
		t.Errorf("short summary error = %v, want ErrSummaryTooShort", err)
	}
	if f.Step() != StemSummarize {
		t.Errorf("step moved to %v on rejected summary", f.Step())
	}

	// Exactly at the minimum length after trimming.
	if err := f.SubmitSummary(" 1234567890 "); err != nil {
		t.Errorf("minimum length summary rejected: %v", err)
	}
}

func TestStemFlowWrongStepRejected(t *testing.T) {
	f := NewStemFlow("Math", "Fractions")

	if err := f.AdvanceLearn(); !errors.Is(err, ErrWrongStep) {
		t.Errorf("AdvanceLearn in identify = %v, want ErrWrongStep", err)
	}
	if err := f.SubmitSummary("a perfectly fine summary"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitSummary in identify = %v, want ErrWrongStep", err)
	}
	if _, err := f.SubmitAnswer("42"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitAnswer in identify = %v, want ErrWrongStep", err)
	}
	if _, err := f.Finish("done"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("Finish in identify = %v, want ErrWrongStep", err)
	}

	if err := f.SubmitGap("fractions"); err != nil {
		t.Fatal(err)
	}
	if err := f.SubmitGap("fractions again"); !errors.Is(err, ErrWrongStep) {
		t.Errorf("SubmitGap in learn = %v, want ErrWrongStep", err)
	}
}

func TestStemFlowHintAfterThirdWrongAttempt(t *testing.T) {
	f := NewStemFlow("Physics", "Forces")
	if err := f.SubmitGap("newton's laws"); err != nil {
		t.Fatal(err)
	}
	if err := f.AdvanceLearn(); err != nil {
		t.Fatal(err)
	}
	if err := f.SubmitSummary("force equals mass times acceleration"); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 2; i++ {
		result, err := f.SubmitAnswer("wrong")
		if err != nil {
			t.Fatal(err)
		}
		if result.Hint != "" {
			t.Errorf("hint revealed on attempt %d", i)
		}
	}

	result, err := f.SubmitAnswer("still wrong")
	if err != nil {
		t.Fatal(err)
	}
	if result.Hint == "" {
		t.Error("hint not revealed on third wrong attempt")
	}
	if !f.HintShown() {
		t.Error("HintShown() = false after third wrong attempt")
	}

	// Fourth attempt succeeds and earns the floor award.
	result, err = f.SubmitAnswer("the answer is 2 m/s^2")
	if err != nil {
		t.Fatal(err)
	}
	if !result.Correct {
		t.Fatal("correct answer reported as wrong")
	}
	if result.Award != 5 {
		t.Errorf("fourth attempt award = %d, want 5", result.Award)
	}
}

func TestStemFlowAnswerSubstringMatch(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{name: "exact match", answer: "27", correct: true},
		{name: "embedded in sentence", answer: "I think it's 27!", correct: true},
		{name: "mixed case text around answer", answer: "THE ANSWER IS 27", correct: true},
		{name: "wrong number", answer: "26", correct: false},
		{name: "empty submission", answer: "", correct: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewStemFlow("Math", "Basic Arithmetic")
			if err := f.SubmitGap("addition"); err != nil {
				t.Fatal(err)
			}
			if err := f.AdvanceLearn(); err != nil {
				t.Fatal(err)
			}
			if err := f.SubmitSummary("adding numbers together"); err != nil {
				t.Fatal(err)
			}
			result, err := f.SubmitAnswer(tt.answer)
			if err != nil {
				t.Fatal(err)
			}
			if result.Correct != tt.correct {
				t.Errorf("SubmitAnswer(%q).Correct = %v, want %v", tt.answer, result.Correct, tt.correct)
			}
		})
	}
}

func TestStemFlowFinishTwiceRejected(t *testing.T) {
	f := NewStemFlow("Math", "Basic Arithmetic")
	if err := f.SubmitGap("sums"); err != nil {
		t.Fatal(err)
	}
	if err := f.AdvanceLearn(); err != nil {
		t.Fatal(err)
	}
	if err := f.SubmitSummary("numbers add together"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.SubmitAnswer("27"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Finish("great session"); err != nil {
		t.Fatal(err)
	}

	if _, err := f.Finish("again"); !errors.Is(err, ErrSessionDone) {
		t.Errorf("second Finish error = %v, want ErrSessionDone", err)
	}
}
