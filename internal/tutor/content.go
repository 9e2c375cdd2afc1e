package tutor

import "fmt"

// Problem is one practice exercise for the STEM flow.
type Problem struct {
	Question string   `json:"question"`
	Answer   string   `json:"-"`
	Steps    []string `json:"steps"`
	Hint     string   `json:"-"`
}

// QuizQuestion is one multiple-choice question for the humanities flow.
// Correct is the index of the right option.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"-"`
}

// practiceProblems maps subject -> topic -> problem.
var practiceProblems = map[string]map[string]Problem{
	"Math": {
		"Basic Arithmetic": {
			Question: "What is 12 + 15?",
			Answer:   "27",
			Steps:    []string{"12 + 15", "= 27"},
			Hint:     "Add the ones place first: 2 + 5 = 7, then the tens place: 1 + 1 = 2",
		},
	},
	"Physics": {
		"Forces": {
			Question: "If a 5kg object has a force of 10N applied to it, what is its acceleration?",
			Answer:   "2",
			Steps:    []string{"F = ma", "10 = 5 × a", "a = 10/5", "a = 2 m/s²"},
			Hint:     "Remember Newton's second law: F = ma. Solve for acceleration (a).",
		},
	},
}

// ProblemFor returns the practice problem for a subject+topic pair. When
// no exact match exists it falls back to a generic placeholder so the flow
// never fails on a lookup miss.
func ProblemFor(subject, topic string) Problem {
	if topics, ok := practiceProblems[subject]; ok {
		if p, ok := topics[topic]; ok {
			return p
		}
	}
	return Problem{
		Question: fmt.Sprintf("Sample problem for %s", topic),
		Answer:   "42",
		Steps:    []string{"Step 1", "Step 2", "Answer: 42"},
		Hint:     "Think step by step!",
	}
}

// quizQuestions maps subject -> question set.
var quizQuestions = map[string][]QuizQuestion{
	"History": {
		{
			Question: "Which ancient civilization built the pyramids?",
			Options:  []string{"Romans", "Greeks", "Egyptians", "Babylonians"},
			Correct:  2,
		},
		{
			Question: "What year did World War II end?",
			Options:  []string{"1944", "1945", "1946", "1947"},
			Correct:  1,
		},
	},
	"Geography": {
		{
			Question: "What is the largest continent?",
			Options:  []string{"Africa", "Asia", "North America", "Europe"},
			Correct:  1,
		},
		{
			Question: "Which river is the longest in the world?",
			Options:  []string{"Amazon", "Nile", "Mississippi", "Yangtze"},
			Correct:  1,
		},
	},
	"Biology": {
		{
			Question: "What is the powerhouse of the cell?",
			Options:  []string{"Nucleus", "Ribosome", "Mitochondria", "Chloroplast"},
			Correct:  2,
		},
	},
}

// defaultQuizSubject supplies the question set for subjects without one.
const defaultQuizSubject = "History"

// QuizFor returns the quiz question set for a subject, falling back to the
// default subject's set when none is defined.
func QuizFor(subject string) []QuizQuestion {
	if qs, ok := quizQuestions[subject]; ok {
		return qs
	}
	return quizQuestions[defaultQuizSubject]
}

// ExploreAreas is the fixed list of exploration areas offered in the
// humanities explore step.
var ExploreAreas = []string{"Key Concepts", "Important Dates", "Notable Figures", "Cultural Impact"}

// IsExploreArea reports whether name is one of the fixed exploration areas.
func IsExploreArea(name string) bool {
	for _, a := range ExploreAreas {
		if a == name {
			return true
		}
	}
	return false
}
