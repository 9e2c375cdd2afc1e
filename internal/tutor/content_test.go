package tutor

import "testing"

func TestProblemFor(t *testing.T) {
	tests := []struct {
		name             string
		subject          string
		topic            string
		expectedQuestion string
		expectedAnswer   string
	}{
		{
			name:             "math arithmetic",
			subject:          "Math",
			topic:            "Basic Arithmetic",
			expectedQuestion: "What is 12 + 15?",
			expectedAnswer:   "27",
		},
		{
			name:             "physics forces",
			subject:          "Physics",
			topic:            "Forces",
			expectedQuestion: "If a 5kg object has a force of 10N applied to it, what is its acceleration?",
			expectedAnswer:   "2",
		},
		{
			name:             "unknown topic falls back",
			subject:          "Math",
			topic:            "Geometry",
			expectedQuestion: "Sample problem for Geometry",
			expectedAnswer:   "42",
		},
		{
			name:             "unknown subject falls back",
			subject:          "Chemistry",
			topic:            "Reactions",
			expectedQuestion: "Sample problem for Reactions",
			expectedAnswer:   "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ProblemFor(tt.subject, tt.topic)
			if p.Question != tt.expectedQuestion {
				t.Errorf("Question = %q, want %q", p.Question, tt.expectedQuestion)
			}
			if p.Answer != tt.expectedAnswer {
				t.Errorf("Answer = %q, want %q", p.Answer, tt.expectedAnswer)
			}
			if p.Hint == "" {
				t.Error("problem has no hint")
			}
			if len(p.Steps) == 0 {
				t.Error("problem has no steps")
			}
		})
	}
}

func TestQuizFor(t *testing.T) {
	tests := []struct {
		name          string
		subject       string
		expectedCount int
		firstQuestion string
	}{
		{
			name:          "history",
			subject:       "History",
			expectedCount: 2,
			firstQuestion: "Which ancient civilization built the pyramids?",
		},
		{
			name:          "geography",
			subject:       "Geography",
			expectedCount: 2,
			firstQuestion: "What is the largest continent?",
		},
		{
			name:          "biology",
			subject:       "Biology",
			expectedCount: 1,
			firstQuestion: "What is the powerhouse of the cell?",
		},
		{
			name:          "unknown subject falls back to history",
			subject:       "Art",
			expectedCount: 2,
			firstQuestion: "Which ancient civilization built the pyramids?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := QuizFor(tt.subject)
			if len(qs) != tt.expectedCount {
				t.Fatalf("question count = %d, want %d", len(qs), tt.expectedCount)
			}
			if qs[0].Question != tt.firstQuestion {
				t.Errorf("first question = %q, want %q", qs[0].Question, tt.firstQuestion)
			}
			for i, q := range qs {
				if q.Correct < 0 || q.Correct >= len(q.Options) {
					t.Errorf("question %d has out of range answer index %d", i, q.Correct)
				}
			}
		})
	}
}

func TestIsExploreArea(t *testing.T) {
	for _, area := range ExploreAreas {
		if !IsExploreArea(area) {
			t.Errorf("IsExploreArea(%q) = false", area)
		}
	}
	for _, name := range []string{"", "key concepts", "Maps", "Important dates"} {
		if IsExploreArea(name) {
			t.Errorf("IsExploreArea(%q) = true", name)
		}
	}
}
