package domain

import "testing"

func TestQuizRenumber(t *testing.T) {
	t.Parallel()

	quiz := Quiz{
		Questions: []Question{
			{QuestionNumber: 3, Question: "first"},
			{QuestionNumber: 1, Question: "second"},
			{QuestionNumber: 2, Question: "third"},
		},
	}

	quiz.Renumber()

	// Numbering is rewritten in place; question order is untouched.
	wantOrder := []string{"first", "second", "third"}
	for i, q := range quiz.Questions {
		if q.QuestionNumber != i+1 {
			t.Errorf("Question %d: expected number %d, got %d", i, i+1, q.QuestionNumber)
		}
		if q.Question != wantOrder[i] {
			t.Errorf("Question %d: expected text %q, got %q", i, wantOrder[i], q.Question)
		}
	}
}

func TestQuizRenumberEmpty(t *testing.T) {
	t.Parallel()

	quiz := Quiz{}
	quiz.Renumber()

	if len(quiz.Questions) != 0 {
		t.Errorf("Expected zero questions, got %d", len(quiz.Questions))
	}
}
