package domain

// Quiz is an ordered set of multiple-choice questions generated from a
// summary. A quiz with zero questions is a valid, if useless, result:
// the structured-output pipeline degrades to it rather than failing when
// the model returns an unusable payload.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question. ImageURL is always
// empty by policy; the field exists because the response schema carries
// it. The JSON field names match the schema sent to the model.
type Question struct {
	QuestionNumber int            `json:"questionNumber"`
	Question       string         `json:"question"`
	ImageURL       string         `json:"imageUrl"`
	AnswerOptions  []AnswerOption `json:"answerOptions"`
	Hint           string         `json:"hint"`
}

// AnswerOption is one candidate answer with its rationale. Exactly one
// option per question should be marked correct; that is a policy the
// model is instructed to follow, not something enforced here.
type AnswerOption struct {
	Text      string `json:"text"`
	Rationale string `json:"rationale"`
	IsCorrect bool   `json:"isCorrect"`
}

// Renumber rewrites every question's QuestionNumber to its 1-based
// position in the slice, discarding whatever numbering the model
// produced. Order is preserved; only the numbers change.
func (q *Quiz) Renumber() {
	for i := range q.Questions {
		q.Questions[i].QuestionNumber = i + 1
	}
}
