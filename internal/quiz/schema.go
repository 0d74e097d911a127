package quiz

import "github.com/tealfox/quizforge/internal/generation"

// responseSchema describes the JSON shape every quiz response must follow.
// It mirrors domain.Quiz so decoding the constrained output is direct.
func responseSchema() *generation.Schema {
	return &generation.Schema{
		Type: generation.TypeObject,
		Properties: map[string]*generation.Schema{
			"questions": {
				Type: generation.TypeArray,
				Items: &generation.Schema{
					Type: generation.TypeObject,
					Properties: map[string]*generation.Schema{
						"questionNumber": {Type: generation.TypeInteger},
						"question":       {Type: generation.TypeString},
						"imageUrl":       {Type: generation.TypeString},
						"answerOptions": {
							Type: generation.TypeArray,
							Items: &generation.Schema{
								Type: generation.TypeObject,
								Properties: map[string]*generation.Schema{
									"text":      {Type: generation.TypeString},
									"rationale": {Type: generation.TypeString},
									"isCorrect": {Type: generation.TypeBoolean},
								},
							},
						},
						"hint": {Type: generation.TypeString},
					},
					PropertyOrdering: []string{"questionNumber", "question", "imageUrl", "answerOptions", "hint"},
				},
			},
		},
		PropertyOrdering: []string{"questions"},
	}
}
