package api

import "github.com/tealfox/quizforge/internal/domain"

// SummarizeRequest is the request body for POST /api/sessions/{id}/summarize.
type SummarizeRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// QuizRequest is the request body for POST /api/sessions/{id}/quiz. Both
// fields are optional; zero values take the documented defaults.
type QuizRequest struct {
	NumQuestions int    `json:"num_questions" validate:"omitempty,gte=1,lte=20"`
	Difficulty   string `json:"difficulty"    validate:"omitempty,oneof=easy medium hard"`
}

// Default quiz settings applied when the request omits them.
const (
	DefaultNumQuestions = 5
	DefaultDifficulty   = "medium"
)

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	SessionID   string `json:"session_id"`
	SourceName  string `json:"source_name"`
	SourceChars int    `json:"source_chars"`
	Status      string `json:"status"`
}

// SummaryResponse is returned by the summarize and summary endpoints.
type SummaryResponse struct {
	SessionID string `json:"session_id"`
	Summary   string `json:"summary"`
}

// QuizResponse is returned by the quiz endpoint.
type QuizResponse struct {
	SessionID string            `json:"session_id"`
	Questions []domain.Question `json:"questions"`
}
