// Package quiz generates structured multiple-choice quizzes from source
// text through a schema-constrained generation call. The response schema
// is declared as data, malformed model output degrades to an empty quiz
// rather than an error, and question numbers are renumbered sequentially
// regardless of what the model returned.
package quiz
