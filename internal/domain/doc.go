// Package domain defines the core business entities and errors:
// upload sessions, quizzes and their questions, and the validation
// rules that keep them consistent.
package domain
