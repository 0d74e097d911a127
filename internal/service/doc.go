// Package service implements the application's business operations over
// the storage and generation layers: creating sessions from uploads,
// running summarization, and producing quizzes from stored summaries.
package service
