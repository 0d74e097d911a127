// Package config defines the application configuration structure and
// loading logic. Configuration is sourced from environment variables
// (QUIZFORGE_ prefix) and an optional config.yaml file, with env vars
// taking precedence.
package config
