package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Storage    StorageConfig    `mapstructure:"storage"    validate:"required"`
	Upload     UploadConfig     `mapstructure:"upload"     validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Summarizer SummarizerConfig `mapstructure:"summarizer" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// URL is optional: when it is empty the application falls back to the
// filesystem-backed session store under Storage.DataDir.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty"`
}

// StorageConfig configures the filesystem session store.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// UploadConfig bounds what the upload endpoint accepts.
type UploadConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"required,gt=0"`
}

// LLMConfig contains all generative-language integration settings.
// There is deliberately no API key here: the credential is supplied by
// the caller on every request and never configured process-wide.
type LLMConfig struct {
	ModelName      string        `mapstructure:"model_name"       validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"  validate:"required"`
	MaxAttempts    int           `mapstructure:"max_attempts"     validate:"required,gt=0"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" validate:"required"`
}

// SummarizerConfig controls how long documents are split before
// per-segment summarization.
type SummarizerConfig struct {
	ChunkSize    int `mapstructure:"chunk_size"    validate:"required,gt=0"`
	ChunkOverlap int `mapstructure:"chunk_overlap" validate:"gte=0,ltfield=ChunkSize"`
}
