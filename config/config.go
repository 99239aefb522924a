// Package config loads the huntr configuration: TOML files merged with
// HUNTR_-prefixed environment variables, with hot reload through fsnotify.
package config

// Config represents the core huntr configuration
type Config struct {
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Executor ExecutorConfig `mapstructure:"executor"`
	Log      LogConfig      `mapstructure:"log"`
}

// JobsConfig locates the filesystem trees the orchestrator operates on
type JobsConfig struct {
	Root          string `mapstructure:"root"`           // Phase directories live directly under this root
	ResumesRoot   string `mapstructure:"resumes_root"`   // Source resumes
	DefaultResume string `mapstructure:"default_resume"` // Resume used when an invocation names none
}

// ExecutorConfig configures event retry and rate limiting
type ExecutorConfig struct {
	MaxRetries      int `mapstructure:"max_retries"`       // Retries beyond the first attempt (default: 3)
	BackoffBaseMS   int `mapstructure:"backoff_base_ms"`   // Delay before retry n is base * 2^n (default: 2000)
	EventsPerMinute int `mapstructure:"events_per_minute"` // Handler attempts per minute across all jobs, 0 = unlimited
}

// LogConfig configures the application log
type LogConfig struct {
	JSON bool `mapstructure:"json"` // JSON output instead of human-readable console
}
