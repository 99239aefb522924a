package logger

// Standard field names for consistent structured logging across huntr.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldJobID   = "job_id"
	FieldJobPath = "job_path"
	FieldCompany = "company"
	FieldTitle   = "title"

	// Lifecycle
	FieldEvent    = "event"
	FieldPhase    = "phase"
	FieldFrom     = "from"
	FieldTo       = "to"
	FieldAttempt  = "attempt"
	FieldAttempts = "attempts"
	FieldOutcome  = "outcome"
	FieldBackoff  = "backoff"

	// Components
	FieldComponent = "component"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"

	// Counts
	FieldCount = "count"
)
