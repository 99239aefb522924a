package flow

// ErrorRecord is one structured error surfaced by a handler. Records end up
// in the diagnostic artifact on escalation, so they carry TOML tags.
type ErrorRecord struct {
	Stage   string `toml:"stage"`
	Message string `toml:"message"`
	Detail  string `toml:"detail,omitempty"`
}

// Result is returned by every handler and by the executor.
//
// Invariant: JobPath always points to an existing directory, success or not.
// A move event reports the folder's new location; everything else echoes the
// input path. The job is never left "nowhere".
type Result struct {
	OK        bool
	JobPath   string
	Message   string
	Errors    []ErrorRecord
	Artifacts []string
}

// Success builds a successful result.
func Success(jobPath, message string, artifacts ...string) Result {
	return Result{OK: true, JobPath: jobPath, Message: message, Artifacts: artifacts}
}

// Failure builds a failed result. JobPath must still be a valid location.
func Failure(jobPath, message string, errs ...ErrorRecord) Result {
	return Result{OK: false, JobPath: jobPath, Message: message, Errors: errs}
}
