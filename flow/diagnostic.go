package flow

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/okseby/huntr/errors"
)

// DiagnosticFile is the structured error summary written into a job folder
// when a repeatedly failing event is classified as job-specific.
const DiagnosticFile = "error.toml"

// Diagnostic is the escalation record. When the failure originated from a
// recovered panic rather than a reported failure result, the error records
// include the captured stack.
type Diagnostic struct {
	Event      string        `toml:"event"`
	Attempts   int           `toml:"attempts"`
	MaxRetries int           `toml:"max_retries"`
	Message    string        `toml:"message"`
	FailedAt   time.Time     `toml:"failed_at"`
	Errors     []ErrorRecord `toml:"errors,omitempty"`
}

func writeDiagnostic(jobPath, event string, attempts, maxRetries int, res Result) error {
	d := Diagnostic{
		Event:      event,
		Attempts:   attempts,
		MaxRetries: maxRetries,
		Message:    res.Message,
		FailedAt:   time.Now(),
		Errors:     res.Errors,
	}
	data, err := toml.Marshal(d)
	if err != nil {
		return errors.Wrap(err, "failed to marshal diagnostic record")
	}
	path := filepath.Join(jobPath, DiagnosticFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write diagnostic record %s", path)
	}
	return nil
}

// LoadDiagnostic reads the escalation record from a job folder, if present.
func LoadDiagnostic(jobPath string) (*Diagnostic, error) {
	path := filepath.Join(jobPath, DiagnosticFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "no diagnostic record at %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var d Diagnostic
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &d, nil
}
