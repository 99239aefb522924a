package job

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/okseby/huntr/errors"
)

// LogFile is the per-job append-only audit trail: one line per lifecycle
// event, never truncated or rewritten. A human inspecting a single job
// folder gets the complete history without consulting global logs.
const LogFile = "job.log"

// AppendLog appends one event line to the job's log.
func AppendLog(jobPath, event, message string) error {
	path := filepath.Join(jobPath, LogFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to open job log %s", path)
	}
	defer f.Close()

	line := fmt.Sprintf("%s\t%s\t%s\n", time.Now().Format(time.RFC3339), event, message)
	if _, err := f.WriteString(line); err != nil {
		return errors.Wrapf(err, "failed to append to job log %s", path)
	}
	return nil
}

// ReadLog returns the job's log lines in order, for audit and CLI display.
func ReadLog(jobPath string) ([]string, error) {
	path := filepath.Join(jobPath, LogFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read job log %s", path)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}
