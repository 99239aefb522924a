package job

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/okseby/huntr/errors"
)

// Create materializes a new job folder in the Queued phase from a job
// description. A missing id is allocated and written back into m so later
// steps can address the same job by id.
//
// Creation is idempotent in the safe direction: if a folder with the
// computed name already exists, Create fails with ErrFolderExists and
// touches nothing, rather than silently overwriting.
func Create(jobsRoot string, m *Metadata) (string, error) {
	if m == nil {
		return "", errors.Wrap(errors.ErrInvalidRequest, "job description is required")
	}
	if m.Company == "" && m.Title == "" {
		return "", errors.Wrap(errors.ErrInvalidRequest, "job description needs a company or title")
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.PostedAt.IsZero() {
		m.PostedAt = time.Now()
	}

	queuedDir, err := Dir(jobsRoot, PhaseQueued)
	if err != nil {
		return "", err
	}

	path := filepath.Join(queuedDir, FolderName(m.Identity()))
	if dirExists(path) {
		return path, errors.Wrapf(errors.ErrFolderExists, "%s", path)
	}

	if err := os.Mkdir(path, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create job folder %s", path)
	}
	if err := SaveMetadata(path, m); err != nil {
		return "", err
	}
	if err := AppendLog(path, "created", "job folder created in phase "+PhaseQueued.String()); err != nil {
		return "", err
	}
	return path, nil
}
