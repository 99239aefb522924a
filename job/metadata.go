package job

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/okseby/huntr/errors"
)

// MetadataFile is the structured, human-editable record every job folder
// carries. Its absence after a move is a warning, not a failure.
const MetadataFile = "job.toml"

// Metadata is the per-job record. It round-trips losslessly through TOML.
//
// Generators maps a content-section name (e.g. "cover_letter") to the name
// of the generation event responsible for producing it. The orchestration
// core never interprets the section names; they belong to the content
// handlers.
type Metadata struct {
	ID          string            `toml:"id"`
	Company     string            `toml:"company"`
	Title       string            `toml:"title"`
	URL         string            `toml:"url,omitempty"`
	Location    string            `toml:"location,omitempty"`
	Salary      string            `toml:"salary,omitempty"`
	Source      string            `toml:"source,omitempty"`
	Description string            `toml:"description,omitempty"`
	PostedAt    time.Time         `toml:"posted_at"`
	Tags        []string          `toml:"tags,omitempty"`
	Generators  map[string]string `toml:"generators,omitempty"`
}

// Identity returns the value object used to compute the folder name.
func (m *Metadata) Identity() Identity {
	return Identity{
		Company:  m.Company,
		Title:    m.Title,
		PostedAt: m.PostedAt,
		JobID:    m.ID,
	}
}

// SaveMetadata writes the metadata record into the job folder.
func SaveMetadata(jobPath string, m *Metadata) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "failed to marshal job metadata")
	}
	path := filepath.Join(jobPath, MetadataFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// LoadMetadata reads the metadata record from the job folder.
func LoadMetadata(jobPath string) (*Metadata, error) {
	path := filepath.Join(jobPath, MetadataFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "no metadata record at %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var m Metadata
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return &m, nil
}
