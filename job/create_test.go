package job

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okseby/huntr/errors"
)

func TestCreate(t *testing.T) {
	root := t.TempDir()
	m := &Metadata{
		Company:  "TestCorp",
		Title:    "Senior Engineer",
		PostedAt: time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local),
		ID:       "test123",
	}

	path, err := Create(root, m)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "00.queued", "TestCorp.Senior_Engineer.20260115-120000.test123"), path)

	loaded, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, "test123", loaded.ID)

	lines, err := ReadLog(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "created")
}

func TestCreateAllocatesID(t *testing.T) {
	root := t.TempDir()
	m := &Metadata{Company: "Acme", Title: "SRE", PostedAt: time.Now()}

	path, err := Create(root, m)
	require.NoError(t, err)

	// The allocated id is exported back into the description and into the
	// folder's metadata, so later steps can address the job by id.
	require.NotEmpty(t, m.ID)
	loaded, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, m.ID, loaded.ID)

	parsed, ok := ParseFolderName(filepath.Base(path))
	require.True(t, ok)
	assert.Equal(t, m.ID, parsed.JobID)
}

func TestCreateIdempotent(t *testing.T) {
	root := t.TempDir()
	m := &Metadata{
		Company:  "Acme",
		Title:    "SRE",
		PostedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local),
		ID:       "id1",
	}

	first, err := Create(root, m)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(first, "notes.md"), []byte("precious"), 0o644))

	// Second attempt with identical inputs fails without overwriting.
	second, err := Create(root, m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFolderExists))
	assert.Equal(t, first, second)

	data, err := os.ReadFile(filepath.Join(first, "notes.md"))
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))

	// Still exactly one folder in queued.
	entries, err := os.ReadDir(filepath.Join(root, "00.queued"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateRequiresDescription(t *testing.T) {
	root := t.TempDir()

	_, err := Create(root, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))

	_, err = Create(root, &Metadata{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}
