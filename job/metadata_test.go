package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okseby/huntr/errors"
)

func TestMetadataRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := &Metadata{
		ID:          "id1",
		Company:     "Acme",
		Title:       "SRE",
		URL:         "https://jobs.acme.example/sre",
		Location:    "Remote (EU)",
		Salary:      "90k-110k EUR",
		Source:      "linkedin",
		Description: "Keep the lights on.\nPage less.",
		PostedAt:    time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		Tags:        []string{"sre", "remote", "go"},
		Generators: map[string]string{
			"cover_letter": "gen.cover_letter",
			"summary":      "gen.summary",
		},
	}

	require.NoError(t, SaveMetadata(dir, m))

	loaded, err := LoadMetadata(dir)
	require.NoError(t, err)
	assert.Equal(t, m.ID, loaded.ID)
	assert.Equal(t, m.Company, loaded.Company)
	assert.Equal(t, m.Title, loaded.Title)
	assert.Equal(t, m.URL, loaded.URL)
	assert.Equal(t, m.Location, loaded.Location)
	assert.Equal(t, m.Salary, loaded.Salary)
	assert.Equal(t, m.Source, loaded.Source)
	assert.Equal(t, m.Description, loaded.Description)
	assert.True(t, m.PostedAt.Equal(loaded.PostedAt))
	assert.Equal(t, m.Tags, loaded.Tags)
	assert.Equal(t, m.Generators, loaded.Generators)
}

func TestLoadMetadataMissing(t *testing.T) {
	_, err := LoadMetadata(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestAppendLogIsAppendOnly(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, AppendLog(dir, "created", "job folder created"))
	require.NoError(t, AppendLog(dir, "move.applied", "moved to phase applied"))

	lines, err := ReadLog(dir)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "created")
	assert.Contains(t, lines[1], "move.applied")

	// A third append keeps the earlier lines intact.
	require.NoError(t, AppendLog(dir, "move.errored", "escalated"))
	lines, err = ReadLog(dir)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "created")
}

func TestReadLogMissingFile(t *testing.T) {
	lines, err := ReadLog(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, lines)
}
