package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okseby/huntr/errors"
)

// makeJob creates a job folder in the given phase with the given files.
func makeJob(t *testing.T, root string, p Phase, name string, files map[string]string) string {
	t.Helper()
	dir, err := Dir(root, p)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755))
	for rel, content := range files {
		full := filepath.Join(path, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return path
}

// assertOnlyIn asserts the folder name exists under exactly the given phase
// and nowhere else.
func assertOnlyIn(t *testing.T, root, name string, p Phase) {
	t.Helper()
	for _, other := range Phases() {
		candidate := filepath.Join(root, other.DirName(), name)
		_, err := os.Stat(candidate)
		if other == p {
			assert.NoError(t, err, "expected %s under %s", name, other)
		} else {
			assert.True(t, os.IsNotExist(err), "unexpected copy of %s under %s", name, other)
		}
	}
}

func TestMovePreservesContent(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		MetadataFile:          "id = \"id1\"\n",
		"notes.md":            "remember to follow up",
		"assets/cover.html":   "<html>cover</html>",
		"assets/deep/tag.txt": "x",
	}
	name := "Acme.SRE.20240101-090000.id1"
	path := makeJob(t, root, PhaseQueued, name, files)

	chain := []Phase{PhaseDataReady, PhaseDocsReady, PhaseApplied, PhaseInterviewing}
	for _, p := range chain {
		var err error
		path, err = Move(path, root, p)
		require.NoError(t, err)
		assertOnlyIn(t, root, name, p)

		for rel, content := range files {
			data, err := os.ReadFile(filepath.Join(path, rel))
			require.NoError(t, err)
			assert.Equal(t, content, string(data), "content of %s after move to %s", rel, p)
		}
	}
}

func TestMoveIdempotent(t *testing.T) {
	root := t.TempDir()
	name := "Acme.SRE.20240101-090000.id1"
	path := makeJob(t, root, PhaseQueued, name, map[string]string{MetadataFile: "id = \"id1\"\n"})

	moved, err := Move(path, root, PhaseApplied)
	require.NoError(t, err)

	// Same target again: no-op, same path back.
	again, err := Move(moved, root, PhaseApplied)
	require.NoError(t, err)
	assert.Equal(t, moved, again)

	// Repeat with the stale source path: the folder is already at its
	// destination, so the call reports it and mutates nothing.
	again, err = Move(path, root, PhaseApplied)
	require.NoError(t, err)
	assert.Equal(t, moved, again)
	assertOnlyIn(t, root, name, PhaseApplied)
}

func TestMoveUnknownPhase(t *testing.T) {
	root := t.TempDir()
	name := "Acme.SRE.20240101-090000.id1"
	path := makeJob(t, root, PhaseQueued, name, map[string]string{MetadataFile: "id = \"id1\"\n"})

	_, err := Move(path, root, Phase("nirvana"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownPhase))
	assertOnlyIn(t, root, name, PhaseQueued)
}

func TestMoveMissingSource(t *testing.T) {
	root := t.TempDir()
	_, err := Move(filepath.Join(root, "00.queued", "ghost"), root, PhaseApplied)
	require.Error(t, err)
}

func TestMoveConflictSourceWins(t *testing.T) {
	root := t.TempDir()
	name := "Acme.SRE.20240101-090000.id1"
	src := makeJob(t, root, PhaseQueued, name, map[string]string{
		MetadataFile: "id = \"id1\"\n",
		"a.txt":      "a",
		"b.txt":      "b",
	})
	makeJob(t, root, PhaseApplied, name, map[string]string{
		"stale.txt": "old",
	})

	dst, err := Move(src, root, PhaseApplied)
	require.NoError(t, err)
	assertOnlyIn(t, root, name, PhaseApplied)

	// Source had strictly more files: its contents replaced the destination.
	_, err = os.Stat(filepath.Join(dst, "a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dst, "stale.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMoveConflictDestinationWins(t *testing.T) {
	root := t.TempDir()
	name := "Acme.SRE.20240101-090000.id1"
	src := makeJob(t, root, PhaseQueued, name, map[string]string{
		"only.txt": "thin",
	})
	makeJob(t, root, PhaseApplied, name, map[string]string{
		MetadataFile: "id = \"id1\"\n",
		"full.txt":   "complete",
	})

	dst, err := Move(src, root, PhaseApplied)
	require.NoError(t, err)
	assertOnlyIn(t, root, name, PhaseApplied)

	// Destination had at least as many files: it survived untouched.
	data, err := os.ReadFile(filepath.Join(dst, "full.txt"))
	require.NoError(t, err)
	assert.Equal(t, "complete", string(data))
	_, err = os.Stat(filepath.Join(dst, "only.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMoveMissingMetadataIsNonFatal(t *testing.T) {
	root := t.TempDir()
	name := "Acme.SRE.20240101-090000.id1"
	path := makeJob(t, root, PhaseQueued, name, map[string]string{"notes.md": "n"})

	dst, err := Move(path, root, PhaseApplied)
	require.NoError(t, err)
	assertOnlyIn(t, root, name, PhaseApplied)
	_, err = os.Stat(filepath.Join(dst, MetadataFile))
	assert.True(t, os.IsNotExist(err))
}
