package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "huntr.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[jobs]
root = "/data/jobs"
resumes_root = "/data/resumes"
default_resume = "base.pdf"

[executor]
max_retries = 5
backoff_base_ms = 100
events_per_minute = 30

[log]
json = true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/jobs", cfg.Jobs.Root)
	assert.Equal(t, "/data/resumes", cfg.Jobs.ResumesRoot)
	assert.Equal(t, "base.pdf", cfg.Jobs.DefaultResume)
	assert.Equal(t, 5, cfg.Executor.MaxRetries)
	assert.Equal(t, 100, cfg.Executor.BackoffBaseMS)
	assert.Equal(t, 30, cfg.Executor.EventsPerMinute)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFileDefaults(t *testing.T) {
	path := writeConfig(t, `
[jobs]
root = "/data/jobs"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/jobs", cfg.Jobs.Root)
	assert.Equal(t, 3, cfg.Executor.MaxRetries)
	assert.Equal(t, 2000, cfg.Executor.BackoffBaseMS)
	assert.Equal(t, 0, cfg.Executor.EventsPerMinute)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "resume.pdf", cfg.Jobs.DefaultResume)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestExecutorSettings(t *testing.T) {
	cfg := &Config{Executor: ExecutorConfig{MaxRetries: 2, BackoffBaseMS: 250, EventsPerMinute: 10}}
	settings := cfg.ExecutorSettings()

	assert.Equal(t, 2, settings.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, settings.BaseDelay)
	assert.Equal(t, 10, settings.EventsPerMinute)
}

func TestEventContext(t *testing.T) {
	cfg := &Config{Jobs: JobsConfig{Root: "/j", ResumesRoot: "/r", DefaultResume: "cv.pdf"}}

	ec := cfg.EventContext(true)
	assert.Equal(t, "/j", ec.JobsRoot)
	assert.Equal(t, "/r", ec.ResumesRoot)
	assert.Equal(t, "cv.pdf", ec.DefaultResume)
	assert.True(t, ec.DryRun)
}
