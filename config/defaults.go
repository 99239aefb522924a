package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDirPermissions for directories created by the config layer
const DefaultDirPermissions = 0o755

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	// Jobs tree defaults
	v.SetDefault("jobs.root", filepath.Join(home, "jobs"))
	v.SetDefault("jobs.resumes_root", filepath.Join(home, "jobs", "resumes"))
	v.SetDefault("jobs.default_resume", "resume.pdf")

	// Executor defaults
	v.SetDefault("executor.max_retries", 3)
	v.SetDefault("executor.backoff_base_ms", 2000) // Retry n waits 2s * 2^n
	v.SetDefault("executor.events_per_minute", 0)  // Unlimited unless configured

	// Log defaults
	v.SetDefault("log.json", false)
}
