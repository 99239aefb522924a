package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/okseby/huntr/errors"
	"github.com/okseby/huntr/flow"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the huntr configuration using Viper. The result is cached;
// use Reset to clear it (tests, reload callbacks).
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// ExecutorSettings translates the executor section into the flow package's
// configuration type.
func (c *Config) ExecutorSettings() flow.ExecutorConfig {
	return flow.ExecutorConfig{
		MaxRetries:      c.Executor.MaxRetries,
		BaseDelay:       time.Duration(c.Executor.BackoffBaseMS) * time.Millisecond,
		EventsPerMinute: c.Executor.EventsPerMinute,
	}
}

// EventContext builds the shared event context from the jobs section.
func (c *Config) EventContext(dryRun bool) *flow.Context {
	return &flow.Context{
		JobsRoot:      c.Jobs.Root,
		ResumesRoot:   c.Jobs.ResumesRoot,
		DefaultResume: c.Jobs.DefaultResume,
		DryRun:        dryRun,
	}
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Set up environment variable binding
	v.SetEnvPrefix("HUNTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Merge config files in precedence order: user < project < env vars
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for huntr.toml by walking up the directory tree
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "huntr.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order
// (lowest to highest): user < project
func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	huntrDir := filepath.Join(homeDir, ".huntr")
	os.MkdirAll(huntrDir, DefaultDirPermissions)

	configPaths := []string{
		filepath.Join(huntrDir, "config.toml"),
	}
	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		v.MergeInConfig()
	}
}
