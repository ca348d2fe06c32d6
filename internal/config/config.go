// Package config loads epsync configuration from YAML files and carries the
// per-run command-line inputs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file location checked when --config is not given
const DefaultConfigPath = ".epsync/config.yaml"

// RunConfig carries the four required sync inputs.
// Immutable once parsed from the command line.
type RunConfig struct {
	// Root is the filesystem root directory; remote paths are relative to it
	Root string

	// Target is the subdirectory under Root to scan for episode files
	Target string

	// Repository is the remote repository name
	Repository string

	// Owner is the remote account name used for repository lookup
	Owner string
}

// JournalConfig configures the local sync journal.
type JournalConfig struct {
	// Enabled toggles journal recording
	Enabled bool `yaml:"enabled"`

	// DBPath is the journal database location, resolved against Root when relative
	DBPath string `yaml:"db_path"`
}

// Config represents epsync configuration options.
type Config struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// CommitMessageTemplate is the fmt template for upload commit messages.
	// It must contain exactly one %s, substituted with the relative path.
	CommitMessageTemplate string `yaml:"commit_message_template"`

	// UploadOnCheckError controls what happens when a remote existence check
	// fails for a reason other than not-found. True (the default) treats the
	// file as absent and uploads it; false aborts the run.
	UploadOnCheckError bool `yaml:"upload_on_check_error"`

	// LockPath is the run lock file, resolved against Root when relative
	LockPath string `yaml:"lock_path"`

	// Journal contains sync journal configuration
	Journal JournalConfig `yaml:"journal"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:              "info",
		CommitMessageTemplate: "Adding %s",
		UploadOnCheckError:    true,
		LockPath:              ".epsync/epsync.lock",
		Journal: JournalConfig{
			Enabled: true,
			DBPath:  ".epsync/journal.db",
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields distinguish "unset" from zero values so the file only
	// overrides keys it actually mentions.
	type yamlJournal struct {
		Enabled *bool   `yaml:"enabled"`
		DBPath  *string `yaml:"db_path"`
	}
	type yamlConfig struct {
		LogLevel              *string     `yaml:"log_level"`
		CommitMessageTemplate *string     `yaml:"commit_message_template"`
		UploadOnCheckError    *bool       `yaml:"upload_on_check_error"`
		LockPath              *string     `yaml:"lock_path"`
		Journal               yamlJournal `yaml:"journal"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != nil {
		cfg.LogLevel = *yamlCfg.LogLevel
	}
	if yamlCfg.CommitMessageTemplate != nil {
		cfg.CommitMessageTemplate = *yamlCfg.CommitMessageTemplate
	}
	if yamlCfg.UploadOnCheckError != nil {
		cfg.UploadOnCheckError = *yamlCfg.UploadOnCheckError
	}
	if yamlCfg.LockPath != nil {
		cfg.LockPath = *yamlCfg.LockPath
	}
	if yamlCfg.Journal.Enabled != nil {
		cfg.Journal.Enabled = *yamlCfg.Journal.Enabled
	}
	if yamlCfg.Journal.DBPath != nil {
		cfg.Journal.DBPath = *yamlCfg.Journal.DBPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}

	if c.CommitMessageTemplate == "" {
		return fmt.Errorf("commit_message_template must not be empty")
	}

	return nil
}

// ResolvePath resolves a configured path against the run root.
// Absolute paths are returned unchanged.
func ResolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
