package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"phosweep/internal/domain"
)

// Config holds everything the pipeline needs. Precedence is CLI flags
// over PHOSWEEP_* environment variables over the optional yaml file
// over these defaults.
type Config struct {
	Mount        string `yaml:"mount"`
	MediaRoot    string `yaml:"media_root"`
	Before       string `yaml:"before"`
	DryRun       bool   `yaml:"dry_run"`
	Verbose      bool   `yaml:"verbose"`
	PreviewLimit int    `yaml:"preview_limit"`
	HEICPreviews bool   `yaml:"heic_previews"`
}

func Default() Config {
	return Config{
		MediaRoot:    "DCIM",
		DryRun:       true,
		PreviewLimit: 100,
	}
}

// Load reads a yaml config file on top of the defaults. An empty path
// returns the defaults; a named file must exist and parse.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays set PHOSWEEP_* environment variables onto the
// loaded values. Env beats the file; explicit flags are applied after
// this and beat both.
func (c *Config) ApplyEnv() {
	if v := envOrEmpty("PHOSWEEP_MOUNT"); v != "" {
		c.Mount = v
	}
	if v := envOrEmpty("PHOSWEEP_BEFORE"); v != "" {
		c.Before = v
	}
	if envTruthy("PHOSWEEP_VERBOSE") {
		c.Verbose = true
	}
}

func (c Config) Validate() error {
	if c.Mount == "" {
		return errors.New("device mount path is required")
	}
	if c.Before == "" {
		return errors.New("cutoff date is required, use --before YYYY-MM-DD")
	}
	if _, err := c.Cutoff(); err != nil {
		return err
	}
	return nil
}

// Cutoff parses the Before field into a calendar date.
func (c Config) Cutoff() (domain.Cutoff, error) {
	parsed, err := time.ParseInLocation("2006-01-02", c.Before, time.Local)
	if err != nil {
		return domain.Cutoff{}, errors.New("invalid cutoff date, use YYYY-MM-DD")
	}
	return domain.CutoffFromTime(parsed), nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
