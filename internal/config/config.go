// Package config loads permitflow settings.
//
// Resolution order: built-in defaults, then .permitflow/config.yaml in the
// working directory, then environment variables (a .env file is loaded first
// when present). Later sources override earlier ones.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/example/permitflow/internal/core/lookup"
)

const (
	dirName   = ".permitflow"
	fileName  = "config.yaml"
	envPrefix = "PERMITFLOW_"

	clockLayout = "15:04"
)

// Config represents the permitflow configuration.
type Config struct {
	DBPath   string   `yaml:"db_path"`
	LogLevel string   `yaml:"log_level"`
	Workflow Workflow `yaml:"workflow"`
	Matching Matching `yaml:"matching"`
	Mail     Mail     `yaml:"mail"`
}

// Workflow holds the labels and thresholds the event handlers key on.
type Workflow struct {
	EstimatedValueField string `yaml:"estimated_value_field"`
	LatestSubValueField string `yaml:"latest_sub_value_field"`

	OwnerContactType     string `yaml:"owner_contact_type"`
	ApplicantContactType string `yaml:"applicant_contact_type"`

	FailResult               string `yaml:"fail_result"`
	ReinspectionBusinessDays int    `yaml:"reinspection_business_days"`
	ReinspectionTime         string `yaml:"reinspection_time"` // HH:MM, 24h

	InitialStatus       string `yaml:"initial_status"`
	SubmittedStatus     string `yaml:"submitted_status"`
	PendingStatus       string `yaml:"pending_status"`
	ExpiredStatus       string `yaml:"expired_status"`
	ExpiryThresholdDays int    `yaml:"expiry_threshold_days"`

	// SystemActor is recorded as the actor of batch changes.
	SystemActor string `yaml:"system_actor"`
}

// Matching selects case sensitivity per lookup site ("exact" or "fold").
type Matching struct {
	FieldLabels  string `yaml:"field_labels"`
	ContactTypes string `yaml:"contact_types"`
}

// Mail holds outbound email settings.
type Mail struct {
	From string `yaml:"from"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DBPath:   defaultDBPath(),
		LogLevel: "info",
		Workflow: Workflow{
			EstimatedValueField:      "Estimated Value",
			LatestSubValueField:      "Latest Sub-Value",
			OwnerContactType:         "Owner",
			ApplicantContactType:     "Applicant",
			FailResult:               "Fail",
			ReinspectionBusinessDays: 3,
			ReinspectionTime:         "09:00",
			InitialStatus:            "Received",
			SubmittedStatus:          "Submitted",
			PendingStatus:            "Pending Fee",
			ExpiredStatus:            "Expired",
			ExpiryThresholdDays:      30,
			SystemActor:              "System",
		},
		Matching: Matching{
			FieldLabels:  "exact",
			ContactTypes: "fold",
		},
		Mail: Mail{
			From: "no-reply@agency.gov",
		},
	}
}

// Load resolves the configuration for the given working directory.
// A missing config file or .env file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	loadEnv(dir)
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config.yaml into the .permitflow directory under dir.
func Save(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, dirName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", dirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, dirName, fileName)
}

// Validate rejects settings the handlers cannot run with.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("config: db_path is required")
	}
	if c.Workflow.ReinspectionBusinessDays < 0 {
		return fmt.Errorf("config: reinspection_business_days must be >= 0, got %d", c.Workflow.ReinspectionBusinessDays)
	}
	if c.Workflow.ExpiryThresholdDays < 0 {
		return fmt.Errorf("config: expiry_threshold_days must be >= 0, got %d", c.Workflow.ExpiryThresholdDays)
	}
	if _, _, err := ParseClock(c.Workflow.ReinspectionTime); err != nil {
		return fmt.Errorf("config: reinspection_time: %w", err)
	}
	if err := lookup.CheckMatchMode(c.Matching.FieldLabels); err != nil {
		return fmt.Errorf("config: matching.field_labels: %w", err)
	}
	if err := lookup.CheckMatchMode(c.Matching.ContactTypes); err != nil {
		return fmt.Errorf("config: matching.contact_types: %w", err)
	}
	return nil
}

// ParseClock splits an HH:MM (24h) time of day.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	return t.Hour(), t.Minute(), nil
}

func loadEnv(dir string) {
	paths := []string{filepath.Join(dir, ".env"), filepath.Join(dir, dirName, ".env")}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"DB_PATH":            &cfg.DBPath,
		"LOG_LEVEL":          &cfg.LogLevel,
		"MAIL_FROM":          &cfg.Mail.From,
		"MATCH_FIELD_LABELS": &cfg.Matching.FieldLabels,
		"MATCH_CONTACTS":     &cfg.Matching.ContactTypes,
		"PENDING_STATUS":     &cfg.Workflow.PendingStatus,
		"EXPIRED_STATUS":     &cfg.Workflow.ExpiredStatus,
		"REINSPECTION_TIME":  &cfg.Workflow.ReinspectionTime,
		"SYSTEM_ACTOR":       &cfg.Workflow.SystemActor,
	}
	for key, dst := range strs {
		if v := os.Getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"EXPIRY_DAYS":       &cfg.Workflow.ExpiryThresholdDays,
		"REINSPECTION_DAYS": &cfg.Workflow.ReinspectionBusinessDays,
	}
	for key, dst := range ints {
		v := os.Getenv(envPrefix + key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", envPrefix, key, err)
		}
		*dst = n
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(dirName, "permitflow.db")
	}
	return filepath.Join(home, dirName, "permitflow.db")
}
