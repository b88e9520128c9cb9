package model

import (
	"os"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCanvasBaseURL      = "https://wolseyhalloxford.instructure.com"
	DefaultOverdueThreshold   = 5
	DefaultLoadTimeoutSeconds = 10
)

// Settings is the checker configuration surface
type Settings struct {
	CanvasBaseURL      string            `yaml:"canvas_base_url"`
	OverdueUnit        types.OverdueUnit `yaml:"overdue_unit"`
	OverdueThreshold   float64           `yaml:"overdue_threshold"`
	LoadTimeoutSeconds int               `yaml:"load_timeout_seconds"`
}

// DefaultSettings returns the built-in configuration
func DefaultSettings() Settings {
	return Settings{
		CanvasBaseURL:      DefaultCanvasBaseURL,
		OverdueUnit:        types.OverdueUnitCalendarDays,
		OverdueThreshold:   DefaultOverdueThreshold,
		LoadTimeoutSeconds: DefaultLoadTimeoutSeconds,
	}
}

// Validate validates the settings
func (s *Settings) Validate() error {
	if s.CanvasBaseURL == "" {
		return goerr.New("canvas base URL is required")
	}
	if err := s.Policy().Validate(); err != nil {
		return err
	}
	if s.LoadTimeoutSeconds <= 0 {
		return goerr.New("load timeout must be a positive number of seconds",
			goerr.V("load_timeout_seconds", s.LoadTimeoutSeconds))
	}
	return nil
}

// Policy returns the overdue policy described by the settings
func (s *Settings) Policy() OverduePolicy {
	return OverduePolicy{Unit: s.OverdueUnit, Threshold: s.OverdueThreshold}
}

// LoadTimeout returns the bounded wait for one page interaction
func (s *Settings) LoadTimeout() time.Duration {
	return time.Duration(s.LoadTimeoutSeconds) * time.Second
}

// LoadSettingsFromFile reads settings from a YAML file. Fields missing from
// the file keep their default values.
func LoadSettingsFromFile(path string) (*Settings, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}

	if err := settings.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid configuration",
			goerr.V("path", path))
	}

	return &settings, nil
}
