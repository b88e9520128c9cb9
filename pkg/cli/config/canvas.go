package config

import (
	"log/slog"

	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

const (
	flagConfig           = "config"
	flagCanvasURL        = "canvas-url"
	flagOverdueUnit      = "overdue-unit"
	flagOverdueThreshold = "overdue-threshold"
	flagLoadTimeout      = "load-timeout"
)

// Canvas holds the checker settings. Values come from flags, then the
// optional YAML file, then built-in defaults.
type Canvas struct {
	ConfigPath       string
	BaseURL          string
	OverdueUnit      string
	OverdueThreshold float64
	LoadTimeout      int
}

// Flags returns CLI flags for Canvas configuration
func (x *Canvas) Flags() []cli.Flag {
	defaults := model.DefaultSettings()

	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagConfig,
			Aliases:     []string{"c"},
			Usage:       "YAML file with checker settings",
			Category:    "Canvas",
			Sources:     cli.EnvVars("DASHCHECK_CONFIG"),
			Destination: &x.ConfigPath,
		},
		&cli.StringFlag{
			Name:        flagCanvasURL,
			Usage:       "Canvas base URL",
			Category:    "Canvas",
			Value:       defaults.CanvasBaseURL,
			Sources:     cli.EnvVars("DASHCHECK_CANVAS_URL"),
			Destination: &x.BaseURL,
		},
		&cli.StringFlag{
			Name:        flagOverdueUnit,
			Usage:       "Unit of the overdue threshold (hours, calendar-days)",
			Category:    "Canvas",
			Value:       defaults.OverdueUnit.String(),
			Sources:     cli.EnvVars("DASHCHECK_OVERDUE_UNIT"),
			Destination: &x.OverdueUnit,
		},
		&cli.FloatFlag{
			Name:        flagOverdueThreshold,
			Usage:       "Submissions older than this are overdue",
			Category:    "Canvas",
			Value:       defaults.OverdueThreshold,
			Sources:     cli.EnvVars("DASHCHECK_OVERDUE_THRESHOLD"),
			Destination: &x.OverdueThreshold,
		},
		&cli.IntFlag{
			Name:        flagLoadTimeout,
			Usage:       "Seconds to wait for a page element",
			Category:    "Canvas",
			Value:       defaults.LoadTimeoutSeconds,
			Sources:     cli.EnvVars("DASHCHECK_LOAD_TIMEOUT"),
			Destination: &x.LoadTimeout,
		},
	}
}

// Settings resolves the effective settings. isSet reports whether a flag
// was given on the command line or through its environment variable.
func (x *Canvas) Settings(isSet func(name string) bool) (*model.Settings, error) {
	settings := model.DefaultSettings()
	if x.ConfigPath != "" {
		loaded, err := model.LoadSettingsFromFile(x.ConfigPath)
		if err != nil {
			return nil, err
		}
		settings = *loaded
	}

	if isSet(flagCanvasURL) || x.ConfigPath == "" {
		settings.CanvasBaseURL = x.BaseURL
	}
	if isSet(flagOverdueUnit) || x.ConfigPath == "" {
		settings.OverdueUnit = types.OverdueUnit(x.OverdueUnit)
	}
	if isSet(flagOverdueThreshold) || x.ConfigPath == "" {
		settings.OverdueThreshold = x.OverdueThreshold
	}
	if isSet(flagLoadTimeout) || x.ConfigPath == "" {
		settings.LoadTimeoutSeconds = x.LoadTimeout
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// LogValue returns structured log value
func (x Canvas) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", x.ConfigPath),
		slog.String("base_url", x.BaseURL),
		slog.String("overdue_unit", x.OverdueUnit),
		slog.Float64("overdue_threshold", x.OverdueThreshold),
		slog.Int("load_timeout", x.LoadTimeout),
	)
}
