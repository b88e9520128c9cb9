package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/service/browser"
	"github.com/urfave/cli/v3"
)

// Browser holds browser launch configuration
type Browser struct {
	Headless bool
	Bin      string
}

// Flags returns CLI flags for Browser configuration
func (x *Browser) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "headless",
			Usage:       "Run the browser without a window",
			Category:    "Browser",
			Value:       true,
			Sources:     cli.EnvVars("DASHCHECK_HEADLESS"),
			Destination: &x.Headless,
		},
		&cli.StringFlag{
			Name:        "browser-bin",
			Usage:       "Path to a Chromium binary. Rod downloads one when empty",
			Category:    "Browser",
			Sources:     cli.EnvVars("DASHCHECK_BROWSER_BIN"),
			Destination: &x.Bin,
		},
	}
}

// Options returns launch options with the given element timeout
func (x *Browser) Options(timeout time.Duration) browser.Options {
	opts := browser.DefaultOptions()
	opts.Headless = x.Headless
	opts.Bin = x.Bin
	opts.Timeout = timeout
	return opts
}

// Configure launches the browser
func (x *Browser) Configure(ctx context.Context, timeout time.Duration) (*browser.Rod, error) {
	return browser.Launch(ctx, x.Options(timeout))
}

// LogValue returns structured log value
func (x Browser) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("headless", x.Headless),
		slog.String("bin", x.Bin),
	)
}
