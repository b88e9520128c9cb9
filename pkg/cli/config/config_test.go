package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/cli/config"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func defaultCanvas() config.Canvas {
	return config.Canvas{
		BaseURL:          "https://wolseyhalloxford.instructure.com",
		OverdueUnit:      "calendar-days",
		OverdueThreshold: 5,
		LoadTimeout:      10,
	}
}

func noneSet(string) bool { return false }

func TestCanvasSettingsFromFlags(t *testing.T) {
	c := defaultCanvas()
	c.OverdueUnit = "hours"
	c.OverdueThreshold = 48

	s, err := c.Settings(noneSet)
	gt.NoError(t, err).Required()
	gt.Equal(t, s.OverdueUnit, types.OverdueUnitHours)
	gt.Equal(t, s.OverdueThreshold, 48.0)
	gt.Equal(t, s.LoadTimeoutSeconds, 10)
}

func TestCanvasSettingsFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashcheck.yaml")
	gt.NoError(t, os.WriteFile(path, []byte("overdue_unit: hours\noverdue_threshold: 72\nload_timeout_seconds: 20\n"), 0o644)).Required()

	c := defaultCanvas()
	c.ConfigPath = path
	c.LoadTimeout = 30

	s, err := c.Settings(func(name string) bool { return name == "load-timeout" })
	gt.NoError(t, err).Required()
	gt.Equal(t, s.OverdueUnit, types.OverdueUnitHours)
	gt.Equal(t, s.OverdueThreshold, 72.0)
	gt.Equal(t, s.LoadTimeoutSeconds, 30)
	gt.Equal(t, s.CanvasBaseURL, "https://wolseyhalloxford.instructure.com")
}

func TestCanvasSettingsInvalid(t *testing.T) {
	c := defaultCanvas()
	c.OverdueUnit = "weeks"

	_, err := c.Settings(noneSet)
	gt.Error(t, err)
}

func TestLoggerConfigure(t *testing.T) {
	l := config.Logger{Level: "debug", Format: "json"}
	logger, err := l.Configure()
	gt.NoError(t, err)
	gt.V(t, logger).NotNil()

	l.Format = "xml"
	_, err = l.Configure()
	gt.Error(t, err)
}

func TestFirestoreFallsBackToMemory(t *testing.T) {
	f := config.Firestore{}
	gt.False(t, f.IsConfigured())

	repo, err := f.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer repo.Close()
	gt.V(t, repo).NotNil()
	gt.S(t, f.LogValue().String()).Contains("store=memory")
}

func TestSlackRequiresTokenAndChannel(t *testing.T) {
	s := config.Slack{OAuthToken: "xoxb-test"}
	gt.False(t, s.IsConfigured())
	gt.V(t, s.Configure(context.Background())).NotNil()

	s.ChannelID = "C0123"
	gt.True(t, s.IsConfigured())
}

func TestBrowserOptions(t *testing.T) {
	b := config.Browser{Headless: false, Bin: "/usr/bin/chromium"}
	opts := b.Options(15 * time.Second)
	gt.False(t, opts.Headless)
	gt.Equal(t, opts.Bin, "/usr/bin/chromium")
	gt.Equal(t, opts.Width, 1920)
}
