package report_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/service/report"
	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	return string(data)
}

func TestOpen(t *testing.T) {
	root := t.TempDir()
	clk := clock.NewFake(time.Date(2024, time.March, 10, 14, 5, 33, 0, time.UTC))

	out, err := report.Open(root, clk)
	gt.NoError(t, err).Required()
	defer out.Close()

	gt.Equal(t, out.Dir(), filepath.Join(root, "2024-03-10_14-05"))

	info, err := os.Stat(filepath.Join(out.Dir(), report.ScreenshotDir))
	gt.NoError(t, err).Required()
	gt.True(t, info.IsDir())
}

func TestOpen_RecreatesSameMinute(t *testing.T) {
	root := t.TempDir()
	clk := clock.NewFake(time.Date(2024, time.March, 10, 14, 5, 0, 0, time.UTC))

	first, err := report.Open(root, clk)
	gt.NoError(t, err).Required()
	first.Emit(context.Background(), "Alice", "Assignments overdue: 0")
	gt.NoError(t, os.WriteFile(first.ScreenshotPath("Alice", 1), []byte("png"), 0o644))
	gt.NoError(t, first.Close())

	clk.Advance(20 * time.Second)
	second, err := report.Open(root, clk)
	gt.NoError(t, err).Required()
	defer second.Close()

	gt.Equal(t, second.Dir(), first.Dir())
	gt.Equal(t, readFile(t, filepath.Join(second.Dir(), report.SummaryFileName)), "")
	_, err = os.Stat(second.ScreenshotPath("Alice", 1))
	gt.True(t, os.IsNotExist(err))
}

func TestOutput_Log(t *testing.T) {
	root := t.TempDir()
	clk := clock.NewFake(time.Date(2024, time.March, 10, 14, 5, 0, 0, time.UTC))

	out, err := report.Open(root, clk)
	gt.NoError(t, err).Required()

	ctx := context.Background()
	out.Log(ctx, "Status", "Dashboard Checker started")
	clk.Advance(1500 * time.Millisecond)
	out.Log(ctx, "Alice", "COULD NOT CHECK ASSIGNMENT")
	gt.NoError(t, out.Close())

	content := readFile(t, filepath.Join(out.Dir(), report.LogFileName))
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	gt.Equal(t, lines, []string{
		"Status - 2024-03-10T14:05:00.000000Z: Dashboard Checker started",
		"Alice - 2024-03-10T14:05:01.500000Z: COULD NOT CHECK ASSIGNMENT",
	})
}

func TestOutput_Emit(t *testing.T) {
	out, err := report.Open(t.TempDir(), clock.NewFake(time.Now()))
	gt.NoError(t, err).Required()

	ctx := context.Background()
	out.Emit(ctx, "Alice", "Assignments overdue: 0")
	out.Emit(ctx, "Bob", "Assignments overdue: 1")
	gt.NoError(t, out.Close())

	gt.Equal(t, readFile(t, filepath.Join(out.Dir(), report.SummaryFileName)),
		"Alice - Assignments overdue: 0\nBob - Assignments overdue: 1\n")
}

func TestOutput_ScreenshotPath(t *testing.T) {
	out, err := report.Open(t.TempDir(), clock.NewFake(time.Now()))
	gt.NoError(t, err).Required()
	defer out.Close()

	gt.Equal(t, out.ScreenshotPath("Bob", 1), filepath.Join(out.Dir(), "overdue", "Bob1.png"))
	gt.Equal(t, out.ScreenshotPath("A/B", 12), filepath.Join(out.Dir(), "overdue", "A_B12.png"))
}

func TestOutput_LogLevels(t *testing.T) {
	clk := clock.NewFake(time.Date(2024, time.March, 10, 14, 5, 0, 0, time.UTC))
	out, err := report.Open(t.TempDir(), clk)
	gt.NoError(t, err).Required()
	defer out.Close()

	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	out.LogAt(ctx, slog.LevelError, "Alice", "Error checking assignment: boom")
	gt.S(t, buf.String()).Contains(`"level":"ERROR"`)
	gt.S(t, buf.String()).Contains(`"category":"Alice"`)

	buf.Reset()
	out.Log(ctx, "Warning", "Could not calculate time since submission")
	gt.S(t, buf.String()).Contains(`"level":"WARN"`)

	buf.Reset()
	out.Log(ctx, "Alice", "Acting as user Alice")
	gt.S(t, buf.String()).Contains(`"level":"INFO"`)

	log := readFile(t, filepath.Join(out.Dir(), report.LogFileName))
	gt.S(t, log).Contains("Alice - 2024-03-10T14:05:00.000000Z: Error checking assignment: boom\n")
}
