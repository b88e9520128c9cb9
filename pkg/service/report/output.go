package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DirLayout names the per-run directory after its start minute
	DirLayout = "2006-01-02_15-04"

	// TimestampLayout is used for every bot.log line
	TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

	LogFileName     = "bot.log"
	SummaryFileName = "output.txt"
	ScreenshotDir   = "overdue"
)

// Output owns the files written by one run: the running log, the summary
// and the screenshot directory. It is opened once and closed at the end.
type Output struct {
	dir   string
	clock clock.Clock

	mu      sync.Mutex
	log     io.WriteCloser
	summary *os.File
}

var _ interfaces.Reporter = (*Output)(nil)

// Open creates <root>/<YYYY-MM-DD_HH-MM>. A directory from the same minute
// is removed first.
func Open(root string, clk clock.Clock) (*Output, error) {
	dir := filepath.Join(root, clk.Now().Format(DirLayout))

	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			return nil, goerr.Wrap(err, "failed to remove previous output directory",
				goerr.V("dir", dir))
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, ScreenshotDir), 0o755); err != nil {
		return nil, goerr.Wrap(err, "could not create output directory",
			goerr.V("dir", dir))
	}

	summary, err := os.OpenFile(filepath.Join(dir, SummaryFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, goerr.Wrap(err, "could not create output files",
			goerr.V("dir", dir))
	}

	return &Output{
		dir:   dir,
		clock: clk,
		log: &lumberjack.Logger{
			Filename: filepath.Join(dir, LogFileName),
			MaxSize:  100, // megabytes
		},
		summary: summary,
	}, nil
}

// Dir returns the run directory
func (o *Output) Dir() string {
	return o.dir
}

// Log appends "<category> - <timestamp>: <message>" to bot.log and mirrors
// the message to the context logger
func (o *Output) Log(ctx context.Context, category, message string) {
	o.LogAt(ctx, levelOf(category), category, message)
}

// LogAt is Log with an explicit level, for lines whose category is a tutor
// name
func (o *Output) LogAt(ctx context.Context, level slog.Level, category, message string) {
	line := fmt.Sprintf("%s - %s: %s\n", category, o.clock.Now().Format(TimestampLayout), message)

	o.mu.Lock()
	_, err := io.WriteString(o.log, line)
	o.mu.Unlock()

	logger := ctxlog.From(ctx)
	if err != nil {
		logger.Error("failed to write run log", "error", err)
	}
	logger.Log(ctx, level, message, slog.String("category", category))
}

// Emit appends "<name> - <text>" to output.txt
func (o *Output) Emit(ctx context.Context, name types.TutorName, text string) {
	line := fmt.Sprintf("%s - %s\n", name, text)

	o.mu.Lock()
	_, err := o.summary.WriteString(line)
	o.mu.Unlock()

	logger := ctxlog.From(ctx)
	if err != nil {
		logger.Error("failed to write summary", "error", err)
	}
	logger.Info(text, slog.String("tutor", name.String()))
}

// ScreenshotPath returns where the number-th overdue capture of a tutor goes
func (o *Output) ScreenshotPath(name types.TutorName, number int) string {
	file := fmt.Sprintf("%s%d.png", safeFileName(name.String()), number)
	return filepath.Join(o.dir, ScreenshotDir, file)
}

// Close flushes and closes both files
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	logErr := o.log.Close()
	sumErr := o.summary.Close()
	if logErr != nil {
		return goerr.Wrap(logErr, "failed to close run log", goerr.V("dir", o.dir))
	}
	if sumErr != nil {
		return goerr.Wrap(sumErr, "failed to close summary", goerr.V("dir", o.dir))
	}
	return nil
}

func levelOf(category string) slog.Level {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "fatal"), strings.Contains(c, "error"):
		return slog.LevelError
	case strings.Contains(c, "warning"):
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func safeFileName(name string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}
