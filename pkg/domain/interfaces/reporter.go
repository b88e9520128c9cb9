package interfaces

import (
	"context"
	"log/slog"

	"github.com/coffeepanda/dashcheck/pkg/domain/types"
)

// Reporter receives everything a run writes out: the running log, the
// per-tutor summary lines and the location of screenshots. Log derives the
// slog level from the category; LogAt sets it explicitly.
type Reporter interface {
	Log(ctx context.Context, category, message string)
	LogAt(ctx context.Context, level slog.Level, category, message string)
	Emit(ctx context.Context, name types.TutorName, text string)
	ScreenshotPath(name types.TutorName, number int) string
}
