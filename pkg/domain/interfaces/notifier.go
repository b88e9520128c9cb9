package interfaces

import (
	"context"

	"github.com/coffeepanda/dashcheck/pkg/domain/model"
)

// Notifier announces a finished run
type Notifier interface {
	NotifyRun(ctx context.Context, run *model.Run, results []*model.TutorResult) error
}
