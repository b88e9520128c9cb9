package interfaces

import (
	"context"

	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
)

// ResultRepository stores runs and per-tutor results
type ResultRepository interface {
	PutRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id types.RunID) (*model.Run, error)
	PutTutorResult(ctx context.Context, result *model.TutorResult) error
	ListTutorResults(ctx context.Context, id types.RunID) ([]*model.TutorResult, error)
	Close() error
}
