package apperr

import (
	"context"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
)

// FatalCategory is the run log category of errors that end the run
const FatalCategory = "Fatal Error"

// Handle logs an error with its goerr values attached
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}

// HandleFatal records an error that stops the run. reporter may be nil when
// the failure happened before the output directory existed.
func HandleFatal(ctx context.Context, reporter interfaces.Reporter, err error) {
	if reporter == nil {
		Handle(ctx, err)
		return
	}
	reporter.Log(ctx, FatalCategory, err.Error())
	ctxlog.From(ctx).Debug("fatal error details", "error", err)
}
