package poll

import (
	"context"
	"time"

	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/m-mizutani/goerr/v2"
)

// ErrTimeout is returned when every attempt came back unsatisfied
var ErrTimeout = goerr.New("poll timed out")

// Policy declares how often and how many times a condition is checked
type Policy struct {
	Interval    time.Duration
	MaxAttempts int
}

// PerSecond polls once a second for the given number of seconds
func PerSecond(seconds int) Policy {
	return Policy{Interval: time.Second, MaxAttempts: seconds}
}

// Func is one attempt. It returns done=true when the condition holds. A
// non-nil error stops polling immediately.
type Func func(ctx context.Context, attempt int) (done bool, err error)

// Until runs fn up to MaxAttempts times, sleeping Interval between attempts
func Until(ctx context.Context, c clock.Clock, p Policy, fn Func) error {
	if p.MaxAttempts <= 0 {
		return goerr.New("poll requires at least one attempt", goerr.V("max_attempts", p.MaxAttempts))
	}

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "poll cancelled", goerr.V("attempt", attempt))
		}

		done, err := fn(ctx, attempt)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if attempt < p.MaxAttempts {
			if err := c.Sleep(ctx, p.Interval); err != nil {
				return goerr.Wrap(err, "poll cancelled", goerr.V("attempt", attempt))
			}
		}
	}

	return goerr.Wrap(ErrTimeout, "condition not met",
		goerr.V("attempts", p.MaxAttempts),
		goerr.V("interval", p.Interval.String()))
}
