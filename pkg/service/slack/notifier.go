package slack

import (
	"context"
	"fmt"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts run summaries to one channel
type Notifier struct {
	service   *Service
	channelID string
}

// NewNotifier creates a notifier posting to channelID
func NewNotifier(service *Service, channelID string) *Notifier {
	return &Notifier{service: service, channelID: channelID}
}

// NotifyRun implements interfaces.Notifier
func (n *Notifier) NotifyRun(ctx context.Context, run *model.Run, results []*model.TutorResult) error {
	fallback := fmt.Sprintf("Overdue check finished: %d overdue across %d tutors", TotalOverdue(results), len(results))

	_, ts, err := n.service.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(BuildRunBlocks(run, results)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify run", goerr.V("run_id", run.ID))
	}

	ctxlog.From(ctx).Info("posted run summary to Slack",
		"channel", n.channelID,
		"ts", ts,
		"run_id", run.ID)
	return nil
}

type nopNotifier struct{}

// NewNopNotifier returns a notifier that does nothing, used when Slack is
// not configured
func NewNopNotifier() interfaces.Notifier {
	return nopNotifier{}
}

func (nopNotifier) NotifyRun(ctx context.Context, run *model.Run, results []*model.TutorResult) error {
	ctxlog.From(ctx).Debug("slack not configured, skipping run notification", "run_id", run.ID)
	return nil
}
