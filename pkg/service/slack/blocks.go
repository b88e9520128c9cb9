package slack

import (
	"fmt"
	"strings"

	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/slack-go/slack"
)

const runTimeLayout = "2006-01-02 15:04"

// TotalOverdue sums the overdue submissions of all results
func TotalOverdue(results []*model.TutorResult) int {
	total := 0
	for _, r := range results {
		total += r.OverdueCount
	}
	return total
}

// FormatTutorLine renders one result the way the summary file does
func FormatTutorLine(r *model.TutorResult) string {
	switch r.Status {
	case types.TutorStatusNoItems:
		return fmt.Sprintf("*%s*: No Items on dashboard", r.TutorName)
	case types.TutorStatusImpersonationFailed:
		return fmt.Sprintf("*%s*: could not act as user", r.TutorName)
	case types.TutorStatusDashboardFailed:
		return fmt.Sprintf("*%s*: dashboard did not load", r.TutorName)
	}

	line := fmt.Sprintf("*%s*: Assignments overdue: %d", r.TutorName, r.OverdueCount)
	if r.AverageHours != nil {
		line += fmt.Sprintf(", average hours since submission: %d", *r.AverageHours)
	}
	return line
}

// BuildRunBlocks creates the message announcing a finished run
func BuildRunBlocks(run *model.Run, results []*model.TutorResult) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf("Overdue check %s", run.StartedAt.Format(runTimeLayout)), false, false),
	)

	policy := run.Settings.Policy()
	detail := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Run `%s` · overdue after %g %s", run.ID, policy.Threshold, policy.Unit), false, false),
	)

	blocks := []slack.Block{header, detail, slack.NewDividerBlock()}

	if len(results) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "No tutors were checked", false, false), nil, nil))
	} else {
		lines := make([]string, 0, len(results))
		for _, r := range results {
			lines = append(lines, FormatTutorLine(r))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false), nil, nil))
	}

	blocks = append(blocks, slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Total overdue:* %d", TotalOverdue(results)), false, false), nil, nil))

	return blocks
}
