package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/coffeepanda/dashcheck/pkg/cli/config"
	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdShow() *cli.Command {
	var (
		firestoreCfg config.Firestore
		runID        string
	)

	flags := joinFlags(
		firestoreCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "run-id",
				Usage:       "ID of the stored run to show",
				Required:    true,
				Destination: &runID,
			},
		},
	)

	return &cli.Command{
		Name:  "show",
		Usage: "Print the stored results of a previous run",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			id := types.RunID(runID)
			if err := id.Validate(); err != nil {
				return err
			}
			if !firestoreCfg.IsConfigured() {
				return goerr.New("show needs a Firestore project, runs are not kept otherwise")
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			run, err := repo.GetRun(ctx, id)
			if err != nil {
				return err
			}
			results, err := repo.ListTutorResults(ctx, id)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			if w == nil {
				w = os.Stdout
			}
			return printRun(w, run, results)
		},
	}
}

func printRun(w io.Writer, run *model.Run, results []*model.TutorResult) error {
	policy := run.Settings.Policy()
	if _, err := fmt.Fprintf(w, "Run %s started %s (overdue after %g %s)\n",
		run.ID, run.StartedAt.Format("2006-01-02 15:04"), policy.Threshold, policy.Unit); err != nil {
		return goerr.Wrap(err, "failed to write run")
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s - %s\n", r.TutorName, describeResult(r)); err != nil {
			return goerr.Wrap(err, "failed to write result")
		}
	}
	return nil
}

func describeResult(r *model.TutorResult) string {
	switch r.Status {
	case types.TutorStatusNoItems:
		return "No Items on dashboard"
	case types.TutorStatusImpersonationFailed:
		return "Could not act as user"
	case types.TutorStatusDashboardFailed:
		return "Could not load dashboard"
	}

	text := fmt.Sprintf("Assignments overdue: %d", r.OverdueCount)
	if r.AverageHours != nil {
		text += fmt.Sprintf(", average hours since submission: %d", *r.AverageHours)
	}
	return text
}
