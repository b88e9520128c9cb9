package config

import (
	"context"
	"log/slog"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	"github.com/coffeepanda/dashcheck/pkg/repository"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Firestore selects where run results are kept. Runs are stored under
// runs/<run id> with one tutors/<account id> document per checked tutor.
type Firestore struct {
	ProjectID  string
	DatabaseID string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project whose Firestore keeps run results for the show command. Results stay in memory when empty",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DASHCHECK_FIRESTORE_PROJECT"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database holding the runs collection",
			Category:    "Firestore",
			Value:       "(default)",
			Sources:     cli.EnvVars("DASHCHECK_FIRESTORE_DATABASE"),
			Destination: &f.DatabaseID,
		},
	}
}

// Configure creates the result repository. Without a project the results
// only live for the duration of the process.
func (f *Firestore) Configure(ctx context.Context) (interfaces.ResultRepository, error) {
	if !f.IsConfigured() {
		ctxlog.From(ctx).Warn("Using memory database instead of firestore. Results are discarded on exit")
		return repository.NewMemory(), nil
	}

	repo, err := repository.NewFirestore(ctx, f.ProjectID, f.DatabaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to init firestore",
			goerr.V("project", f.ProjectID),
			goerr.V("database", f.DatabaseID),
		)
	}
	return repo, nil
}

// IsConfigured reports whether results outlive the process
func (f *Firestore) IsConfigured() bool {
	return f.ProjectID != ""
}

// LogValue returns structured log value
func (f Firestore) LogValue() slog.Value {
	store := "memory"
	if f.IsConfigured() {
		store = "firestore"
	}
	return slog.GroupValue(
		slog.String("store", store),
		slog.String("project", f.ProjectID),
		slog.String("database", f.DatabaseID),
	)
}
