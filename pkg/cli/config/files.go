package config

import (
	"log/slog"

	"github.com/coffeepanda/dashcheck/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Files holds the input and output locations of a run
type Files struct {
	Roster     string
	Account    string
	OutputRoot string
}

// Flags returns CLI flags for Files configuration
func (x *Files) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "roster",
			Usage:       "JSON file mapping tutor names to Canvas account IDs",
			Category:    "Files",
			Value:       "tutors.json",
			Sources:     cli.EnvVars("DASHCHECK_ROSTER"),
			Destination: &x.Roster,
		},
		&cli.StringFlag{
			Name:        "account",
			Usage:       "Two-line file holding the admin username and password",
			Category:    "Files",
			Value:       "account.txt",
			Sources:     cli.EnvVars("DASHCHECK_ACCOUNT"),
			Destination: &x.Account,
		},
		&cli.StringFlag{
			Name:        "output",
			Usage:       "Directory the per-run output directories are created in",
			Category:    "Files",
			Value:       "output",
			Sources:     cli.EnvVars("DASHCHECK_OUTPUT"),
			Destination: &x.OutputRoot,
		},
	}
}

// LoadRoster reads the tutor roster
func (x *Files) LoadRoster() (*model.Roster, error) {
	return model.LoadRosterFromFile(x.Roster)
}

// LoadCredentials reads the admin account
func (x *Files) LoadCredentials() (*model.Credentials, error) {
	return model.LoadCredentialsFromFile(x.Account)
}

// LogValue returns structured log value
func (x Files) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("roster", x.Roster),
		slog.String("account", x.Account),
		slog.String("output", x.OutputRoot),
	)
}
