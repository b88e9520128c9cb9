package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/coffeepanda/dashcheck/pkg/cli/config"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	version = "0.1.0"

	envFileVar     = "DASHCHECK_ENV_FILE"
	defaultEnvFile = ".env"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := loadEnvFile(); err != nil {
		return err
	}

	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "dashcheck",
		Usage:   "Find overdue marking on Canvas tutor dashboards",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdCheck(),
			cmdShow(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

// loadEnvFile exports the variables of a dotenv file without overriding the
// environment. A missing default file is ignored; a missing file named by
// DASHCHECK_ENV_FILE is an error.
func loadEnvFile() error {
	path, explicit := os.LookupEnv(envFileVar)
	if !explicit || path == "" {
		path, explicit = defaultEnvFile, false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
