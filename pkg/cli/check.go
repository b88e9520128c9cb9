package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/coffeepanda/dashcheck/pkg/cli/config"
	"github.com/coffeepanda/dashcheck/pkg/service/canvas"
	"github.com/coffeepanda/dashcheck/pkg/service/report"
	"github.com/coffeepanda/dashcheck/pkg/usecase"
	"github.com/coffeepanda/dashcheck/pkg/utils/apperr"
	"github.com/coffeepanda/dashcheck/pkg/utils/clock"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		canvasCfg    config.Canvas
		browserCfg   config.Browser
		filesCfg     config.Files
		firestoreCfg config.Firestore
		slackCfg     config.Slack
	)

	flags := joinFlags(
		canvasCfg.Flags(),
		browserCfg.Flags(),
		filesCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "check",
		Usage: "Act as every tutor in the roster and report overdue submissions",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := ctxlog.From(ctx)
			logger.Info("Starting dashcheck",
				slog.Any("canvas", canvasCfg),
				slog.Any("browser", browserCfg),
				slog.Any("files", filesCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
			)

			settings, err := canvasCfg.Settings(c.IsSet)
			if err != nil {
				apperr.HandleFatal(ctx, nil, err)
				return err
			}

			clk := clock.New()
			out, err := report.Open(filesCfg.OutputRoot, clk)
			if err != nil {
				apperr.HandleFatal(ctx, nil, err)
				return err
			}
			defer func() {
				if err := out.Close(); err != nil {
					apperr.Handle(ctx, err)
				}
			}()

			out.Log(ctx, "Wolsey Hall Oxford", "Dashboard Checker - Version "+version)

			creds, err := filesCfg.LoadCredentials()
			if err != nil {
				apperr.HandleFatal(ctx, out, err)
				return err
			}
			roster, err := filesCfg.LoadRoster()
			if err != nil {
				apperr.HandleFatal(ctx, out, err)
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				apperr.HandleFatal(ctx, out, err)
				return err
			}
			defer repo.Close()

			notifier := slackCfg.Configure(ctx)

			b, err := browserCfg.Configure(ctx, settings.LoadTimeout())
			if err != nil {
				apperr.HandleFatal(ctx, out, err)
				return err
			}
			defer func() {
				if err := b.Close(); err != nil {
					apperr.Handle(ctx, err)
				}
			}()

			session := canvas.New(b, settings.CanvasBaseURL, clk, settings.LoadTimeoutSeconds)
			checker := usecase.NewChecker(session, out, repo, notifier, clk,
				usecase.NewCheckerConfig(*settings, usecase.WithOutputDir(out.Dir())))

			if err := checker.Login(ctx, creds); err != nil {
				apperr.HandleFatal(ctx, out, err)
				return err
			}

			results, err := checker.Run(ctx, roster)
			if err != nil {
				apperr.HandleFatal(ctx, out, err)
				return err
			}

			logger.Info("run finished",
				slog.Int("tutors", len(results)),
				slog.String("output", out.Dir()),
			)
			return nil
		},
	}
}
