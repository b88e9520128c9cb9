package config

import (
	"context"
	"log/slog"

	"github.com/coffeepanda/dashcheck/pkg/domain/interfaces"
	slackSvc "github.com/coffeepanda/dashcheck/pkg/service/slack"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token for posting run summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("DASHCHECK_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID receiving run summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("DASHCHECK_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Configure returns a notifier, or a no-op one when Slack is not configured
func (s *Slack) Configure(ctx context.Context) interfaces.Notifier {
	if !s.IsConfigured() {
		ctxlog.From(ctx).Info("Slack not configured - run summaries will not be posted")
		return slackSvc.NewNopNotifier()
	}
	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID)
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
