package slack

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"padel-games/internal/metrics"
	"padel-games/internal/notifier"
	"padel-games/internal/padel"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// SendGameRecorded posts a short summary of a newly recorded game.
func (n *Notifier) SendGameRecorded(game *padel.GameDetail) (string, error) {
	text := formatGameRecorded(game)
	_, ts, err := n.api.PostMessageContext(context.Background(), n.channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		n.metrics.IncSlackNotifFailed()
		log.Error("Failed to send game notification", "error", err)
		return "", err
	}
	n.metrics.IncSlackNotifSent()
	return ts, nil
}

func formatGameRecorded(game *padel.GameDetail) string {
	team1 := fmt.Sprintf("%s / %s", game.Team1PlayerDxName, game.Team1PlayerSxName)
	team2 := fmt.Sprintf("%s / %s", game.Team2PlayerDxName, game.Team2PlayerSxName)

	var headline string
	switch game.Winner {
	case padel.WinnerTeam1:
		headline = fmt.Sprintf("%s def. %s", team1, team2)
	case padel.WinnerTeam2:
		headline = fmt.Sprintf("%s def. %s", team2, team1)
	default:
		headline = fmt.Sprintf("%s tied %s", team1, team2)
	}

	if scores := game.SetsScoresText; scores != "" {
		headline += " " + scores
	}
	return fmt.Sprintf(":tennis: Game recorded on %s: %s", game.PlayedAt.Format("2006-01-02"), headline)
}
