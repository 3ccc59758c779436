package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Songmu/retry"
	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/presentation/blocks"
	"github.com/slack-go/slack"
)

// SlackRepository posts run summaries to an incoming webhook.
type SlackRepository struct {
	webhookURL string
	attempts   uint
	interval   time.Duration
}

func NewSlackRepository(webhookURL string) *SlackRepository {
	return &SlackRepository{
		webhookURL: webhookURL,
		attempts:   3,
		interval:   3 * time.Second,
	}
}

func (h *SlackRepository) NotifySummary(ctx context.Context, summary model.Summary) error {
	msg := &slack.WebhookMessage{
		Text:   fmt.Sprintf("incident fixtures generated: %d tables, %d rows", len(summary.Tables), summary.TotalRows()),
		Blocks: &slack.Blocks{BlockSet: blocks.GenerationSummary(summary)},
	}
	err := retry.Retry(h.attempts, h.interval, func() error {
		err := slack.PostWebhookContext(ctx, h.webhookURL, msg)
		if err != nil {
			slog.Warn("PostWebhook", slog.String("run_id", summary.RunID), slog.Any("err", err))
		}
		return err
	})
	if err != nil {
		slog.Error("Failed to PostWebhook", slog.Any("err", err))
	}
	return err
}
