package handler

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/domain/repository"
	"github.com/pyama86/incidentseed/generator"
)

// Handle builds the exporters and notifier named by the config and runs one
// generation.
func Handle(ctx context.Context, cfg *repository.Config) error {
	var exporters repository.Exporters
	if cfg.Export.JSON.Enabled {
		exporters = append(exporters, repository.NewJSONRepository(cfg.OutputDir))
	}
	if cfg.Export.DynamoDB.Enabled {
		r, err := repository.NewDynamoDBRepository(ctx, cfg.Export.DynamoDB, cfg.Workers)
		if err != nil {
			return err
		}
		exporters = append(exporters, r)
	}

	var notifiers repository.Notifiers
	if cfg.Notify.Slack.WebhookURL != "" {
		notifiers = append(notifiers, repository.NewSlackRepository(cfg.Notify.Slack.WebhookURL))
	}
	if os.Getenv("CONFLUENCE_USERNAME") != "" && os.Getenv("CONFLUENCE_PASSWORD") != "" && cfg.Notify.Confluence.Domain != "" {
		r, err := repository.NewConfluenceRepository(
			cfg.Notify.Confluence.Domain,
			os.Getenv("CONFLUENCE_USERNAME"),
			os.Getenv("CONFLUENCE_PASSWORD"),
			cfg.Notify.Confluence.Space,
			cfg.Notify.Confluence.AncestorID,
		)
		if err != nil {
			return err
		}
		notifiers = append(notifiers, r)
	}

	var notifier repository.Notifier
	if len(notifiers) > 0 {
		notifier = notifiers
	}
	_, err := NewGenerationHandler(cfg, exporters, notifier).Run(ctx)
	return err
}

type GenerationHandler struct {
	cfg       *repository.Config
	exporters repository.Exporters
	notifier  repository.Notifier
	newRunID  func() string
}

func NewGenerationHandler(cfg *repository.Config, exporters repository.Exporters, notifier repository.Notifier) *GenerationHandler {
	return &GenerationHandler{
		cfg:       cfg,
		exporters: exporters,
		notifier:  notifier,
		newRunID:  uuid.NewString,
	}
}

// Run generates the dataset, hands it to every exporter and reports the result.
// Nothing is exported when generation fails.
func (h *GenerationHandler) Run(ctx context.Context) (model.Summary, error) {
	started := time.Now()
	runID := h.newRunID()
	logger := slog.With(slog.String("run_id", runID))
	logger.Info("Generation started", slog.Uint64("seed", h.cfg.Seed), slog.Int("workers", h.cfg.Workers))

	gen := generator.New(h.cfg.GeneratorOptions(), &progressLogger{logger: logger})
	ds, err := gen.Run(ctx)
	if err != nil {
		return model.Summary{}, err
	}

	if err := h.exporters.Export(ctx, runID, ds); err != nil {
		return model.Summary{}, fmt.Errorf("export dataset: %w", err)
	}

	summary := model.NewSummary(runID, h.cfg.Seed, ds)
	summary.Destinations = h.exporters.Names()
	summary.Elapsed = time.Since(started)
	logSummary(logger, summary)

	if h.notifier != nil {
		// 通知の失敗で生成結果は無効にしない
		if err := h.notifier.NotifySummary(ctx, summary); err != nil {
			logger.Warn("Failed to notify summary", slog.Any("error", err))
		}
	}
	return summary, nil
}

func logSummary(logger *slog.Logger, s model.Summary) {
	for _, t := range s.Tables {
		logger.Info("Table written", slog.String("table", string(t.Name)), slog.Int("rows", t.Rows))
	}
	logger.Info("Generation complete",
		slog.Int("tables", len(s.Tables)),
		slog.Int("rows", s.TotalRows()),
		slog.Any("destinations", s.Destinations),
		slog.Duration("elapsed", s.Elapsed),
	)
}
