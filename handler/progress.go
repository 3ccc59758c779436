package handler

import (
	"log/slog"

	"github.com/pyama86/incidentseed/domain/entity"
)

// progressLogger reports stage progress as log lines.
type progressLogger struct {
	logger *slog.Logger
}

func (p *progressLogger) StageStarted(table entity.TableName) {
	p.logger.Info("Generating", slog.String("table", string(table)))
}

func (p *progressLogger) TableCompleted(table entity.TableName, rows int) {
	p.logger.Info("Generated", slog.String("table", string(table)), slog.Int("rows", rows))
}
