package repository

import (
	"context"
	"errors"

	"github.com/pyama86/incidentseed/domain/model"
)

// Exporter persists a generated dataset. Every exporter receives the same
// dataset and must not modify it.
type Exporter interface {
	Name() string
	Export(ctx context.Context, runID string, ds *model.Dataset) error
}

type Notifier interface {
	NotifySummary(ctx context.Context, summary model.Summary) error
}

// Exporters fans a dataset out to several exporters in order, stopping at the
// first failure.
type Exporters []Exporter

func (es Exporters) Names() []string {
	names := make([]string, 0, len(es))
	for _, e := range es {
		names = append(names, e.Name())
	}
	return names
}

func (es Exporters) Export(ctx context.Context, runID string, ds *model.Dataset) error {
	for _, e := range es {
		if err := e.Export(ctx, runID, ds); err != nil {
			return err
		}
	}
	return nil
}

// Notifiers reports to every notifier, even after one fails.
type Notifiers []Notifier

func (ns Notifiers) NotifySummary(ctx context.Context, summary model.Summary) error {
	var errs []error
	for _, n := range ns {
		if err := n.NotifySummary(ctx, summary); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
