package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// generateMetrics records one or two response metrics per incident, scaled by
// severity.
func (g *Generator) generateMetrics(_ context.Context, ds *model.Dataset) (int, error) {
	var metrics []entity.Metric
	for _, inc := range ds.Incidents {
		for range intBetween(g.rng, 1, 2) {
			metricType := choice(g.rng, entity.MetricTypes)
			value, target := inc.Severity.MetricRanges()
			v := intBetween(g.rng, value.Min, value.Max)
			t := intBetween(g.rng, target.Min, target.Max)
			recorded := entity.At(duringIncident(g.rng, inc))
			metrics = append(metrics, entity.Metric{
				MetricID:      id(len(metrics) + 1),
				IncidentID:    inc.IncidentID,
				MetricType:    metricType,
				ValueMinutes:  v,
				TargetMinutes: t,
				RecordedAt:    recorded,
				CreatedAt:     recorded,
			})
		}
	}
	ds.Metrics = metrics
	return len(metrics), nil
}
