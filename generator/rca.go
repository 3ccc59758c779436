package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// generateRootCauseAnalyses writes one analysis per in_progress or resolved
// incident.
func (g *Generator) generateRootCauseAnalyses(_ context.Context, ds *model.Dataset) (int, error) {
	eligible := incidentsWhere(ds, func(i entity.Incident) bool { return i.Status.UnderWork() })
	conductors, err := staff(ds, entity.TableRootCauseAnalyses, "analysts",
		entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleSystemAdministrator)
	if err != nil {
		return 0, err
	}

	rcas := make([]entity.RootCauseAnalysis, 0, len(eligible))
	for _, inc := range eligible {
		conductor := choice(g.rng, conductors)
		status := rcaStatus(g.rng, inc.Status)
		created := duringIncident(g.rng, inc)

		var completed *entity.Timestamp
		if status != entity.RCAInProgress {
			at := entity.At(timeBetween(g.rng, created, inc.UpdatedAt.Time))
			completed = &at
		}
		rcas = append(rcas, entity.RootCauseAnalysis{
			RCAID:          id(len(rcas) + 1),
			IncidentID:     inc.IncidentID,
			AnalysisMethod: choice(g.rng, entity.AnalysisMethods),
			ConductedByID:  conductor.UserID,
			CompletedAt:    completed,
			Status:         status,
			CreatedAt:      entity.At(created),
		})
	}
	ds.RootCauseAnalyses = rcas
	return len(rcas), nil
}
