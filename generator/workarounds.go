package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// generateWorkarounds gives about half of the P1/P2 incidents that are not open
// a workaround, then pads the table from the same eligible incidents.
func (g *Generator) generateWorkarounds(_ context.Context, ds *model.Dataset) (int, error) {
	critical := incidentsWhere(ds, func(i entity.Incident) bool { return i.Severity.Critical() })
	implementers, err := staff(ds, entity.TableWorkarounds, "implementers",
		entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleSystemAdministrator)
	if err != nil {
		return 0, err
	}

	var workarounds []entity.Workaround
	add := func(inc entity.Incident) bool {
		status, ok := workaroundStatus(g.rng, inc.Status)
		if !ok {
			return false
		}
		implementer := choice(g.rng, implementers)
		at := entity.At(duringIncident(g.rng, inc))
		workarounds = append(workarounds, entity.Workaround{
			WorkaroundID:    id(len(workarounds) + 1),
			IncidentID:      inc.IncidentID,
			ImplementedByID: implementer.UserID,
			Effectiveness:   choice(g.rng, entity.Effectiveness),
			Status:          status,
			ImplementedAt:   at,
			CreatedAt:       at,
		})
		return true
	}

	for _, inc := range critical {
		if coin(g.rng) {
			add(inc)
		}
	}

	eligible := incidentsWhere(ds, func(i entity.Incident) bool {
		return i.Severity.Critical() && i.Status != entity.IncidentOpen
	})
	for len(workarounds) < g.opts.Population.MinRows {
		inc, err := pick(g.rng, entity.TableWorkarounds, "P1/P2 incidents past open", eligible)
		if err != nil {
			return 0, err
		}
		add(inc)
	}
	ds.Workarounds = workarounds
	return len(workarounds), nil
}
