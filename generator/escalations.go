package generator

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// escalationReason picks among the reasons the incident's state supports, or an
// external trigger when none apply.
func escalationReason(r *rand.Rand, inc entity.Incident, hasWorkaround bool) entity.EscalationReason {
	var reasons []entity.EscalationReason
	if inc.SLABreach {
		reasons = append(reasons, entity.ReasonSLABreach)
	}
	if inc.Severity != entity.SeverityP4 {
		reasons = append(reasons, entity.ReasonSeverityIncrease)
	}
	if inc.Status == entity.IncidentInProgress && hasWorkaround {
		reasons = append(reasons, entity.ReasonResourceUnavailable)
	}
	if len(reasons) == 0 {
		reasons = []entity.EscalationReason{entity.ReasonExecutiveRequest, entity.ReasonClientDemand}
	}
	return choice(r, reasons)
}

func (g *Generator) generateEscalations(_ context.Context, ds *model.Dataset) (int, error) {
	eligible := incidentsWhere(ds, func(i entity.Incident) bool { return i.Status.UnderWork() })
	escalators, err := staff(ds, entity.TableEscalations, "escalators",
		entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleAccountManager, entity.RoleExecutive)
	if err != nil {
		return 0, err
	}
	targets := ds.ActiveUsers(entity.RoleIncidentManager, entity.RoleTechnicalSupport,
		entity.RoleAccountManager, entity.RoleExecutive, entity.RoleVendorContact)

	withWorkaround := make(map[string]bool)
	for _, wa := range ds.Workarounds {
		withWorkaround[wa.IncidentID] = true
	}

	var escalations []entity.Escalation
	for _, inc := range eligible {
		if g.rng.Float64() >= 0.5 {
			continue
		}
		by := choice(g.rng, escalators)
		to, err := pick(g.rng, entity.TableEscalations, "escalation targets",
			slices.DeleteFunc(slices.Clone(targets), func(u entity.User) bool { return u.UserID == by.UserID }))
		if err != nil {
			return 0, err
		}
		reason := escalationReason(g.rng, inc, withWorkaround[inc.IncidentID])
		escalated := duringIncident(g.rng, inc)

		status := choice(g.rng, []entity.EscalationStatus{entity.EscalationOpen, entity.EscalationAcknowledged, entity.EscalationResolved})
		var acknowledged, resolved *entity.Timestamp
		if status != entity.EscalationOpen {
			ack := escalated.Add(hours(intBetween(g.rng, 1, 4)))
			acknowledged = ptr(entity.At(ack))
			if status == entity.EscalationResolved {
				resolved = ptr(entity.At(ack.Add(hours(intBetween(g.rng, 1, 8)))))
			}
		}

		escalations = append(escalations, entity.Escalation{
			EscalationID:     id(len(escalations) + 1),
			IncidentID:       inc.IncidentID,
			EscalatedByID:    by.UserID,
			EscalatedToID:    to.UserID,
			EscalationReason: reason,
			EscalationLevel:  to.Role.EscalationLevel(),
			EscalatedAt:      entity.At(escalated),
			AcknowledgedAt:   acknowledged,
			ResolvedAt:       resolved,
			Status:           status,
			CreatedAt:        entity.At(escalated),
		})
	}
	ds.Escalations = escalations
	return len(escalations), nil
}
