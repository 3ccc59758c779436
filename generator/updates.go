package generator

import (
	"context"
	"slices"
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

type change struct {
	kind     entity.UpdateType
	field    string
	old, new *string
}

func statusChange(kind entity.UpdateType, from, to entity.IncidentStatus) change {
	return change{kind: kind, field: "status", old: ptr(string(from)), new: ptr(string(to))}
}

// statusHistory replays the transitions that lead to the incident's final status.
func (g *Generator) statusHistory(status entity.IncidentStatus) []change {
	var changes []change
	switch {
	case status.Settled():
		if g.rng.Float64() < 0.6 {
			changes = append(changes, statusChange(entity.UpdateStatusChange, entity.IncidentOpen, entity.IncidentInProgress))
		}
		changes = append(changes, statusChange(entity.UpdateResolution, entity.IncidentInProgress, entity.IncidentResolved))
		if status == entity.IncidentClosed {
			changes = append(changes, statusChange(entity.UpdateStatusChange, entity.IncidentResolved, entity.IncidentClosed))
		}
	case status == entity.IncidentInProgress:
		changes = append(changes, statusChange(entity.UpdateStatusChange, entity.IncidentOpen, entity.IncidentInProgress))
	}
	return changes
}

// generateIncidentUpdates writes each incident's audit trail: status history,
// an optional severity change, the manager assignment and one entry per
// workaround and communication. Entries are timestamped in order.
func (g *Generator) generateIncidentUpdates(_ context.Context, ds *model.Dataset) (int, error) {
	updaters, err := staff(ds, entity.TableIncidentUpdates, "updaters",
		entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleExecutive)
	if err != nil {
		return 0, err
	}
	managers := ds.ActiveUsers(entity.RoleIncidentManager)

	workarounds := make(map[string][]string)
	for _, wa := range ds.Workarounds {
		workarounds[wa.IncidentID] = append(workarounds[wa.IncidentID], wa.WorkaroundID)
	}
	comms := make(map[string][]string)
	for _, c := range ds.Communications {
		comms[c.IncidentID] = append(comms[c.IncidentID], c.CommunicationID)
	}

	var updates []entity.IncidentUpdate
	for _, inc := range ds.Incidents {
		changes := g.statusHistory(inc.Status)

		if g.rng.Float64() < 0.4 {
			if old := choice(g.rng, entity.Severities); old != inc.Severity {
				changes = append(changes, change{
					kind: entity.UpdateSeverityChange, field: "severity",
					old: ptr(string(old)), new: ptr(string(inc.Severity)),
				})
			}
		}

		if inc.AssignedManagerID != nil {
			prev, err := pick(g.rng, entity.TableIncidentUpdates, "active incident managers", managers)
			if err != nil {
				return 0, err
			}
			assignment := change{kind: entity.UpdateAssignment, field: "assigned_manager_id", new: inc.AssignedManagerID}
			if prev.UserID != *inc.AssignedManagerID && coin(g.rng) {
				assignment.old = ptr(prev.UserID)
			}
			changes = append(changes, assignment)
		}

		for _, wid := range workarounds[inc.IncidentID] {
			changes = append(changes, change{kind: entity.UpdateWorkaround, field: "workaround_id", new: ptr(wid)})
		}
		for _, cid := range comms[inc.IncidentID] {
			changes = append(changes, change{kind: entity.UpdateCommunication, field: "communication_id", new: ptr(cid)})
		}

		updaterIDs := make([]string, len(changes))
		times := make([]time.Time, len(changes))
		for i := range changes {
			updaterIDs[i] = choice(g.rng, updaters).UserID
			times[i] = duringIncident(g.rng, inc)
		}
		slices.SortFunc(times, func(a, b time.Time) int { return a.Compare(b) })

		for i, c := range changes {
			updates = append(updates, entity.IncidentUpdate{
				UpdateID:    id(len(updates) + 1),
				IncidentID:  inc.IncidentID,
				UpdatedByID: updaterIDs[i],
				UpdateType:  c.kind,
				FieldName:   c.field,
				OldValue:    c.old,
				NewValue:    c.new,
				CreatedAt:   entity.At(times[i]),
			})
		}
	}
	ds.IncidentUpdates = updates
	return len(updates), nil
}
