package generator

import (
	"context"
	"fmt"
	"slices"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

func others(users []entity.User, except entity.User) []entity.User {
	return slices.DeleteFunc(slices.Clone(users), func(u entity.User) bool { return u.UserID == except.UserID })
}

// generateChangeRequests raises one change per in_progress or resolved incident,
// up to the configured limit. Schedule and execution fields fill in as the
// change advances through its lifecycle.
func (g *Generator) generateChangeRequests(_ context.Context, ds *model.Dataset) (int, error) {
	eligible := incidentsWhere(ds, func(i entity.Incident) bool { return i.Status.UnderWork() })
	eligible = eligible[:min(len(eligible), g.opts.Population.ChangeRequestLimit)]

	requesters, err := staff(ds, entity.TableChangeRequests, "change requesters",
		entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleSystemAdministrator, entity.RoleExecutive)
	if err != nil {
		return 0, err
	}
	approvers := ds.ActiveUsers(entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleExecutive)

	now := g.now()
	changes := make([]entity.ChangeRequest, 0, len(eligible))
	for _, inc := range eligible {
		requester := choice(g.rng, requesters)
		approver, err := pick(g.rng, entity.TableChangeRequests, "approvers other than the requester", others(approvers, requester))
		if err != nil {
			return 0, err
		}
		changeType := choice(g.rng, entity.ChangeTypes)
		risk := choice(g.rng, entity.RiskLevels)
		status := choice(g.rng, entity.ChangeStatuses)

		cr := entity.ChangeRequest{
			ChangeID:      id(len(changes) + 1),
			IncidentID:    inc.IncidentID,
			Title:         fmt.Sprintf("%s %s", changeType.TitlePrefix(), inc.Title),
			ChangeType:    changeType,
			RequestedByID: requester.UserID,
			RiskLevel:     risk,
			Status:        status,
		}
		if status != entity.ChangeRequested {
			cr.ApprovedByID = ptr(approver.UserID)
		}
		if status.Scheduled() {
			start := timeBetween(g.rng, inc.CreatedAt.Time, now)
			cr.ScheduledStart = ptr(entity.At(start))
			cr.ScheduledEnd = ptr(entity.At(start.Add(hours(intBetween(g.rng, 1, 8)))))
			if status.Started() {
				// 実績は now を超えない
				actual := notAfter(start.Add(minutes(intBetween(g.rng, -30, 30))), now)
				cr.ActualStart = ptr(entity.At(actual))
				if status.Finished() {
					cr.ActualEnd = ptr(entity.At(notAfter(actual.Add(hours(intBetween(g.rng, 1, 12))), now)))
				}
			}
		}
		created := duringIncident(g.rng, inc)
		cr.CreatedAt = entity.At(created)
		cr.UpdatedAt = entity.At(timeBetween(g.rng, created, now))
		changes = append(changes, cr)
	}
	ds.ChangeRequests = changes
	return len(changes), nil
}

// generateRollbackRequests targets every failed or rolled back change.
func (g *Generator) generateRollbackRequests(_ context.Context, ds *model.Dataset) (int, error) {
	requesters := ds.ActiveUsers(entity.RoleIncidentManager, entity.RoleTechnicalSupport, entity.RoleExecutive)
	now := g.now()
	var rollbacks []entity.RollbackRequest
	for _, cr := range ds.ChangeRequests {
		if !cr.Status.NeedsRollback() {
			continue
		}
		requester, err := pick(g.rng, entity.TableRollbackRequests, "rollback requesters", requesters)
		if err != nil {
			return 0, err
		}
		approver, err := pick(g.rng, entity.TableRollbackRequests, "approvers other than the requester", others(requesters, requester))
		if err != nil {
			return 0, err
		}
		status := choice(g.rng, entity.RollbackStatuses)
		created := timeBetween(g.rng, cr.CreatedAt.Time, now)

		rb := entity.RollbackRequest{
			RollbackID:    id(len(rollbacks) + 1),
			ChangeID:      cr.ChangeID,
			IncidentID:    cr.IncidentID,
			RequestedByID: requester.UserID,
			Status:        status,
			CreatedAt:     entity.At(created),
		}
		if status != entity.RollbackRequested {
			rb.ApprovedByID = ptr(approver.UserID)
		}
		if status.Executed() {
			rb.ExecutedAt = ptr(entity.At(timeBetween(g.rng, created, now)))
		}
		if status == entity.RollbackCompleted {
			rb.ValidationCompleted = coin(g.rng)
		}
		rollbacks = append(rollbacks, rb)
	}
	ds.RollbackRequests = rollbacks
	return len(rollbacks), nil
}
