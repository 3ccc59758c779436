package generator

import (
	"math/rand/v2"
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// duringIncident samples an instant between an incident's creation and its last
// update.
func duringIncident(r *rand.Rand, inc entity.Incident) time.Time {
	return timeBetween(r, inc.CreatedAt.Time, inc.UpdatedAt.Time)
}

func incidentsWhere(ds *model.Dataset, keep func(entity.Incident) bool) []entity.Incident {
	var out []entity.Incident
	for _, inc := range ds.Incidents {
		if keep(inc) {
			out = append(out, inc)
		}
	}
	return out
}

// staff returns active users holding any of roles, failing when none exist.
func staff(ds *model.Dataset, table entity.TableName, what string, roles ...entity.UserRole) ([]entity.User, error) {
	users := ds.ActiveUsers(roles...)
	if len(users) == 0 {
		return nil, exhausted(table, "no active %s", what)
	}
	return users, nil
}
