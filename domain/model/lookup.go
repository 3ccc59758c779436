package model

import "github.com/pyama86/incidentseed/domain/entity"

// Index maps a record key to its position in a table slice.
type Index map[string]int

func IndexOf[T entity.Record](rows []T) Index {
	idx := make(Index, len(rows))
	for i := range rows {
		idx[rows[i].Key()] = i
	}
	return idx
}

func (d *Dataset) ProductByID(id string) (entity.Product, bool) {
	for _, p := range d.Products {
		if p.ProductID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// ActiveUsers returns active users holding any of roles, or every active user when
// roles is empty.
func (d *Dataset) ActiveUsers(roles ...entity.UserRole) []entity.User {
	var out []entity.User
	for _, u := range d.Users {
		if !u.IsActive() {
			continue
		}
		if len(roles) > 0 && !u.HasRole(roles...) {
			continue
		}
		out = append(out, u)
	}
	return out
}
