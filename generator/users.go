package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

type userFactory struct {
	g      *Generator
	emails *Registry
	phones *Registry
	users  []entity.User
}

func (f *userFactory) add(role entity.UserRole, department string, status entity.UserStatus, clientID, vendorID *string) error {
	first, last := f.g.fake.FirstName(), f.g.fake.LastName()
	email, err := f.emails.Claim(func(attempt int) string {
		e := personalEmail(f.g.rng, first, last)
		if attempt >= 3 {
			e = withSuffix(e, attempt)
		}
		return e
	})
	if err != nil {
		return err
	}
	tel, err := f.phones.Claim(func(int) string { return phone(f.g.rng) })
	if err != nil {
		return err
	}
	created, updated := f.g.timestamps()
	f.users = append(f.users, entity.User{
		UserID:     id(len(f.users) + 1),
		ClientID:   clientID,
		VendorID:   vendorID,
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Phone:      tel,
		Role:       role,
		Department: department,
		Timezone:   choice(f.g.rng, entity.Timezones),
		Status:     status,
		CreatedAt:  created,
		UpdatedAt:  updated,
	})
	return nil
}

// generateUsers emits internal staff first, then two or three contacts per
// client and one or two per vendor.
func (g *Generator) generateUsers(_ context.Context, ds *model.Dataset) (int, error) {
	limit := 10 * (g.opts.Population.InternalUsers + 3*len(ds.Clients) + 2*len(ds.Vendors))
	f := &userFactory{
		g:      g,
		emails: NewRegistry(entity.TableUsers, "email", limit),
		phones: NewRegistry(entity.TableUsers, "phone", limit),
	}

	for range g.opts.Population.InternalUsers {
		role := choice(g.rng, entity.InternalRoles)
		dept := choice(g.rng, role.Departments())
		if err := f.add(role, dept, userStatus(g.rng, internalStaff, entity.OrgStatusActive), nil, nil); err != nil {
			return 0, err
		}
	}
	for _, c := range ds.Clients {
		for range intBetween(g.rng, 2, 3) {
			status := userStatus(g.rng, clientStaff, c.Status)
			if err := f.add(entity.RoleClientContact, entity.ClientDepartment(c.Industry), status, ptr(c.ClientID), nil); err != nil {
				return 0, err
			}
		}
	}
	for _, v := range ds.Vendors {
		for range intBetween(g.rng, 1, 2) {
			status := userStatus(g.rng, vendorStaff, v.Status)
			if err := f.add(entity.RoleVendorContact, entity.VendorDepartment(v.VendorType), status, nil, ptr(v.VendorID)); err != nil {
				return 0, err
			}
		}
	}
	ds.Users = f.users
	return len(f.users), nil
}
