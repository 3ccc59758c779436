package generator

import (
	"context"
	"fmt"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

var (
	clientEmailPrefixes = []string{"contact", "support", "info", "hello", "admin"}
	countries           = []string{
		"United States", "Canada", "United Kingdom", "Germany", "France",
		"Australia", "Japan", "Brazil", "India", "Mexico",
	}
)

func (g *Generator) generateClients(_ context.Context, ds *model.Dataset) (int, error) {
	n := g.opts.Population.Clients
	limit := 10 * n
	names := NewRegistry(entity.TableClients, "client_name", limit)
	emails := NewRegistry(entity.TableClients, "contact_email", limit)
	phones := NewRegistry(entity.TableClients, "contact_phone", limit)
	regs := NewRegistry(entity.TableClients, "registration_number", limit)

	clients := make([]entity.Client, 0, n)
	for i := 1; i <= n; i++ {
		name, err := names.Claim(func(attempt int) string {
			if attempt < 3 {
				return g.fake.Company()
			}
			return g.fake.Company() + " " + g.fake.CompanySuffix()
		})
		if err != nil {
			return 0, err
		}

		clientType := choice(g.rng, entity.ClientTypes)
		industry := choice(g.rng, clientType.Industries())

		domain := slugify(name) + ".com"
		prefix := choice(g.rng, clientEmailPrefixes)
		email, err := emails.Claim(func(attempt int) string {
			if attempt == 0 {
				return fmt.Sprintf("%s@%s", prefix, domain)
			}
			return fmt.Sprintf("%s%d@%s", prefix, intBetween(g.rng, 1, 999), domain)
		})
		if err != nil {
			return 0, err
		}

		tel, err := phones.Claim(func(int) string { return phone(g.rng) })
		if err != nil {
			return 0, err
		}
		reg, err := regs.Claim(func(int) string {
			return fmt.Sprintf("REG%d", intBetween(g.rng, 100000, 999999))
		})
		if err != nil {
			return 0, err
		}

		status := clientStatus(g.rng)
		created, updated := g.timestamps()
		clients = append(clients, entity.Client{
			ClientID:           id(i),
			ClientName:         name,
			RegistrationNumber: reg,
			ContactEmail:       email,
			ContactPhone:       tel,
			ClientType:         clientType,
			Industry:           industry,
			Country:            choice(g.rng, countries),
			Status:             status,
			CreatedAt:          created,
			UpdatedAt:          updated,
		})
	}
	ds.Clients = clients
	return len(clients), nil
}
