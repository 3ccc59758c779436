package generator

import (
	"context"
	"fmt"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// generateComponents deploys two or three distinct component types per product,
// bounded by what the product type supports.
func (g *Generator) generateComponents(_ context.Context, ds *model.Dataset) (int, error) {
	var components []entity.InfrastructureComponent
	for _, p := range ds.Products {
		types := p.ProductType.ComponentTypes()
		n := min(len(types), intBetween(g.rng, 2, 4))
		for _, ct := range sample(g.rng, types, n) {
			env := choice(g.rng, entity.Environments)
			status := componentStatus(g.rng, p.Status)
			location := choice(g.rng, ct.Locations())
			created, updated := g.timestamps()

			var port *int
			if ct.ExposesPort() {
				port = ptr(intBetween(g.rng, 8000, 9999))
			}
			components = append(components, entity.InfrastructureComponent{
				ComponentID:   id(len(components) + 1),
				ProductID:     p.ProductID,
				ComponentName: fmt.Sprintf("%s-%s-%s", p.Brand(), ct.NameSegment(), env.Title()),
				ComponentType: ct,
				Environment:   env,
				Location:      location,
				PortNumber:    port,
				Status:        status,
				CreatedAt:     created,
				UpdatedAt:     updated,
			})
		}
	}
	ds.Components = components
	return len(components), nil
}
