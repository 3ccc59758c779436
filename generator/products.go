package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

var (
	techTerms = []string{
		"Nova", "Orion", "Zenith", "Apex", "Nimbus", "Pulse", "Quantum",
		"Vertex", "Horizon", "Stratus", "Vector", "Helix", "Axis",
		"Catalyst", "Core", "Stream", "Fusion", "Lumen", "Echo", "Forge",
	}
	buzzwords = []string{"Suite", "Engine", "Service", "Cloud", "Matrix", "Portal", "Hub", "Edge", "Flow", "Core", "Stream", "Fabric"}
)

type productFactory struct {
	g        *Generator
	names    *Registry
	products []entity.Product
}

func (f *productFactory) add(v entity.Vendor, status entity.ProductStatus, maxMajor int) error {
	r := f.g.rng
	productType := choice(r, v.VendorType.ProductTypes())
	created, updated := f.g.timestamps()
	brand := strings.Fields(v.VendorName)[0]
	name, err := f.names.Claim(func(int) string {
		return fmt.Sprintf("%s %s %s", brand, choice(r, techTerms), choice(r, buzzwords))
	})
	if err != nil {
		return err
	}
	f.products = append(f.products, entity.Product{
		ProductID:       id(len(f.products) + 1),
		ProductName:     name,
		ProductType:     productType,
		Version:         fmt.Sprintf("%d.%d.%d", intBetween(r, 1, maxMajor), r.IntN(10), r.IntN(10)),
		VendorSupportID: v.VendorID,
		Status:          status,
		CreatedAt:       created,
		UpdatedAt:       updated,
	})
	return nil
}

// generateProducts gives every active vendor one or two products, pads the
// table from active vendors, then adds a deprecated batch for dormant vendors.
func (g *Generator) generateProducts(_ context.Context, ds *model.Dataset) (int, error) {
	pop := g.opts.Population
	f := &productFactory{
		g:     g,
		names: NewRegistry(entity.TableProducts, "product_name", 10*max(pop.MinRows, 2*len(ds.Vendors))),
	}

	var active, dormant []entity.Vendor
	for _, v := range ds.Vendors {
		if v.Status == entity.OrgStatusActive {
			active = append(active, v)
		} else {
			dormant = append(dormant, v)
		}
	}

	for _, v := range active {
		for range intBetween(g.rng, 1, 2) {
			if err := f.add(v, productStatus(g.rng), 5); err != nil {
				return 0, err
			}
		}
	}
	for len(f.products) < pop.MinRows {
		v, err := pick(g.rng, entity.TableProducts, "active vendors", active)
		if err != nil {
			return 0, err
		}
		if err := f.add(v, productStatus(g.rng), 5); err != nil {
			return 0, err
		}
	}
	for _, v := range dormant[:min(pop.InactiveVendorProducts, len(dormant))] {
		if err := f.add(v, entity.ProductStatusDeprecated, 3); err != nil {
			return 0, err
		}
	}

	ds.Products = f.products
	return len(f.products), nil
}
