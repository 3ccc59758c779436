package generator

import (
	"context"
	"fmt"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

var (
	vendorSuffixes      = []string{"Technologies", "Solutions", "Systems", "Services", "Networks"}
	vendorEmailPrefixes = []string{"support", "info", "sales", "contact", "admin"}
)

func (g *Generator) generateVendors(_ context.Context, ds *model.Dataset) (int, error) {
	n := g.opts.Population.Vendors
	limit := 10 * n
	names := NewRegistry(entity.TableVendors, "vendor_name", limit)
	emails := NewRegistry(entity.TableVendors, "contact_email", limit)
	phones := NewRegistry(entity.TableVendors, "contact_phone", limit)

	vendors := make([]entity.Vendor, 0, n)
	for i := 1; i <= n; i++ {
		var (
			vendorType entity.VendorType
			base       string
		)
		// The brand catalog is small, so later draws fall back to a numbered
		// trading name once the plain combinations run out.
		name, err := names.Claim(func(attempt int) string {
			vendorType = choice(g.rng, entity.VendorTypes)
			base = choice(g.rng, vendorType.BrandNames())
			name := base
			if g.rng.Float64() >= 0.7 {
				name = base + " " + choice(g.rng, vendorSuffixes)
			}
			if attempt >= 20 {
				name = withSuffix(name, intBetween(g.rng, 2, 999))
			}
			return name
		})
		if err != nil {
			return 0, err
		}

		domain := slugify(base) + ".com"
		prefix := choice(g.rng, vendorEmailPrefixes)
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

		status := vendorStatus(g.rng)
		created, _ := g.timestamps()
		vendors = append(vendors, entity.Vendor{
			VendorID:     id(i),
			VendorName:   name,
			VendorType:   vendorType,
			ContactEmail: email,
			ContactPhone: tel,
			Status:       status,
			CreatedAt:    created,
		})
	}
	ds.Vendors = vendors
	return len(vendors), nil
}
