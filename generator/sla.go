package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// generateSLAAgreements writes one row per severity for every subscription.
// Every value is a function of the subscription's tier.
func (g *Generator) generateSLAAgreements(_ context.Context, ds *model.Dataset) (int, error) {
	slas := make([]entity.SLAAgreement, 0, 4*len(ds.Subscriptions))
	for _, s := range ds.Subscriptions {
		for _, sev := range entity.Severities {
			var resolution *int
			if h, ok := s.SLATier.ResolutionHours(sev); ok {
				resolution = ptr(h)
			}
			slas = append(slas, entity.SLAAgreement{
				SLAID:                  id(len(slas) + 1),
				SubscriptionID:         s.SubscriptionID,
				SeverityLevel:          sev,
				ResponseTimeMinutes:    s.SLATier.ResponseMinutes(sev),
				ResolutionTimeHours:    resolution,
				AvailabilityPercentage: s.SLATier.Availability(),
				CreatedAt:              s.CreatedAt,
			})
		}
	}
	ds.SLAAgreements = slas
	return len(slas), nil
}
