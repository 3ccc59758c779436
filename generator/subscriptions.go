package generator

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// billingDay anchors contract dates two days ahead of the incident reference time.
func (g *Generator) billingDay() time.Time {
	y, m, d := g.opts.ReferenceTime.AddDate(0, 0, -2).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateBetween(r *rand.Rand, lo, hi time.Time) entity.Date {
	span := int(hi.Sub(lo).Hours() / 24)
	if span <= 0 {
		return entity.OnDate(lo)
	}
	return entity.OnDate(lo.AddDate(0, 0, r.IntN(span+1)))
}

// subscriptionDates keeps active contracts running past the billing day and
// expired or cancelled ones ended at least a month before it.
func subscriptionDates(r *rand.Rand, status entity.SubscriptionStatus, today time.Time) (entity.Date, entity.Date) {
	switch status {
	case entity.SubscriptionActive:
		start := dateBetween(r, today.AddDate(-2, 0, 0), today.AddDate(-1, 0, 0))
		end := dateBetween(r, today.AddDate(0, 0, 30), today.AddDate(0, 0, 365))
		return start, end
	case entity.SubscriptionExpired, entity.SubscriptionCancelled:
		start := dateBetween(r, today.AddDate(-3, 0, 0), today.AddDate(-2, 0, 0))
		end := dateBetween(r, start.AddDate(0, 0, 180), today.AddDate(0, 0, -30))
		return start, end
	}
	start := dateBetween(r, today.AddDate(-2, 0, 0), today.AddDate(0, -6, 0))
	end := dateBetween(r, today.AddDate(0, 0, -30), today.AddDate(0, 0, 365))
	return start, end
}

func (g *Generator) subscription(c entity.Client, p entity.Product, n int) entity.ClientSubscription {
	created, updated := g.timestamps()
	status := subscriptionStatus(g.rng, c.Status, p.Status)
	start, end := subscriptionDates(g.rng, status, g.billingDay())
	return entity.ClientSubscription{
		SubscriptionID:   id(n),
		ClientID:         c.ClientID,
		ProductID:        p.ProductID,
		SubscriptionType: choice(g.rng, entity.SubscriptionTypes),
		StartDate:        start,
		EndDate:          end,
		SLATier:          choice(g.rng, entity.SLATiers),
		RTOHours:         choice(g.rng, entity.RTOHours),
		Status:           status,
		CreatedAt:        created,
		UpdatedAt:        updated,
	}
}

// generateSubscriptions signs every client up for one to three distinct
// products, then pads with random pairs.
func (g *Generator) generateSubscriptions(_ context.Context, ds *model.Dataset) (int, error) {
	if len(ds.Products) == 0 {
		return 0, exhausted(entity.TableSubscriptions, "no products to subscribe to")
	}
	var subs []entity.ClientSubscription
	for _, c := range ds.Clients {
		for _, p := range sample(g.rng, ds.Products, intBetween(g.rng, 1, 3)) {
			subs = append(subs, g.subscription(c, p, len(subs)+1))
		}
	}
	for len(subs) < g.opts.Population.MinRows {
		c, err := pick(g.rng, entity.TableSubscriptions, "clients", ds.Clients)
		if err != nil {
			return 0, err
		}
		p := choice(g.rng, ds.Products)
		subs = append(subs, g.subscription(c, p, len(subs)+1))
	}
	ds.Subscriptions = subs
	return len(subs), nil
}
