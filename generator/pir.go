package generator

import (
	"context"
	"math/rand/v2"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

func rating(r *rand.Rand) *int {
	return ptr(intBetween(r, 1, 5))
}

// generatePostIncidentReviews schedules a review one to seven days after each
// resolved or closed incident ended. Reviews that fall after the snapshot are
// still scheduled.
func (g *Generator) generatePostIncidentReviews(_ context.Context, ds *model.Dataset) (int, error) {
	eligible := incidentsWhere(ds, func(i entity.Incident) bool { return i.Status.Settled() })
	facilitators, err := staff(ds, entity.TablePostIncidentReviews, "facilitators",
		entity.RoleIncidentManager, entity.RoleExecutive)
	if err != nil {
		return 0, err
	}

	reviews := make([]entity.PostIncidentReview, 0, len(eligible))
	for _, inc := range eligible {
		facilitator := choice(g.rng, facilitators)
		end := inc.EndedAt().Time
		scheduled := end.Add(days(intBetween(g.rng, 1, 7)))
		status := choice(g.rng, []entity.ReviewStatus{entity.ReviewScheduled, entity.ReviewCompleted, entity.ReviewCancelled})
		if scheduled.After(g.now()) {
			status = entity.ReviewScheduled
		}

		pir := entity.PostIncidentReview{
			PIRID:         id(len(reviews) + 1),
			IncidentID:    inc.IncidentID,
			ScheduledDate: entity.At(scheduled),
			FacilitatorID: facilitator.UserID,
			Status:        status,
			CreatedAt:     entity.At(timeBetween(g.rng, end, scheduled)),
		}
		if status == entity.ReviewCompleted {
			pir.TimelineAccuracyRating = rating(g.rng)
			pir.CommunicationEffectivenessRating = rating(g.rng)
			pir.TechnicalResponseRating = rating(g.rng)
		}
		reviews = append(reviews, pir)
	}
	ds.PostIncidentReviews = reviews
	return len(reviews), nil
}
