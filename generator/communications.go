package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

// generateCommunications sends one to three messages per incident. The recipient
// type follows the recipient's role.
func (g *Generator) generateCommunications(_ context.Context, ds *model.Dataset) (int, error) {
	senders, err := staff(ds, entity.TableCommunications, "senders", entity.RoleIncidentManager, entity.RoleTechnicalSupport)
	if err != nil {
		return 0, err
	}
	recipients, err := staff(ds, entity.TableCommunications, "recipients")
	if err != nil {
		return 0, err
	}

	var comms []entity.Communication
	for _, inc := range ds.Incidents {
		for range intBetween(g.rng, 1, 3) {
			sender := choice(g.rng, senders)
			recipient := choice(g.rng, recipients)
			sent := entity.At(duringIncident(g.rng, inc))
			comms = append(comms, entity.Communication{
				CommunicationID:   id(len(comms) + 1),
				IncidentID:        inc.IncidentID,
				SenderID:          sender.UserID,
				RecipientID:       recipient.UserID,
				RecipientType:     recipient.Role.RecipientType(),
				CommunicationType: choice(g.rng, entity.CommunicationTypes),
				SentAt:            sent,
				DeliveryStatus: pickWeighted(g.rng,
					w(entity.DeliverySent, 20),
					w(entity.DeliveryDelivered, 70),
					w(entity.DeliveryFailed, 5),
					w(entity.DeliveryPending, 5),
				),
				CreatedAt: sent,
			})
		}
	}
	ds.Communications = comms
	return len(comms), nil
}
