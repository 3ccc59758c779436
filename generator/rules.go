package generator

import (
	"math/rand/v2"

	"github.com/pyama86/incidentseed/domain/entity"
)

// Status correlation rules. Every dependent entity derives its status from its
// parent's status through one of these functions rather than sampling freely.

func clientStatus(r *rand.Rand) entity.OrgStatus {
	return pickWeighted(r,
		w(entity.OrgStatusActive, 85),
		w(entity.OrgStatusInactive, 10),
		w(entity.OrgStatusSuspended, 5),
	)
}

func vendorStatus(r *rand.Rand) entity.OrgStatus {
	return pickWeighted(r,
		w(entity.OrgStatusActive, 90),
		w(entity.OrgStatusInactive, 7),
		w(entity.OrgStatusSuspended, 3),
	)
}

type population int

const (
	internalStaff population = iota
	clientStaff
	vendorStaff
)

// userStatus samples per population, forcing inactive when the owning
// organization is inactive or suspended. Internal staff pass an active owner.
func userStatus(r *rand.Rand, pop population, owner entity.OrgStatus) entity.UserStatus {
	if owner.Dormant() {
		return entity.UserStatusInactive
	}
	switch pop {
	case clientStaff:
		return pickWeighted(r,
			w(entity.UserStatusActive, 80),
			w(entity.UserStatusInactive, 10),
			w(entity.UserStatusOnLeave, 10),
		)
	case vendorStaff:
		return pickWeighted(r,
			w(entity.UserStatusActive, 80),
			w(entity.UserStatusInactive, 15),
			w(entity.UserStatusOnLeave, 5),
		)
	}
	return pickWeighted(r,
		w(entity.UserStatusActive, 75),
		w(entity.UserStatusInactive, 15),
		w(entity.UserStatusOnLeave, 10),
	)
}

func productStatus(r *rand.Rand) entity.ProductStatus {
	return pickWeighted(r,
		w(entity.ProductStatusActive, 85),
		w(entity.ProductStatusMaintenance, 10),
		w(entity.ProductStatusDeprecated, 5),
	)
}

func componentStatus(r *rand.Rand, product entity.ProductStatus) entity.ComponentStatus {
	switch product {
	case entity.ProductStatusDeprecated:
		return entity.ComponentOffline
	case entity.ProductStatusMaintenance:
		return entity.ComponentMaintenance
	}
	return pickWeighted(r,
		w(entity.ComponentOnline, 80),
		w(entity.ComponentOffline, 5),
		w(entity.ComponentMaintenance, 10),
		w(entity.ComponentDegraded, 5),
	)
}

func subscriptionStatus(r *rand.Rand, client entity.OrgStatus, product entity.ProductStatus) entity.SubscriptionStatus {
	switch {
	case client == entity.OrgStatusActive && product == entity.ProductStatusActive:
		return pickWeighted(r,
			w(entity.SubscriptionActive, 75),
			w(entity.SubscriptionExpired, 15),
			w(entity.SubscriptionCancelled, 10),
		)
	case client == entity.OrgStatusActive && product == entity.ProductStatusDeprecated:
		return choice(r, []entity.SubscriptionStatus{entity.SubscriptionCancelled, entity.SubscriptionSuspended})
	case client == entity.OrgStatusSuspended:
		return entity.SubscriptionSuspended
	case client == entity.OrgStatusInactive:
		return choice(r, []entity.SubscriptionStatus{entity.SubscriptionExpired, entity.SubscriptionCancelled, entity.SubscriptionSuspended})
	}
	return entity.SubscriptionCancelled
}

// latestIncidentStatus applies to the chronologically last incident of a component.
func latestIncidentStatus(r *rand.Rand, component entity.ComponentStatus, product entity.ProductStatus) entity.IncidentStatus {
	switch component {
	case entity.ComponentOffline:
		if product == entity.ProductStatusActive {
			return choice(r, []entity.IncidentStatus{entity.IncidentOpen, entity.IncidentInProgress})
		}
		return entity.IncidentClosed
	case entity.ComponentMaintenance:
		return entity.IncidentInProgress
	case entity.ComponentDegraded:
		return settledStatus(r)
	}
	return pickWeighted(r,
		w(entity.IncidentOpen, 20),
		w(entity.IncidentInProgress, 30),
		w(entity.IncidentResolved, 30),
		w(entity.IncidentClosed, 20),
	)
}

// recentIncidentStatus biases non-latest incidents of the recent cohort towards
// unresolved work.
func recentIncidentStatus(r *rand.Rand) entity.IncidentStatus {
	return pickWeighted(r,
		w(entity.IncidentOpen, 30),
		w(entity.IncidentInProgress, 40),
		w(entity.IncidentResolved, 30),
	)
}

func historicalIncidentStatus(r *rand.Rand, component entity.ComponentStatus, product entity.ProductStatus) entity.IncidentStatus {
	if retired(component, product) {
		return entity.IncidentClosed
	}
	return pickWeighted(r,
		w(entity.IncidentResolved, 60),
		w(entity.IncidentClosed, 40),
	)
}

func settledStatus(r *rand.Rand) entity.IncidentStatus {
	return choice(r, []entity.IncidentStatus{entity.IncidentResolved, entity.IncidentClosed})
}

// retired components sit offline under a deprecated product; all of their
// incidents are closed.
func retired(component entity.ComponentStatus, product entity.ProductStatus) bool {
	return product == entity.ProductStatusDeprecated && component == entity.ComponentOffline
}

func workaroundStatus(r *rand.Rand, incident entity.IncidentStatus) (entity.WorkaroundStatus, bool) {
	switch {
	case incident == entity.IncidentInProgress:
		return entity.WorkaroundActive, true
	case incident.Settled():
		return choice(r, []entity.WorkaroundStatus{entity.WorkaroundInactive, entity.WorkaroundReplaced}), true
	}
	return "", false
}

func rcaStatus(r *rand.Rand, incident entity.IncidentStatus) entity.RCAStatus {
	if incident == entity.IncidentInProgress {
		return choice(r, []entity.RCAStatus{entity.RCAInProgress, entity.RCACompleted})
	}
	return choice(r, []entity.RCAStatus{entity.RCACompleted, entity.RCAApproved})
}
