package generator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pyama86/incidentseed/domain/entity"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestSubscriptionStatus(t *testing.T) {
	r := testRand(1)
	tests := []struct {
		name    string
		client  entity.OrgStatus
		product entity.ProductStatus
		allowed []entity.SubscriptionStatus
	}{
		{"active client, active product", entity.OrgStatusActive, entity.ProductStatusActive,
			[]entity.SubscriptionStatus{entity.SubscriptionActive, entity.SubscriptionExpired, entity.SubscriptionCancelled}},
		{"active client, deprecated product", entity.OrgStatusActive, entity.ProductStatusDeprecated,
			[]entity.SubscriptionStatus{entity.SubscriptionCancelled, entity.SubscriptionSuspended}},
		{"active client, product in maintenance", entity.OrgStatusActive, entity.ProductStatusMaintenance,
			[]entity.SubscriptionStatus{entity.SubscriptionCancelled}},
		{"suspended client", entity.OrgStatusSuspended, entity.ProductStatusActive,
			[]entity.SubscriptionStatus{entity.SubscriptionSuspended}},
		{"inactive client", entity.OrgStatusInactive, entity.ProductStatusDeprecated,
			[]entity.SubscriptionStatus{entity.SubscriptionExpired, entity.SubscriptionCancelled, entity.SubscriptionSuspended}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 200 {
				assert.Contains(t, tt.allowed, subscriptionStatus(r, tt.client, tt.product))
			}
		})
	}
}

func TestComponentStatusFollowsProduct(t *testing.T) {
	r := testRand(2)
	for range 100 {
		assert.Equal(t, entity.ComponentOffline, componentStatus(r, entity.ProductStatusDeprecated))
		assert.Equal(t, entity.ComponentMaintenance, componentStatus(r, entity.ProductStatusMaintenance))
	}
}

func TestLatestIncidentStatus(t *testing.T) {
	r := testRand(3)
	tests := []struct {
		name      string
		component entity.ComponentStatus
		product   entity.ProductStatus
		allowed   []entity.IncidentStatus
	}{
		{"offline under active product", entity.ComponentOffline, entity.ProductStatusActive,
			[]entity.IncidentStatus{entity.IncidentOpen, entity.IncidentInProgress}},
		{"offline under deprecated product", entity.ComponentOffline, entity.ProductStatusDeprecated,
			[]entity.IncidentStatus{entity.IncidentClosed}},
		{"maintenance", entity.ComponentMaintenance, entity.ProductStatusMaintenance,
			[]entity.IncidentStatus{entity.IncidentInProgress}},
		{"degraded", entity.ComponentDegraded, entity.ProductStatusActive,
			[]entity.IncidentStatus{entity.IncidentResolved, entity.IncidentClosed}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 100 {
				assert.Contains(t, tt.allowed, latestIncidentStatus(r, tt.component, tt.product))
			}
		})
	}
}

func TestHistoricalIncidentStatus(t *testing.T) {
	r := testRand(4)
	for range 100 {
		assert.Equal(t, entity.IncidentClosed,
			historicalIncidentStatus(r, entity.ComponentOffline, entity.ProductStatusDeprecated))
		assert.True(t, historicalIncidentStatus(r, entity.ComponentOnline, entity.ProductStatusActive).Settled())
	}
}

func TestUserStatusDormantOwner(t *testing.T) {
	r := testRand(5)
	for range 50 {
		assert.Equal(t, entity.UserStatusInactive, userStatus(r, clientStaff, entity.OrgStatusSuspended))
		assert.Equal(t, entity.UserStatusInactive, userStatus(r, vendorStaff, entity.OrgStatusInactive))
	}
}

func TestWorkaroundStatus(t *testing.T) {
	r := testRand(6)
	_, ok := workaroundStatus(r, entity.IncidentOpen)
	assert.False(t, ok)

	s, ok := workaroundStatus(r, entity.IncidentInProgress)
	assert.True(t, ok)
	assert.Equal(t, entity.WorkaroundActive, s)

	s, ok = workaroundStatus(r, entity.IncidentClosed)
	assert.True(t, ok)
	assert.Contains(t, []entity.WorkaroundStatus{entity.WorkaroundInactive, entity.WorkaroundReplaced}, s)
}
