package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pyama86/incidentseed/domain/entity"
)

func TestAvailabilityKeepsOneDecimal(t *testing.T) {
	tests := []struct {
		tier entity.SLATier
		want string
	}{
		{entity.TierPremium, "99.9"},
		{entity.TierStandard, "99.5"},
		{entity.TierBasic, "99.0"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			b, err := json.Marshal(entity.SLAAgreement{AvailabilityPercentage: tt.tier.Availability()})
			require.NoError(t, err)
			assert.Contains(t, string(b), `"availability_percentage":`+tt.want+`,`)
		})
	}
}

func TestResolutionHours(t *testing.T) {
	h, ok := entity.TierPremium.ResolutionHours(entity.SeverityP1)
	assert.True(t, ok)
	assert.Equal(t, 2, h)

	for _, tier := range entity.SLATiers {
		_, ok := tier.ResolutionHours(entity.SeverityP4)
		assert.False(t, ok, "P4 has no resolution target on %s", tier)
	}
}
