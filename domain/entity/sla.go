package entity

import "strconv"

type Severity string

const (
	SeverityP1 Severity = "P1"
	SeverityP2 Severity = "P2"
	SeverityP3 Severity = "P3"
	SeverityP4 Severity = "P4"
)

var Severities = []Severity{SeverityP1, SeverityP2, SeverityP3, SeverityP4}

// Critical covers the severities whose SLA misses count as RTO breaches.
func (s Severity) Critical() bool {
	return s == SeverityP1 || s == SeverityP2
}

type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelMedium   Level = "medium"
	LevelLow      Level = "low"
)

// Level maps severity onto both impact and urgency.
func (s Severity) Level() Level {
	switch s {
	case SeverityP1:
		return LevelCritical
	case SeverityP2:
		return LevelHigh
	case SeverityP3:
		return LevelMedium
	}
	return LevelLow
}

var responseMinutes = map[SLATier][4]int{
	TierPremium:  {15, 60, 240, 1440},
	TierStandard: {60, 240, 1440, 2880},
	TierBasic:    {240, 1440, 2880, 7200},
}

// Zero marks "no target".
var resolutionHours = map[SLATier][4]int{
	TierPremium:  {2, 8, 48, 0},
	TierStandard: {8, 24, 72, 0},
	TierBasic:    {24, 72, 240, 0},
}

// ResponseMinutes is the first-response target for a severity under the tier.
func (t SLATier) ResponseMinutes(s Severity) int {
	return responseMinutes[t][s.index()]
}

// ResolutionHours returns false when the tier sets no resolution target, which is
// the case for P4 on every tier.
func (t SLATier) ResolutionHours(s Severity) (int, bool) {
	h := resolutionHours[t][s.index()]
	return h, h > 0
}

func (t SLATier) Availability() Percentage {
	switch t {
	case TierPremium:
		return 99.9
	case TierStandard:
		return 99.5
	}
	return 99.0
}

// Percentage always serializes with one decimal place, so 99 is written as 99.0.
type Percentage float64

func (p Percentage) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(p), 'f', 1, 64), nil
}

func (s Severity) index() int {
	switch s {
	case SeverityP1:
		return 0
	case SeverityP2:
		return 1
	case SeverityP3:
		return 2
	}
	return 3
}

type SLAAgreement struct {
	SLAID                  string     `json:"sla_id"`
	SubscriptionID         string     `json:"subscription_id"`
	SeverityLevel          Severity   `json:"severity_level"`
	ResponseTimeMinutes    int        `json:"response_time_minutes"`
	ResolutionTimeHours    *int       `json:"resolution_time_hours"`
	AvailabilityPercentage Percentage `json:"availability_percentage"`
	CreatedAt              Timestamp  `json:"created_at"`
}

func (a SLAAgreement) Key() string { return a.SLAID }
