package entity

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

type SubscriptionType string

var SubscriptionTypes = []SubscriptionType{"full_service", "limited_service", "trial", "custom"}

type SLATier string

const (
	TierPremium  SLATier = "premium"
	TierStandard SLATier = "standard"
	TierBasic    SLATier = "basic"
)

var SLATiers = []SLATier{TierPremium, TierStandard, TierBasic}

var RTOHours = []int{1, 2, 4, 8, 24}

type ClientSubscription struct {
	SubscriptionID   string             `json:"subscription_id"`
	ClientID         string             `json:"client_id"`
	ProductID        string             `json:"product_id"`
	SubscriptionType SubscriptionType   `json:"subscription_type"`
	StartDate        Date               `json:"start_date"`
	EndDate          Date               `json:"end_date"`
	SLATier          SLATier            `json:"sla_tier"`
	RTOHours         int                `json:"rto_hours"`
	Status           SubscriptionStatus `json:"status"`
	CreatedAt        Timestamp          `json:"created_at"`
	UpdatedAt        Timestamp          `json:"updated_at"`
}

func (s ClientSubscription) Key() string { return s.SubscriptionID }
