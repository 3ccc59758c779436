package entity

type WorkaroundStatus string

const (
	WorkaroundActive   WorkaroundStatus = "active"
	WorkaroundInactive WorkaroundStatus = "inactive"
	WorkaroundReplaced WorkaroundStatus = "replaced"
)

var Effectiveness = []string{"complete", "partial", "minimal"}

type Workaround struct {
	WorkaroundID    string           `json:"workaround_id"`
	IncidentID      string           `json:"incident_id"`
	ImplementedByID string           `json:"implemented_by_id"`
	Effectiveness   string           `json:"effectiveness"`
	Status          WorkaroundStatus `json:"status"`
	ImplementedAt   Timestamp        `json:"implemented_at"`
	CreatedAt       Timestamp        `json:"created_at"`
}

func (w Workaround) Key() string { return w.WorkaroundID }

type RCAStatus string

const (
	RCAInProgress RCAStatus = "in_progress"
	RCACompleted  RCAStatus = "completed"
	RCAApproved   RCAStatus = "approved"
)

var AnalysisMethods = []string{"five_whys", "fishbone", "timeline_analysis", "fault_tree"}

type RootCauseAnalysis struct {
	RCAID          string     `json:"rca_id"`
	IncidentID     string     `json:"incident_id"`
	AnalysisMethod string     `json:"analysis_method"`
	ConductedByID  string     `json:"conducted_by_id"`
	CompletedAt    *Timestamp `json:"completed_at"`
	Status         RCAStatus  `json:"status"`
	CreatedAt      Timestamp  `json:"created_at"`
}

func (r RootCauseAnalysis) Key() string { return r.RCAID }

type RecipientType string

const (
	RecipientClient       RecipientType = "client"
	RecipientInternalTeam RecipientType = "internal_team"
	RecipientExecutive    RecipientType = "executive"
	RecipientVendor       RecipientType = "vendor"
)

var CommunicationTypes = []string{"email", "sms", "phone_call", "status_page", "portal_update"}

type DeliveryStatus string

const (
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
	DeliveryPending   DeliveryStatus = "pending"
)

type Communication struct {
	CommunicationID   string         `json:"communication_id"`
	IncidentID        string         `json:"incident_id"`
	SenderID          string         `json:"sender_id"`
	RecipientID       string         `json:"recipient_id"`
	RecipientType     RecipientType  `json:"recipient_type"`
	CommunicationType string         `json:"communication_type"`
	SentAt            Timestamp      `json:"sent_at"`
	DeliveryStatus    DeliveryStatus `json:"delivery_status"`
	CreatedAt         Timestamp      `json:"created_at"`
}

func (c Communication) Key() string { return c.CommunicationID }

type UpdateType string

const (
	UpdateStatusChange   UpdateType = "status_change"
	UpdateResolution     UpdateType = "resolution"
	UpdateSeverityChange UpdateType = "severity_change"
	UpdateAssignment     UpdateType = "assignment"
	UpdateWorkaround     UpdateType = "workaround"
	UpdateCommunication  UpdateType = "communication"
)

type IncidentUpdate struct {
	UpdateID    string     `json:"update_id"`
	IncidentID  string     `json:"incident_id"`
	UpdatedByID string     `json:"updated_by_id"`
	UpdateType  UpdateType `json:"update_type"`
	FieldName   string     `json:"field_name"`
	OldValue    *string    `json:"old_value"`
	NewValue    *string    `json:"new_value"`
	CreatedAt   Timestamp  `json:"created_at"`
}

func (u IncidentUpdate) Key() string { return u.UpdateID }

type EscalationReason string

const (
	ReasonSLABreach           EscalationReason = "sla_breach"
	ReasonSeverityIncrease    EscalationReason = "severity_increase"
	ReasonResourceUnavailable EscalationReason = "resource_unavailable"
	ReasonExecutiveRequest    EscalationReason = "executive_request"
	ReasonClientDemand        EscalationReason = "client_demand"
)

type EscalationLevel string

const (
	EscalationLevelTechnical  EscalationLevel = "technical"
	EscalationLevelManagement EscalationLevel = "management"
	EscalationLevelExecutive  EscalationLevel = "executive"
	EscalationLevelVendor     EscalationLevel = "vendor"
)

type EscalationStatus string

const (
	EscalationOpen         EscalationStatus = "open"
	EscalationAcknowledged EscalationStatus = "acknowledged"
	EscalationResolved     EscalationStatus = "resolved"
)

type Escalation struct {
	EscalationID     string           `json:"escalation_id"`
	IncidentID       string           `json:"incident_id"`
	EscalatedByID    string           `json:"escalated_by_id"`
	EscalatedToID    string           `json:"escalated_to_id"`
	EscalationReason EscalationReason `json:"escalation_reason"`
	EscalationLevel  EscalationLevel  `json:"escalation_level"`
	EscalatedAt      Timestamp        `json:"escalated_at"`
	AcknowledgedAt   *Timestamp       `json:"acknowledged_at"`
	ResolvedAt       *Timestamp       `json:"resolved_at"`
	Status           EscalationStatus `json:"status"`
	CreatedAt        Timestamp        `json:"created_at"`
}

func (e Escalation) Key() string { return e.EscalationID }
