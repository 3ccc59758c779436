package entity

type ChangeType string

const (
	ChangeEmergency ChangeType = "emergency"
	ChangeStandard  ChangeType = "standard"
	ChangeNormal    ChangeType = "normal"
)

var ChangeTypes = []ChangeType{ChangeEmergency, ChangeStandard, ChangeNormal}

func (t ChangeType) TitlePrefix() string {
	switch t {
	case ChangeStandard:
		return "Standard Change for"
	case ChangeNormal:
		return "Planned Fix for"
	}
	return "Emergency Fix for"
}

var RiskLevels = []string{"high", "medium", "low"}

type ChangeStatus string

const (
	ChangeRequested  ChangeStatus = "requested"
	ChangeApproved   ChangeStatus = "approved"
	ChangeScheduled  ChangeStatus = "scheduled"
	ChangeInProgress ChangeStatus = "in_progress"
	ChangeCompleted  ChangeStatus = "completed"
	ChangeFailed     ChangeStatus = "failed"
	ChangeRolledBack ChangeStatus = "rolled_back"
)

var ChangeStatuses = []ChangeStatus{
	ChangeRequested, ChangeApproved, ChangeScheduled, ChangeInProgress,
	ChangeCompleted, ChangeFailed, ChangeRolledBack,
}

func (s ChangeStatus) Scheduled() bool {
	return s != ChangeRequested && s != ChangeApproved
}

func (s ChangeStatus) Started() bool {
	return s.Scheduled() && s != ChangeScheduled
}

func (s ChangeStatus) Finished() bool {
	return s == ChangeCompleted || s == ChangeFailed || s == ChangeRolledBack
}

// NeedsRollback reports whether a rollback request may target the change.
func (s ChangeStatus) NeedsRollback() bool {
	return s == ChangeFailed || s == ChangeRolledBack
}

type ChangeRequest struct {
	ChangeID       string       `json:"change_id"`
	IncidentID     string       `json:"incident_id"`
	Title          string       `json:"title"`
	ChangeType     ChangeType   `json:"change_type"`
	RequestedByID  string       `json:"requested_by_id"`
	ApprovedByID   *string      `json:"approved_by_id"`
	RiskLevel      string       `json:"risk_level"`
	ScheduledStart *Timestamp   `json:"scheduled_start"`
	ScheduledEnd   *Timestamp   `json:"scheduled_end"`
	ActualStart    *Timestamp   `json:"actual_start"`
	ActualEnd      *Timestamp   `json:"actual_end"`
	Status         ChangeStatus `json:"status"`
	CreatedAt      Timestamp    `json:"created_at"`
	UpdatedAt      Timestamp    `json:"updated_at"`
}

func (c ChangeRequest) Key() string { return c.ChangeID }

type RollbackStatus string

const (
	RollbackRequested  RollbackStatus = "requested"
	RollbackApproved   RollbackStatus = "approved"
	RollbackInProgress RollbackStatus = "in_progress"
	RollbackCompleted  RollbackStatus = "completed"
	RollbackFailed     RollbackStatus = "failed"
)

var RollbackStatuses = []RollbackStatus{
	RollbackRequested, RollbackApproved, RollbackInProgress, RollbackCompleted, RollbackFailed,
}

func (s RollbackStatus) Executed() bool {
	return s == RollbackInProgress || s == RollbackCompleted || s == RollbackFailed
}

type RollbackRequest struct {
	RollbackID          string         `json:"rollback_id"`
	ChangeID            string         `json:"change_id"`
	IncidentID          string         `json:"incident_id"`
	RequestedByID       string         `json:"requested_by_id"`
	ApprovedByID        *string        `json:"approved_by_id"`
	ExecutedAt          *Timestamp     `json:"executed_at"`
	ValidationCompleted bool           `json:"validation_completed"`
	Status              RollbackStatus `json:"status"`
	CreatedAt           Timestamp      `json:"created_at"`
}

func (r RollbackRequest) Key() string { return r.RollbackID }
