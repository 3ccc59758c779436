package entity

var MetricTypes = []string{"MTTA", "MTTD", "MTTR", "MTTM", "FTR"}

// MetricRange is an inclusive minute range.
type MetricRange struct {
	Min, Max int
}

// MetricRanges returns the observed-value and target ranges in minutes for a severity.
func (s Severity) MetricRanges() (value, target MetricRange) {
	switch s {
	case SeverityP1:
		return MetricRange{15, 120}, MetricRange{30, 60}
	case SeverityP2:
		return MetricRange{30, 240}, MetricRange{60, 120}
	case SeverityP3:
		return MetricRange{60, 480}, MetricRange{120, 240}
	}
	return MetricRange{120, 1440}, MetricRange{240, 480}
}

type Metric struct {
	MetricID      string    `json:"metric_id"`
	IncidentID    string    `json:"incident_id"`
	MetricType    string    `json:"metric_type"`
	ValueMinutes  int       `json:"value_minutes"`
	TargetMinutes int       `json:"target_minutes"`
	RecordedAt    Timestamp `json:"recorded_at"`
	CreatedAt     Timestamp `json:"created_at"`
}

func (m Metric) Key() string { return m.MetricID }

type ReportType string

const (
	ReportExecutiveSummary ReportType = "executive_summary"
	ReportTechnicalDetails ReportType = "technical_details"
	ReportBusinessImpact   ReportType = "business_impact"
	ReportCompliance       ReportType = "compliance_report"
	ReportPostMortem       ReportType = "post_mortem"
)

var ReportTypes = []ReportType{
	ReportExecutiveSummary, ReportTechnicalDetails, ReportBusinessImpact, ReportCompliance, ReportPostMortem,
}

type ReportStatus string

const (
	ReportDraft       ReportStatus = "draft"
	ReportCompleted   ReportStatus = "completed"
	ReportDistributed ReportStatus = "distributed"
)

type IncidentReport struct {
	ReportID      string       `json:"report_id"`
	IncidentID    string       `json:"incident_id"`
	ReportType    ReportType   `json:"report_type"`
	GeneratedByID string       `json:"generated_by_id"`
	GeneratedAt   Timestamp    `json:"generated_at"`
	Status        ReportStatus `json:"status"`
	CreatedAt     Timestamp    `json:"created_at"`
}

func (r IncidentReport) Key() string { return r.ReportID }

type ArticleType string

const (
	ArticleTroubleshooting ArticleType = "troubleshooting"
	ArticleResolutionSteps ArticleType = "resolution_steps"
	ArticlePreventionGuide ArticleType = "prevention_guide"
	ArticleFAQ             ArticleType = "faq"
)

var ArticleTypes = []ArticleType{ArticleTroubleshooting, ArticleResolutionSteps, ArticlePreventionGuide, ArticleFAQ}

var KBCategories = []string{
	"authentication_issues", "payment_processing", "api_integration",
	"data_synchronization", "system_outages", "performance_degradation",
	"security_incidents", "backup_recovery", "user_management",
	"billing_issues", "compliance_procedures", "vendor_escalations",
}

var ArticleStatuses = []string{"draft", "published", "archived"}

type KnowledgeBaseArticle struct {
	ArticleID    string      `json:"article_id"`
	IncidentID   *string     `json:"incident_id"`
	Title        string      `json:"title"`
	ArticleType  ArticleType `json:"article_type"`
	CreatedByID  string      `json:"created_by_id"`
	ReviewedByID *string     `json:"reviewed_by_id"`
	Category     string      `json:"category"`
	ViewCount    int         `json:"view_count"`
	Status       string      `json:"status"`
	CreatedAt    Timestamp   `json:"created_at"`
	UpdatedAt    Timestamp   `json:"updated_at"`
}

func (a KnowledgeBaseArticle) Key() string { return a.ArticleID }

type ReviewStatus string

const (
	ReviewScheduled ReviewStatus = "scheduled"
	ReviewCompleted ReviewStatus = "completed"
	ReviewCancelled ReviewStatus = "cancelled"
)

type PostIncidentReview struct {
	PIRID                            string       `json:"pir_id"`
	IncidentID                       string       `json:"incident_id"`
	ScheduledDate                    Timestamp    `json:"scheduled_date"`
	FacilitatorID                    string       `json:"facilitator_id"`
	TimelineAccuracyRating           *int         `json:"timeline_accuracy_rating"`
	CommunicationEffectivenessRating *int         `json:"communication_effectiveness_rating"`
	TechnicalResponseRating          *int         `json:"technical_response_rating"`
	Status                           ReviewStatus `json:"status"`
	CreatedAt                        Timestamp    `json:"created_at"`
}

func (p PostIncidentReview) Key() string { return p.PIRID }
