package entity

type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "open"
	IncidentInProgress IncidentStatus = "in_progress"
	IncidentResolved   IncidentStatus = "resolved"
	IncidentClosed     IncidentStatus = "closed"
)

// Settled reports whether the incident carries a resolution timestamp.
func (s IncidentStatus) Settled() bool {
	return s == IncidentResolved || s == IncidentClosed
}

// UnderWork is the in_progress/resolved band that RCAs, escalations and change
// requests attach to.
func (s IncidentStatus) UnderWork() bool {
	return s == IncidentInProgress || s == IncidentResolved
}

type IncidentCategory string

const (
	CategoryPerformanceIssue   IncidentCategory = "performance_issue"
	CategoryIntegrationFailure IncidentCategory = "integration_failure"
	CategorySystemOutage       IncidentCategory = "system_outage"
	CategoryVendorIssue        IncidentCategory = "vendor_issue"
	CategoryDataUpdate         IncidentCategory = "data_update"
	CategorySecurityBreach     IncidentCategory = "security_breach"
	CategoryClientSupport      IncidentCategory = "client_support"
)

func (c IncidentCategory) KBCategory() string {
	switch c {
	case CategoryClientSupport:
		return "incident_response"
	case CategoryDataUpdate:
		return "data_synchronization"
	case CategorySystemOutage:
		return "system_outages"
	case CategorySecurityBreach:
		return "security_incidents"
	case CategoryPerformanceIssue:
		return "performance_degradation"
	case CategoryIntegrationFailure:
		return "third_party_integrations"
	case CategoryVendorIssue:
		return "vendor_escalations"
	}
	return "incident_response"
}

// TitleSet is one failure category and the titles incidents of that category use.
type TitleSet struct {
	Category IncidentCategory
	Titles   []string
}

// IncidentTitles lists the failure catalog for a component type; nil means the
// type has no dedicated entries and FallbackIncidentTitles applies.
func (t ComponentType) IncidentTitles() []TitleSet {
	switch t {
	case ComponentAPIEndpoint:
		return []TitleSet{
			{CategoryPerformanceIssue, []string{"High API Latency Detected", "5xx Error Spike on API", "Rate Limit Saturation"}},
			{CategoryIntegrationFailure, []string{"API Connection Failed", "Webhook Delivery Failures", "OAuth Token Rejected"}},
			{CategorySystemOutage, []string{"API Unavailable", "Routing Failure to API", "DNS Resolution Failure for API"}},
		}
	case ComponentPaymentGateway:
		return []TitleSet{
			{CategoryVendorIssue, []string{"Payment Authorization Failures", "High Decline Rates from Processor", "Settlement Delay from Vendor"}},
			{CategoryPerformanceIssue, []string{"Gateway Timeout Errors", "Increased Transaction Latency", "Intermittent Capture Failures"}},
			{CategorySystemOutage, []string{"Gateway Unreachable", "Processor Endpoint Down", "Critical Gateway Connectivity Loss"}},
		}
	case ComponentDatabase:
		return []TitleSet{
			{CategoryDataUpdate, []string{"Schema Migration Error", "Record Corruption Detected", "Write Conflicts Observed"}},
			{CategoryPerformanceIssue, []string{"Replication Lag High", "Connection Pool Exhausted", "Deadlocks Detected"}},
			{CategorySystemOutage, []string{"Primary Database Unavailable", "Failover Did Not Trigger", "Storage Volume Not Mounted"}},
		}
	case ComponentLoadBalancer:
		return []TitleSet{
			{CategorySystemOutage, []string{"LB Health Checks Failing", "VIP Not Reachable", "Listener Crash on LB"}},
			{CategoryPerformanceIssue, []string{"Uneven Traffic Distribution", "SSL Termination Failures", "Session Stickiness Broken"}},
		}
	case ComponentFirewall:
		return []TitleSet{
			{CategorySecurityBreach, []string{"Unusual Port Scans Detected", "Unauthorized Access Attempt Blocked", "Inbound Traffic Spike"}},
			{CategoryIntegrationFailure, []string{"Firewall Blocking Legitimate Traffic", "Rule Misconfiguration", "Outbound Port Blocked"}},
		}
	case ComponentAuthenticationService:
		return []TitleSet{
			{CategorySecurityBreach, []string{"Multiple Failed Login Attempts", "Suspicious SSO Activity", "Brute Force Attempt Detected"}},
			{CategoryClientSupport, []string{"SSO Login Failures", "Token Expiry Mismatch", "MFA Provider Timeout"}},
		}
	case ComponentSFTPServer:
		return []TitleSet{
			{CategoryDataUpdate, []string{"SFTP Upload Permission Denied", "Key Exchange Failure", "Partial Transfers Detected"}},
			{CategoryIntegrationFailure, []string{"SFTP Connection Timeout", "Host Key Mismatch", "Batch Job Could Not Connect to SFTP"}},
		}
	case ComponentFileStorage:
		return []TitleSet{
			{CategoryDataUpdate, []string{"File Corruption Detected", "Checksum Mismatch on Object", "Stale Snapshot Restored"}},
			{CategoryPerformanceIssue, []string{"Object Store Latency", "Slow Reads from Storage", "Write Throughput Degradation"}},
		}
	case ComponentMonitoringSystem:
		return []TitleSet{
			{CategoryPerformanceIssue, []string{
				"Dashboard Query Latency", "Timeseries Backfill Lag", "Indexing Queue Backlog",
				"Alert Flood from Multiple Sources", "Agent Offline Across Nodes", "Metrics Ingestion Delay",
			}},
		}
	}
	return nil
}

var FallbackIncidentTitles = []TitleSet{
	{CategoryPerformanceIssue, []string{"Slow Response Times", "High Latency Detected", "Resource Exhaustion"}},
	{CategorySystemOutage, []string{"Service Unavailable", "Network Connectivity Lost", "Complete System Down"}},
	{CategoryIntegrationFailure, []string{"Third-party Service Down", "Data Flow Interrupted", "API Connection Failed"}},
	{CategorySecurityBreach, []string{"Unauthorized Access Detected", "Suspicious Activity", "Data Breach Alert"}},
	{CategoryDataUpdate, []string{"Data Sync Failed", "Database Update Error", "Record Corruption"}},
	{CategoryClientSupport, []string{"Login Issues", "Access Configuration Issue", "User Provisioning Error"}},
	{CategoryVendorIssue, []string{"Vendor Service Outage", "Third-party Performance Issues", "Vendor Communication Error"}},
}

type Incident struct {
	IncidentID        string           `json:"incident_id"`
	Title             string           `json:"title"`
	ReporterID        string           `json:"reporter_id"`
	AssignedManagerID *string          `json:"assigned_manager_id"`
	ClientID          string           `json:"client_id"`
	ComponentID       string           `json:"component_id"`
	Severity          Severity         `json:"severity"`
	Status            IncidentStatus   `json:"status"`
	Impact            Level            `json:"impact"`
	Urgency           Level            `json:"urgency"`
	Category          IncidentCategory `json:"category"`
	DetectedAt        Timestamp        `json:"detected_at"`
	ResolvedAt        *Timestamp       `json:"resolved_at"`
	ClosedAt          *Timestamp       `json:"closed_at"`
	RTOBreach         bool             `json:"rto_breach"`
	SLABreach         bool             `json:"sla_breach"`
	IsRecurring       bool             `json:"is_recurring"`
	DowntimeMinutes   int              `json:"downtime_minutes"`
	CreatedAt         Timestamp        `json:"created_at"`
	UpdatedAt         Timestamp        `json:"updated_at"`
}

func (i Incident) Key() string { return i.IncidentID }

// EndedAt is closed_at, else resolved_at, else nil.
func (i Incident) EndedAt() *Timestamp {
	if i.ClosedAt != nil {
		return i.ClosedAt
	}
	return i.ResolvedAt
}
