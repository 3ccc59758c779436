package entity

type TableName string

const (
	TableClients               TableName = "clients"
	TableVendors               TableName = "vendors"
	TableUsers                 TableName = "users"
	TableProducts              TableName = "products"
	TableComponents            TableName = "infrastructure_components"
	TableSubscriptions         TableName = "client_subscriptions"
	TableSLAAgreements         TableName = "sla_agreements"
	TableIncidents             TableName = "incidents"
	TableWorkarounds           TableName = "workarounds"
	TableRootCauseAnalyses     TableName = "root_cause_analysis"
	TableCommunications        TableName = "communications"
	TableIncidentUpdates       TableName = "incident_updates"
	TableEscalations           TableName = "escalations"
	TableChangeRequests        TableName = "change_requests"
	TableRollbackRequests      TableName = "rollback_requests"
	TableMetrics               TableName = "metrics"
	TableIncidentReports       TableName = "incident_reports"
	TableKnowledgeBaseArticles TableName = "knowledge_base_articles"
	TablePostIncidentReviews   TableName = "post_incident_reviews"
)

// Record is a row addressable by its stringified sequential id.
type Record interface {
	Key() string
}
