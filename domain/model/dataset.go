package model

import "github.com/pyama86/incidentseed/domain/entity"

// Dataset is the explicit generation context. Each stage reads the tables it
// declared as dependencies and fills exactly one new table.
type Dataset struct {
	Clients               []entity.Client
	Vendors               []entity.Vendor
	Users                 []entity.User
	Products              []entity.Product
	Components            []entity.InfrastructureComponent
	Subscriptions         []entity.ClientSubscription
	SLAAgreements         []entity.SLAAgreement
	Incidents             []entity.Incident
	Workarounds           []entity.Workaround
	RootCauseAnalyses     []entity.RootCauseAnalysis
	Communications        []entity.Communication
	IncidentUpdates       []entity.IncidentUpdate
	Escalations           []entity.Escalation
	ChangeRequests        []entity.ChangeRequest
	RollbackRequests      []entity.RollbackRequest
	Metrics               []entity.Metric
	IncidentReports       []entity.IncidentReport
	KnowledgeBaseArticles []entity.KnowledgeBaseArticle
	PostIncidentReviews   []entity.PostIncidentReview

	filled []entity.TableName
}

func NewDataset() *Dataset {
	return &Dataset{}
}

// MarkFilled records that a stage produced its table; tables are exported in
// this order.
func (d *Dataset) MarkFilled(name entity.TableName) {
	d.filled = append(d.filled, name)
}

func (d *Dataset) Filled() []entity.TableName {
	return append([]entity.TableName(nil), d.filled...)
}

func (d *Dataset) IsFilled(name entity.TableName) bool {
	for _, n := range d.filled {
		if n == name {
			return true
		}
	}
	return false
}

// Table returns the rows of a table in id order.
func (d *Dataset) Table(name entity.TableName) Table {
	var rows []entity.Record
	switch name {
	case entity.TableClients:
		rows = records(d.Clients)
	case entity.TableVendors:
		rows = records(d.Vendors)
	case entity.TableUsers:
		rows = records(d.Users)
	case entity.TableProducts:
		rows = records(d.Products)
	case entity.TableComponents:
		rows = records(d.Components)
	case entity.TableSubscriptions:
		rows = records(d.Subscriptions)
	case entity.TableSLAAgreements:
		rows = records(d.SLAAgreements)
	case entity.TableIncidents:
		rows = records(d.Incidents)
	case entity.TableWorkarounds:
		rows = records(d.Workarounds)
	case entity.TableRootCauseAnalyses:
		rows = records(d.RootCauseAnalyses)
	case entity.TableCommunications:
		rows = records(d.Communications)
	case entity.TableIncidentUpdates:
		rows = records(d.IncidentUpdates)
	case entity.TableEscalations:
		rows = records(d.Escalations)
	case entity.TableChangeRequests:
		rows = records(d.ChangeRequests)
	case entity.TableRollbackRequests:
		rows = records(d.RollbackRequests)
	case entity.TableMetrics:
		rows = records(d.Metrics)
	case entity.TableIncidentReports:
		rows = records(d.IncidentReports)
	case entity.TableKnowledgeBaseArticles:
		rows = records(d.KnowledgeBaseArticles)
	case entity.TablePostIncidentReviews:
		rows = records(d.PostIncidentReviews)
	}
	return Table{Name: name, Rows: rows}
}

// Tables returns every filled table in the order the stages ran.
func (d *Dataset) Tables() []Table {
	tables := make([]Table, 0, len(d.filled))
	for _, name := range d.filled {
		tables = append(tables, d.Table(name))
	}
	return tables
}

func records[T entity.Record](rows []T) []entity.Record {
	out := make([]entity.Record, len(rows))
	for i := range rows {
		out[i] = rows[i]
	}
	return out
}
