package generator

import (
	"context"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
)

var (
	openReportTypes = []entity.ReportType{
		entity.ReportExecutiveSummary, entity.ReportTechnicalDetails, entity.ReportBusinessImpact, entity.ReportCompliance,
	}
	openReportStatuses    = []entity.ReportStatus{entity.ReportDraft, entity.ReportCompleted}
	settledReportStatuses = []entity.ReportStatus{entity.ReportDraft, entity.ReportCompleted, entity.ReportDistributed}
)

// generateIncidentReports writes one report per incident. Post-mortems and
// distributed reports wait until the incident is resolved.
func (g *Generator) generateIncidentReports(_ context.Context, ds *model.Dataset) (int, error) {
	authors, err := staff(ds, entity.TableIncidentReports, "report authors",
		entity.RoleIncidentManager, entity.RoleAccountManager, entity.RoleExecutive)
	if err != nil {
		return 0, err
	}

	reports := make([]entity.IncidentReport, 0, len(ds.Incidents))
	for _, inc := range ds.Incidents {
		author := choice(g.rng, authors)
		types, statuses := entity.ReportTypes, settledReportStatuses
		if !inc.Status.Settled() {
			types, statuses = openReportTypes, openReportStatuses
		}
		reportType := choice(g.rng, types)
		status := choice(g.rng, statuses)
		generated := entity.At(timeBetween(g.rng, inc.CreatedAt.Time, g.now()))
		reports = append(reports, entity.IncidentReport{
			ReportID:      id(len(reports) + 1),
			IncidentID:    inc.IncidentID,
			ReportType:    reportType,
			GeneratedByID: author.UserID,
			GeneratedAt:   generated,
			Status:        status,
			CreatedAt:     generated,
		})
	}
	ds.IncidentReports = reports
	return len(reports), nil
}
