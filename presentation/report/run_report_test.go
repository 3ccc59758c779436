package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pyama86/incidentseed/domain/entity"
	"github.com/pyama86/incidentseed/domain/model"
	"github.com/pyama86/incidentseed/presentation/report"
)

func TestRender(t *testing.T) {
	summary := model.Summary{
		RunID: "run-1",
		Seed:  42,
		Tables: []model.TableCount{
			{Name: entity.TableClients, Rows: 120},
			{Name: entity.TableVendors, Rows: 100},
		},
		Destinations: []string{"json:out"},
		Elapsed:      2 * time.Second,
	}
	md := report.Render(summary, time.Date(2025, 9, 30, 9, 0, 0, 0, time.UTC))

	assert.Contains(t, md, "# Incident fixtures run-1")
	assert.Contains(t, md, "2025-09-30 09:00:00")
	assert.Contains(t, md, "220 rows in 2 tables (2s)")
	assert.Contains(t, md, "| clients | 120 |")
	assert.Contains(t, md, "- json:out")
}

func TestHTML(t *testing.T) {
	html := report.HTML("## テーブル\n\n| table | rows |\n|---|---:|\n| clients | 1 |\n\n<script>alert(1)</script>\n")

	assert.Contains(t, html, "<h2>テーブル</h2>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>clients</td>")
	assert.NotContains(t, html, "<script>")
}
