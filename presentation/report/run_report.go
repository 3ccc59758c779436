package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pyama86/incidentseed/domain/model"
	"github.com/russross/blackfriday/v2"
)

// Render builds the markdown run report published alongside an export.
func Render(summary model.Summary, generatedAt time.Time) string {
	var tables strings.Builder
	tables.WriteString("| table | rows |\n|---|---:|\n")
	for _, t := range summary.Tables {
		fmt.Fprintf(&tables, "| %s | %d |\n", t.Name, t.Rows)
	}

	destinations := "-"
	if len(summary.Destinations) > 0 {
		destinations = "- " + strings.Join(summary.Destinations, "\n- ")
	}

	return fmt.Sprintf(`
# Incident fixtures %s

## 生成日時

%s

## シード

%d

## 件数

%d rows in %d tables (%s)

## テーブル

%s
## 出力先

%s
`, summary.RunID, generatedAt.Format("2006-01-02 15:04:05"), summary.Seed,
		summary.TotalRows(), len(summary.Tables), summary.Elapsed.Round(time.Millisecond),
		tables.String(), destinations)
}

// HTML converts a rendered report to sanitized HTML suitable for a wiki page body.
func HTML(markdown string) string {
	unsafe := blackfriday.Run([]byte(markdown), blackfriday.WithExtensions(blackfriday.CommonExtensions))
	return string(bluemonday.UGCPolicy().SanitizeBytes(unsafe))
}
