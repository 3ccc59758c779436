package blocks

import (
	"fmt"
	"strings"

	"github.com/pyama86/incidentseed/domain/model"
	"github.com/slack-go/slack"
)

// Slack rejects section blocks with more than ten fields.
const maxSectionFields = 10

func GenerationSummary(summary model.Summary) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject("plain_text", "🧪 Incident fixtures generated", false, false),
		),
		slack.NewSectionBlock(
			nil,
			[]*slack.TextBlockObject{
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Run:* `%s`", summary.RunID), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Seed:* %d", summary.Seed), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Rows:* %d in %d tables", summary.TotalRows(), len(summary.Tables)), false, false),
				slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Elapsed:* %s", summary.Elapsed.Round(1e6)), false, false),
			},
			nil,
		),
		slack.NewDividerBlock(),
	}

	var fields []*slack.TextBlockObject
	for _, t := range summary.Tables {
		fields = append(fields, slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*%s*\n%d", t.Name, t.Rows), false, false))
		if len(fields) == maxSectionFields {
			blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
			fields = nil
		}
	}
	if len(fields) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(nil, fields, nil))
	}

	if len(summary.Destinations) > 0 {
		blocks = append(blocks, slack.NewContextBlock(
			"destinations",
			slack.NewTextBlockObject("mrkdwn", "Exported to "+strings.Join(summary.Destinations, ", "), false, false),
		))
	}
	return blocks
}
