package export

import (
	"fmt"
	"strings"

	"github.com/forshine-dev/shinebuilder/dtos"
)

func renderMarkdown(report dtos.CoverageReport) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# Taxonomy Coverage Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated at %s\n\n", report.GeneratedAt.UTC().Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("| Pillar | Behaviors | Covered | Coverage |\n")
	sb.WriteString("| --- | ---: | ---: | ---: |\n")
	for _, pillar := range report.PerPillar {
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d%% |\n",
			escapeMarkdown(pillar.Pillar), pillar.TotalBehaviors, pillar.CoveredBehaviors, pillar.Coverage))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("## Gaps (%d)\n\n", report.TotalGaps))
	if len(report.GlobalMissing) == 0 {
		sb.WriteString("No gaps - every behavior is covered by validated content.\n")
		return []byte(sb.String()), nil
	}

	sb.WriteString("| Pillar | Sub-component | Competence | Behavior |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	for _, gap := range report.GlobalMissing {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			escapeMarkdown(gap.Pillar), escapeMarkdown(gap.SubComponent),
			escapeMarkdown(gap.Competence), escapeMarkdown(gap.Behavior)))
	}

	return []byte(sb.String()), nil
}

// escapeMarkdown keeps taxonomy names from breaking the table layout.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
