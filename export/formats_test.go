package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/forshine-dev/shinebuilder/dtos"
	"github.com/stretchr/testify/assert"
)

func sampleReport() dtos.CoverageReport {
	return dtos.CoverageReport{
		PerPillar: []dtos.PillarStats{
			{
				Pillar:           "Shine In",
				TotalBehaviors:   4,
				CoveredBehaviors: 3,
				Coverage:         75,
				Missing: []dtos.GapTuple{
					{Pillar: "Shine In", SubComponent: "Awareness", Competence: "Self-knowledge", Behavior: "Names own triggers"},
				},
			},
			{
				Pillar:           "Shine Out",
				TotalBehaviors:   2,
				CoveredBehaviors: 2,
				Coverage:         100,
			},
		},
		GlobalMissing: []dtos.GapTuple{
			{Pillar: "Shine In", SubComponent: "Awareness", Competence: "Self-knowledge", Behavior: "Names own triggers"},
		},
		TotalGaps:   1,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetFormatInfo(t *testing.T) {
	t.Run("should return metadata for known formats", func(t *testing.T) {
		info, ok := GetFormatInfo(FormatMarkdown)
		assert.True(t, ok)
		assert.Equal(t, "text/markdown", info.MIMEType)
		assert.Equal(t, ".md", info.Extension)

		info, ok = GetFormatInfo(FormatJSON)
		assert.True(t, ok)
		assert.Equal(t, "application/json", info.MIMEType)
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		_, ok := GetFormatInfo(Format("pdf"))
		assert.False(t, ok)
	})
}

func TestRenderMarkdown(t *testing.T) {
	t.Run("should render pillar stats and gaps as tables", func(t *testing.T) {
		out, err := Render(sampleReport(), FormatMarkdown)
		assert.Nil(t, err)

		md := string(out)
		assert.Contains(t, md, "# Taxonomy Coverage Report")
		assert.Contains(t, md, "Generated at 2025-06-01 12:00:00 UTC")
		assert.Contains(t, md, "| Shine In | 4 | 3 | 75% |")
		assert.Contains(t, md, "| Shine Out | 2 | 2 | 100% |")
		assert.Contains(t, md, "## Gaps (1)")
		assert.Contains(t, md, "| Shine In | Awareness | Self-knowledge | Names own triggers |")
	})

	t.Run("should say so when there are no gaps", func(t *testing.T) {
		report := sampleReport()
		report.GlobalMissing = nil
		report.TotalGaps = 0

		out, err := Render(report, FormatMarkdown)
		assert.Nil(t, err)
		assert.Contains(t, string(out), "No gaps - every behavior is covered by validated content.")
	})

	t.Run("should escape pipes in taxonomy names", func(t *testing.T) {
		report := sampleReport()
		report.PerPillar[0].Pillar = "Shine|In"

		out, err := Render(report, FormatMarkdown)
		assert.Nil(t, err)
		assert.Contains(t, string(out), `Shine\|In`)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		first, err := Render(sampleReport(), FormatMarkdown)
		assert.Nil(t, err)
		second, err := Render(sampleReport(), FormatMarkdown)
		assert.Nil(t, err)
		assert.Equal(t, first, second)
	})
}

func TestRenderHTML(t *testing.T) {
	t.Run("should render a standalone page", func(t *testing.T) {
		out, err := Render(sampleReport(), FormatHTML)
		assert.Nil(t, err)

		html := string(out)
		assert.Contains(t, html, "<html")
		assert.Contains(t, html, "Shine In")
		assert.Contains(t, html, "Names own triggers")
	})

	t.Run("should escape markup in taxonomy names", func(t *testing.T) {
		report := sampleReport()
		report.GlobalMissing[0].Behavior = "<script>alert(1)</script>"

		out, err := Render(report, FormatHTML)
		assert.Nil(t, err)
		assert.False(t, strings.Contains(string(out), "<script>alert(1)</script>"))
	})
}

func TestRenderJSON(t *testing.T) {
	t.Run("should round-trip through the report wire format", func(t *testing.T) {
		out, err := Render(sampleReport(), FormatJSON)
		assert.Nil(t, err)

		var decoded dtos.CoverageReport
		assert.Nil(t, json.Unmarshal(out, &decoded))
		assert.Equal(t, sampleReport(), decoded)
	})
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(sampleReport(), Format("pdf"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
