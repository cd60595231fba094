package export

import (
	"bytes"
	"html/template"

	"github.com/forshine-dev/shinebuilder/dtos"
)

var htmlTemplate = template.Must(template.New("coverage").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Taxonomy Coverage Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; margin-bottom: 2rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #f4f4f4; }
td.num { text-align: right; }
</style>
</head>
<body>
<h1>Taxonomy Coverage Report</h1>
<p>Generated at {{.GeneratedAt.UTC.Format "2006-01-02 15:04:05 UTC"}}</p>
<table>
<tr><th>Pillar</th><th>Behaviors</th><th>Covered</th><th>Coverage</th></tr>
{{range .PerPillar}}<tr><td>{{.Pillar}}</td><td class="num">{{.TotalBehaviors}}</td><td class="num">{{.CoveredBehaviors}}</td><td class="num">{{.Coverage}}%</td></tr>
{{end}}</table>
<h2>Gaps ({{.TotalGaps}})</h2>
{{if .GlobalMissing}}<table>
<tr><th>Pillar</th><th>Sub-component</th><th>Competence</th><th>Behavior</th></tr>
{{range .GlobalMissing}}<tr><td>{{.Pillar}}</td><td>{{.SubComponent}}</td><td>{{.Competence}}</td><td>{{.Behavior}}</td></tr>
{{end}}</table>
{{else}}<p>No gaps - every behavior is covered by validated content.</p>
{{end}}</body>
</html>
`))

func renderHTML(report dtos.CoverageReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
