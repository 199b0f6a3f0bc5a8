// Package report renders the analysis results page.
package report

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"autoready/internal/domain"
)

// defaultTemplate is used when no template path is configured. The
// contract is literal substitution of the two placeholders, so template
// files stay editable by non-Go tooling.
const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Workflow Automation-Readiness Results</title>
<style>
body { font-family: Calibri, Arial, sans-serif; font-size: 11pt; color: #1f1f1f; line-height: 1.35; margin: 24px; }
table { border-collapse: collapse; margin: 16px 0; }
th, td { border: 1px solid #c8c8c8; padding: 6px 10px; text-align: left; }
th { background: #f2f2f2; }
.explanation { max-width: 760px; margin-top: 16px; }
</style>
</head>
<body>
<h2>Workflow Automation-Readiness Results</h2>
<table>
<thead>
<tr>
<th>Department</th>
<th>Task Repetition</th>
<th>Workflow Complexity</th>
<th>Data Structure</th>
<th>Communication Frequency</th>
<th>Average Sentiment</th>
<th>Stakeholder Dependency</th>
<th>Time Spread (s)</th>
</tr>
</thead>
<tbody>
{{ROWS}}
</tbody>
</table>
<div class="explanation">{{EXPLANATION}}</div>
</body>
</html>
`

// Render substitutes the table rows and the explanation into the template.
// Sentiment and stakeholder dependency are rendered with two decimals; a
// missing department name renders as "N/A". The renderer expects an
// unfiltered table: every column is shown.
func Render(template string, table domain.FeatureTable, explanation string) string {
	var rows strings.Builder
	for _, rec := range table {
		name := rec.DepartmentName
		if name == "" {
			name = "N/A"
		}
		rows.WriteString("<tr>\n")
		rows.WriteString("<td>" + html.EscapeString(name) + "</td>\n")
		rows.WriteString("<td>" + strconv.Itoa(rec.TaskRepetitionScore) + "</td>\n")
		rows.WriteString("<td>" + strconv.Itoa(rec.WorkflowComplexity) + "</td>\n")
		rows.WriteString("<td>" + strconv.Itoa(rec.DataStructureScore) + "</td>\n")
		rows.WriteString("<td>" + strconv.Itoa(rec.CommunicationFrequency) + "</td>\n")
		rows.WriteString("<td>" + fmt.Sprintf("%.2f", rec.AverageSentiment) + "</td>\n")
		rows.WriteString("<td>" + fmt.Sprintf("%.2f", rec.StakeholderDependency) + "</td>\n")
		rows.WriteString("<td>" + strconv.FormatFloat(rec.TimeSpread, 'g', -1, 64) + "</td>\n")
		rows.WriteString("</tr>\n")
	}

	out := strings.ReplaceAll(template, "{{ROWS}}", rows.String())
	return strings.ReplaceAll(out, "{{EXPLANATION}}", html.EscapeString(explanation))
}

// RenderToFile writes the results page under outputDir with a date-stamped
// filename and returns the written path. An empty templatePath selects the
// embedded default template.
func RenderToFile(table domain.FeatureTable, explanation, templatePath, outputDir string, runDate time.Time) (string, error) {
	template := defaultTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		template = string(data)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("results_%s.html", runDate.Format("20060102"))
	path := filepath.Join(outputDir, filename)
	return path, os.WriteFile(path, []byte(Render(template, table, explanation)), 0644)
}
