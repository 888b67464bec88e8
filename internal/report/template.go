package report

const pageHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <style>
    body { font-family: -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; margin: 24px; }
    pre { background: #f6f8fa; padding: 16px; border-radius: 8px; overflow: auto; }
    table { border-collapse: collapse; margin: 8px 0 16px; }
    th, td { padding: 4px 12px; border-bottom: 1px solid #ddd; text-align: left; }
    td.num { text-align: right; }
    .meta { color: #555; margin-bottom: 16px; }
    .section-title { margin-top: 24px; }
    .chart svg { max-width: 100%; height: auto; }
    .fired { color: #b00020; }
    footer { color: #888; font-size: .8em; margin-top: 32px; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div class="meta">
    Contact: <strong>{{.Contact}}</strong><br/>
    This page includes the code and the generated visualization.
  </div>

  <h2 class="section-title">Visualization: Department Distribution</h2>
  <div class="chart">
{{.Chart}}
  </div>

  <h2 class="section-title">Summary</h2>
  <p>Frequency count for '{{.Summary.FocusDepartment}}' department: <strong>{{.Summary.FocusCount}}</strong> of {{.Summary.Rows}}</p>
  <table>
    <thead><tr><th>Department</th><th>Count</th></tr></thead>
    <tbody>
{{- range .Summary.Departments}}
      <tr><td>{{.Department}}</td><td class="num">{{.Count}}</td></tr>
{{- end}}
    </tbody>
  </table>
  <p>Performance score: mean {{printf "%.2f" .Summary.PerformanceMean}}, std dev {{printf "%.2f" .Summary.PerformanceStdDev}}.
     Satisfaction rating: mean {{printf "%.2f" .Summary.SatisfactionMean}}.</p>
{{- if .Checks}}

  <h2 class="section-title">Checks ({{.FiredChecks}} fired)</h2>
  <table>
    <thead><tr><th>Check</th><th>Severity</th><th>Condition</th><th>Value</th><th>Status</th></tr></thead>
    <tbody>
{{- range .Checks}}
      <tr{{if .Fired}} class="fired"{{end}}><td>{{.Name}}</td><td>{{.Severity}}</td><td><code>{{.Condition}}</code></td><td class="num">{{printf "%.2f" .Value}}</td><td>{{if .Invalid}}invalid{{else if .Fired}}fired{{else}}ok{{end}}</td></tr>
{{- end}}
    </tbody>
  </table>
{{- end}}

  <h2 class="section-title">Code</h2>
{{- if .CodeHTML}}
  {{.CodeHTML}}
{{- else}}
  <pre><code>{{.Code}}</code></pre>
{{- end}}

  <footer>Run {{.RunID}} · generated {{.GeneratedAt.UTC.Format "2006-01-02 15:04:05 MST"}}</footer>
</body>
</html>
`
