package journal

import (
	"bytes"
	"text/template"
)

// Report is everything needed to write up one run.
type Report struct {
	Run    RunSummary
	Turns  []TurnRecord
	Totals []CategoryTotal
}

var reportFuncs = template.FuncMap{
	"money": func(x float64) string { return f(x) },
	"yearly": func(turns []TurnRecord) []TurnRecord {
		var out []TurnRecord
		for i, t := range turns {
			if i == len(turns)-1 || len(t.Date) >= 7 && t.Date[5:] == "12" {
				out = append(out, t)
			}
		}
		return out
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(`* Run {{ .Run.RunID }}
:PROPERTIES:
:RUN_ID: {{ .Run.RunID }}
:TURNS: {{ .Run.Turns }}
:FROM: {{ .Run.FirstDate }}
:TO: {{ .Run.LastDate }}
:OUTCOME: {{ .Run.Outcome }}
:NET_WORTH: {{ money .Run.FinalNetWorth }}
:END:

** Year end
| Date | Age | Cash | Savings | Debt | Net worth | Happiness |
|------+-----+------+---------+------+-----------+-----------|
{{- range yearly .Turns }}
| {{ .Date }} | {{ .Age }} | {{ money .Cash }} | {{ money .Savings }} | {{ money .Debt }} | {{ money .NetWorth }} | {{ .Happiness }} |
{{- end }}

** Cash flow by category
| Category | Income | Expense |
|----------+--------+---------|
{{- range .Totals }}
| {{ .Category }} | {{ money .Income }} | {{ money .Expense }} |
{{- end }}
`))

// FormatOrg renders r as an Org-mode section.
func FormatOrg(r Report) (string, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Report loads a run and everything FormatOrg needs.
func (j *SQLite) Report(runID string) (Report, error) {
	run, err := j.Run(runID)
	if err != nil {
		return Report{}, err
	}
	turns, err := j.ListTurns(runID)
	if err != nil {
		return Report{}, err
	}
	totals, err := j.Totals(runID)
	if err != nil {
		return Report{}, err
	}
	return Report{Run: run, Turns: turns, Totals: totals}, nil
}
