package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/payoffcalc/payoff-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a Chart.js chart and the debt table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlColumn struct {
	Label string
	Color string
}

type htmlCell struct {
	Value string
	// Style highlights paid-off cells in the scenario colour.
	Style template.CSS
}

type htmlRow struct {
	Month int
	Cells []htmlCell
}

func (h HTMLFormatter) Format(results *domain.PayoffComparison) ([]byte, error) {
	var buf bytes.Buffer
	plans := results.Scenarios.Plans()

	columns := make([]htmlColumn, 0, len(plans))
	totals := make([]string, 0, len(plans))
	for _, plan := range plans {
		columns = append(columns, htmlColumn{Label: plan.Scenario.Label(), Color: plan.Scenario.Color()})
		totals = append(totals, plan.TotalPaid.String())
	}

	rows := make([]htmlRow, 0, len(results.Table))
	for _, row := range results.Table {
		r := htmlRow{Month: row.Month}
		for i, cell := range rowCells(row) {
			c := htmlCell{Value: cell.String()}
			if c.Value == "0.00" {
				c.Style = template.CSS("background-color: " + columns[i].Color)
			}
			r.Cells = append(r.Cells, c)
		}
		rows = append(rows, r)
	}

	data := struct {
		*domain.PayoffComparison
		Summary     Summary
		Assumptions []string
		Columns     []htmlColumn
		Rows        []htmlRow
		Totals      []string
		Chart       ChartRecord
	}{results, Summarize(results), GenerateAssumptions(results), columns, rows, totals, BuildRecord(results).ChartData}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
