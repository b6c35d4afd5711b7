package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/etnz/mbank"
)

// FlowRow is one day of the daily or cumulative flow series.
type FlowRow struct {
	Day    string
	Income float64
	Spend  float64
}

// SourceRow is one labelled slice of the income/spend source breakdowns.
type SourceRow struct {
	Name   string
	Amount float64
}

// CashFlow is the render model for the cash-flow report.
type CashFlow struct {
	Scope         string
	TotalIncome   float64
	TotalSpend    float64
	Days          []FlowRow
	Cumulative    []FlowRow
	IncomeSources []SourceRow
	SpendSources  []SourceRow
	Suggestion    string
}

// Net is the income minus spend total.
func (c *CashFlow) Net() float64 { return c.TotalIncome - c.TotalSpend }

// NewCashFlow assembles the render model from a report: series sorted by day,
// sources sorted by descending amount.
func NewCashFlow(scope string, report mbank.CashFlowReport) *CashFlow {
	summary := report.Summary
	return &CashFlow{
		Scope:         scope,
		TotalIncome:   summary.TotalIncome,
		TotalSpend:    summary.TotalSpend,
		Days:          flowRows(summary.DailyFlow),
		Cumulative:    flowRows(summary.CumulativeFlow),
		IncomeSources: sourceRows(summary.IncomeSources),
		SpendSources:  sourceRows(summary.SpendSources),
		Suggestion:    report.Suggestion,
	}
}

func flowRows(flow map[string]mbank.FlowPoint) []FlowRow {
	rows := make([]FlowRow, 0, len(flow))
	for day, point := range flow {
		rows = append(rows, FlowRow{Day: day, Income: point.Income, Spend: point.Spend})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Day < rows[j].Day })
	return rows
}

func sourceRows(sources map[string]float64) []SourceRow {
	rows := make([]SourceRow, 0, len(sources))
	for name, amount := range sources {
		rows = append(rows, SourceRow{Name: name, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// CashFlowMarkdown renders the cash-flow report. A scope without any flow at
// all yields a no-data status instead of a zeroed report. The cumulative
// section is omitted entirely when the server response did not carry the
// series.
func CashFlowMarkdown(scope string, report mbank.CashFlowReport) string {
	if report.Summary.Empty() {
		var b strings.Builder
		fmt.Fprintf(&b, "# Cash Flow — %s\n\n_no data for %s_\n", scope, scope)
		if report.Suggestion != "" {
			fmt.Fprintf(&b, "\n> %s\n", report.Suggestion)
		}
		return b.String()
	}
	partials := map[string]string{
		"cash_flow_sources": "cash_flow_sources.md",
	}
	// Older or partial responses may omit the cumulative series.
	if len(report.Summary.CumulativeFlow) > 0 {
		partials["cash_flow_cumulative"] = "cash_flow_cumulative.md"
	} else {
		partials["cash_flow_cumulative"] = ""
	}
	return renderTemplate("cashFlow", "cash_flow.md", partials, NewCashFlow(scope, report))
}
