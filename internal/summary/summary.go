// Package summary aggregates the savings recorded across all coupons and
// renders them for display.
package summary

import (
	"fmt"
	"io"
	"strings"

	"couponstash/internal/core"
)

const (
	SavedTotalPreMessage = "You saved a total of "
	SaveablesPreMessage  = "And these saveables too!"

	// DefaultChartWidth is the length, in characters, of the longest bar.
	DefaultChartWidth = 40
)

type (
	// Point is one bar of the savings chart: what was saved on a day.
	Point struct {
		Date      core.Date
		Label     string
		Value     float64
		ValueText string
	}

	// Report is the savings summary over every coupon in the stash.
	Report struct {
		Points    []Point
		Total     core.PureMonetarySavings
		TotalText string
		Saveables []string
	}
)

// Aggregate merges the savings history of every coupon. The total is the
// fold of all entries starting from zero savings.
func Aggregate(coupons []core.Coupon) (core.DateSavingsSumMap, core.PureMonetarySavings) {
	all := core.NewDateSavingsSumMap()
	for _, c := range coupons {
		all.AddAll(c.SavingsMap())
	}
	return all, all.Total()
}

// Build turns the aggregated savings into chart points, earliest day first.
func Build(coupons []core.Coupon, moneySymbol string) Report {
	all, total := Aggregate(coupons)

	r := Report{
		Total:     total,
		TotalText: total.MonetaryAmount().StringWithSymbol(moneySymbol),
	}
	for _, day := range all.Dates() {
		s, _ := all.Get(day)
		value := s.MonetaryAmount().Float64()
		r.Points = append(r.Points, Point{
			Date:      day,
			Label:     day.String(),
			Value:     value,
			ValueText: formatMoneyAmount(value),
		})
	}
	for _, sv := range total.Saveables() {
		r.Saveables = append(r.Saveables, sv.String())
	}
	return r
}

// RenderBarChart writes the report as a horizontal text bar chart. Bars are
// scaled so the largest day spans width characters.
func RenderBarChart(w io.Writer, r Report, width int) error {
	if width <= 0 {
		width = DefaultChartWidth
	}

	var b strings.Builder
	b.WriteString(SavedTotalPreMessage)
	b.WriteString(r.TotalText)
	b.WriteString("\n")

	var largest float64
	labelWidth := 0
	for _, p := range r.Points {
		largest = max(largest, p.Value)
		labelWidth = max(labelWidth, len(p.Label))
	}
	for _, p := range r.Points {
		bar := 0
		if largest > 0 {
			bar = int(p.Value / largest * float64(width))
		}
		if bar == 0 && p.Value > 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "%-*s | %s %s\n", labelWidth, p.Label, strings.Repeat("#", bar), p.ValueText)
	}

	if len(r.Saveables) > 0 {
		b.WriteString(SaveablesPreMessage)
		b.WriteString("\n")
		for _, s := range r.Saveables {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write savings chart: %w", err)
	}
	return nil
}

func formatMoneyAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
