// Package report renders a projection as a year-by-year text table. All
// rounding of projection figures happens here, never in the engine.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"help-projector/domain"
)

var (
	displayTag = language.MustParse("en-AU")
	maxWhole   = decimal.NewFromInt(math.MaxInt64)
)

// Money formats an amount as whole Australian dollars, e.g. $70,000.
// Non-finite amounts render as n/a.
func Money(p *message.Printer, v float64) string {
	if !isFinite(v) {
		return "n/a"
	}
	d := decimal.NewFromFloat(v).Round(0)
	if d.Abs().GreaterThan(maxWhole) {
		return p.Sprintf("$%.0f", d.InexactFloat64())
	}
	return p.Sprintf("$%d", d.IntPart())
}

// WriteTable writes the headline and yearly breakdown of result to w.
func WriteTable(w io.Writer, result domain.ProjectionResult) error {
	p := message.NewPrinter(displayTag)

	if _, err := fmt.Fprintln(w, Headline(p, result)); err != nil {
		return err
	}
	if len(result.Snapshots) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tAge\tIncome\tVoluntary\tIndexation\tCompulsory\tEnd Balance\tNotes\t")

	var voluntary, indexation, compulsory []float64
	for _, s := range result.Snapshots {
		age := "-"
		if s.Age != nil {
			age = strconv.Itoa(*s.Age)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Year,
			age,
			Money(p, s.TaxableIncome),
			dashIfZero(p, s.VoluntaryRepayment),
			dashIfZero(p, s.IndexationAmount),
			dashIfZero(p, s.CompulsoryRepayment),
			Money(p, s.EndBalance),
			strings.Join(s.Notes, "; "),
		)
		voluntary = append(voluntary, s.VoluntaryRepayment)
		indexation = append(indexation, s.IndexationAmount)
		compulsory = append(compulsory, s.CompulsoryRepayment)
	}

	fmt.Fprintf(tw, "Total\t\t\t%s\t%s\t%s\t\t\t\n",
		sumMoney(p, voluntary),
		sumMoney(p, indexation),
		sumMoney(p, compulsory),
	)

	return tw.Flush()
}

// Headline summarizes the outcome in one sentence.
func Headline(p *message.Printer, result domain.ProjectionResult) string {
	summary := result.Summary
	if len(result.Snapshots) == 0 {
		return "Nothing to repay."
	}
	if !summary.DebtFree {
		return fmt.Sprintf("Not repaid within %d years. Total paid %s, indexation %s.",
			len(result.Snapshots), Money(p, summary.TotalPaid), Money(p, summary.TotalIndexation))
	}

	// años y edades sin separador de miles
	line := fmt.Sprintf("Debt free in %d years (%d", summary.YearsToRepay, summary.FinalYear)
	if summary.FinalAge != nil {
		line += fmt.Sprintf(", age %d", *summary.FinalAge)
	}
	return line + fmt.Sprintf("). Total paid %s, indexation %s.",
		Money(p, summary.TotalPaid), Money(p, summary.TotalIndexation))
}

func dashIfZero(p *message.Printer, v float64) string {
	if isFinite(v) && v <= 0 {
		return "-"
	}
	return Money(p, v)
}

// sumMoney adds values exactly; a single non-finite value makes the total n/a.
func sumMoney(p *message.Printer, values []float64) string {
	total := decimal.Zero
	for _, v := range values {
		if !isFinite(v) {
			return "n/a"
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Money(p, total.InexactFloat64())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
