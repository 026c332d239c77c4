package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/formal-bridge/internal/classification"
	"github.com/Veraticus/formal-bridge/internal/ingest"
	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/Veraticus/formal-bridge/internal/prescribed"
	"github.com/charmbracelet/lipgloss"
)

// WriteStripped reports removed PII columns.
func WriteStripped(w io.Writer, r ingest.StripResult) {
	for _, msg := range r.Warnings {
		fmt.Fprintln(w, FormatInfo(msg))
	}
}

// WriteIntegrityReport renders the sanitization gate.
func WriteIntegrityReport(w io.Writer, r model.IntegrityReport) {
	fmt.Fprintln(w, FormatTitle("Data Integrity Report"))

	content := fmt.Sprintf("Rows: %d\nValid: %d\nBlocking: %d\nWarnings: %d\nInfo: %d",
		r.TotalRows, r.ValidRows, r.BlockingIssues, r.WarningIssues, r.InfoIssues)
	fmt.Fprintln(w, RenderBox(ShieldIcon+" Integrity", content))

	for _, line := range r.Summary {
		fmt.Fprintln(w, "  "+line)
	}

	if len(r.AmountIssues) > 0 {
		fmt.Fprintln(w)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			TableHeaderStyle.Render("Row"),
			TableHeaderStyle.Render("Creditor"),
			TableHeaderStyle.Render("Code"),
			TableHeaderStyle.Render("Issue"))
		for _, issue := range r.AmountIssues {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
				issue.RowNumber, issue.CreditorName, issue.Warning.Code, severityStyle(issue.Warning.Severity).Render(issue.Warning.Message))
		}
		_ = tw.Flush()
	}

	for _, g := range r.DuplicateGroups {
		rows := make([]string, len(g.Members))
		for i, m := range g.Members {
			rows[i] = fmt.Sprint(m.RowNumber)
		}
		msg := fmt.Sprintf("%s (rows %s)", g.Message, strings.Join(rows, ", "))
		if g.Severity == model.SeverityWarning {
			fmt.Fprintln(w, FormatWarning(msg))
		} else {
			fmt.Fprintln(w, FormatInfo(msg))
		}
	}

	fmt.Fprintln(w)
	if r.CanProceed {
		fmt.Fprintln(w, FormatSuccess("Batch may proceed to classification"))
	} else {
		fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf("%s Certification blocked: resolve %d blocking %s",
			BlockedIcon, r.BlockingIssues, pluralize(r.BlockingIssues, "issue", "issues"))))
	}
}

// WriteDateIssues lists advisory claim date problems.
func WriteDateIssues(w io.Writer, issues []model.RowIssue) {
	for _, issue := range issues {
		fmt.Fprintln(w, FormatWarning(fmt.Sprintf("Row %d (%s): %s", issue.RowNumber, issue.CreditorName, issue.Warning.Message)))
	}
}

// WriteClassification renders tier breaches and exposure.
func WriteClassification(w io.Writer, r model.ClassificationResult) {
	fmt.Fprintln(w, FormatTitle("Classification Analysis"))

	if len(r.Warnings) == 0 {
		fmt.Fprintln(w, FormatSuccess("No classification issues found"))
		return
	}

	for _, cw := range r.Warnings {
		style := WarningStyle
		if cw.Severity == model.ClassificationCritical {
			style = ErrorStyle
		}
		fmt.Fprintln(w, style.Render(fmt.Sprintf("Row %d  %s  %s", cw.RowNumber, cw.CreditorName, cw.Rule)))
		fmt.Fprintf(w, "    Tier %s → %s  %s\n", cw.CurrentTier, cw.SuggestedTier, prescribed.FormatAmount(cw.Amount))
		fmt.Fprintln(w, SubtleStyle.Render("    "+cw.RegulatoryBreach))
		fmt.Fprintln(w, SubtleStyle.Render("    "+cw.ImpactDescription))
	}

	content := fmt.Sprintf("Critical: %d\nWarnings: %d\nCrown exposure: %s\nEmployee exposure: %s\nTotal at risk: %s",
		r.Summary.CriticalCount, r.Summary.WarningCount,
		prescribed.FormatAmount(r.CrownGapTotal), prescribed.FormatAmount(r.WagesGapTotal), prescribed.FormatAmount(r.TotalAtRisk))
	fmt.Fprintln(w, RenderBox(ScalesIcon+" Exposure", content))
}

// WriteCorrections lists tiers changed by auto-correct.
func WriteCorrections(w io.Writer, corrections []classification.Correction) {
	if len(corrections) == 0 {
		return
	}
	fmt.Fprintln(w, FormatSuccess(fmt.Sprintf("Applied %d %s", len(corrections),
		pluralize(len(corrections), "correction", "corrections"))))
	for _, c := range corrections {
		fmt.Fprintf(w, "    Row %d  %s: %s → %s\n", c.RowNumber, c.Name, c.From, c.To)
	}
}

// WriteTierTotals renders the waterfall totals.
func WriteTierTotals(w io.Writer, totals classification.TierTotals) {
	fmt.Fprintln(w, FormatTitle("Tier Totals"))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
		TableHeaderStyle.Render("Tier"),
		TableHeaderStyle.Render("Description"),
		TableHeaderStyle.Render("Total"))
	for _, tier := range model.AllTiers() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", tier, tier.Description(), prescribed.FormatAmount(totals[tier]))
	}
	_ = tw.Flush()
}

// WriteTiers lists the closed tier enumeration.
func WriteTiers(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", TableHeaderStyle.Render("Tier"), TableHeaderStyle.Render("Description"))
	fmt.Fprintf(tw, "%s\t%s\n", strings.Repeat("-", 4), strings.Repeat("-", 40))
	for _, tier := range model.AllTiers() {
		fmt.Fprintf(tw, "%s\t%s\n", tier, tier.Description())
	}
	_ = tw.Flush()
}

// WritePrescribed renders a finalisation with its verification trace.
func WritePrescribed(w io.Writer, out prescribed.Outcome) {
	fmt.Fprintln(w, FormatTitle("Prescribed Part"))

	r := out.Result
	content := fmt.Sprintf("Net property: %s\nCap: %s\nPrescribed part: %s\nBasis: %s",
		prescribed.FormatAmount(r.NetProperty), prescribed.FormatCurrency(r.CapApplied),
		prescribed.FormatCurrency(r.FinalAmount), r.LegislativeBasis)
	fmt.Fprintln(w, RenderBox(LedgerIcon+" "+prescribed.FormatDate(r.ReferenceDate), content))

	for i, step := range r.VerificationSteps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
	for _, note := range out.Notes {
		fmt.Fprintln(w, FormatInfo(note))
	}
	if out.NilDistribution {
		fmt.Fprintln(w, FormatWarning("Nil distribution"))
	}
	if r.WasCapped {
		fmt.Fprintln(w, FormatWarning("Statutory cap applied"))
	}
}

func severityStyle(s model.Severity) lipgloss.Style {
	switch s {
	case model.SeverityBlocking:
		return ErrorStyle
	case model.SeverityWarning:
		return WarningStyle
	default:
		return InfoStyle
	}
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
