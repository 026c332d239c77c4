package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/formal-bridge/internal/classification"
	"github.com/Veraticus/formal-bridge/internal/cli"
	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/config"
	"github.com/Veraticus/formal-bridge/internal/ingest"
	"github.com/Veraticus/formal-bridge/internal/pipeline"
	"github.com/Veraticus/formal-bridge/internal/prescribed"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// auditReport is the --json document.
type auditReport struct {
	*pipeline.Outcome
	Prescribed *prescribed.Outcome `json:"prescribed_part,omitempty"`
	File       string              `json:"file"`
	InputHash  string              `json:"input_sha256"`
}

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <file.csv>",
		Short: "Sanitize and classify a creditor schedule",
		Long: `Read a creditor schedule, strip personal data columns, sanitize every amount,
and report integrity issues. When no blocking issues remain, check each creditor
against the statutory priority rules and total the tiers.

Exits non-zero while the schedule has blocking issues.`,
		Args: cobra.ExactArgs(1),
		RunE: runAudit,
	}

	cmd.Flags().Bool("auto-correct", false, "Apply suggested tiers and re-run the analysis")
	cmd.Flags().Bool("json", false, "Emit the full outcome as JSON")
	cmd.Flags().Int("workers", 0, "Concurrent amount sanitizers (default: number of CPUs)")
	cmd.Flags().String("vocabulary", "", "YAML file overriding the classification vocabulary")
	cmd.Flags().String("name-column", "", "Column holding creditor names")
	cmd.Flags().String("amount-column", "", "Column holding claim amounts")
	cmd.Flags().String("tier-column", "", "Column holding the current tier (optional)")
	cmd.Flags().String("date-column", "", "Column holding claim dates (optional)")
	cmd.Flags().Int("header-row", 0, "Spreadsheet row number of the header")
	cmd.Flags().Float64("assets", 0, "Total floating charge realisations; enables the prescribed part")
	cmd.Flags().Float64("costs", 0, "Costs deducted before the prescribed part")
	cmd.Flags().String("charge-date", "", "Date the floating charge was created")
	cmd.Flags().Bool("de-minimis", false, "Elect the s.176A(3) de minimis exception when available")

	// Bind to viper
	_ = viper.BindPFlag("auto_correct", cmd.Flags().Lookup("auto-correct"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("vocabulary", cmd.Flags().Lookup("vocabulary"))
	_ = viper.BindPFlag("columns.name", cmd.Flags().Lookup("name-column"))
	_ = viper.BindPFlag("columns.amount", cmd.Flags().Lookup("amount-column"))
	_ = viper.BindPFlag("columns.tier", cmd.Flags().Lookup("tier-column"))
	_ = viper.BindPFlag("columns.date", cmd.Flags().Lookup("date-column"))
	_ = viper.BindPFlag("columns.header_row", cmd.Flags().Lookup("header-row"))

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	path := config.ExpandPath(args[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return common.NewUserError("Could not read the creditor schedule", err)
	}

	hash, err := ingest.Fingerprint(bytes.NewReader(data))
	if err != nil {
		return err
	}

	sheet, err := ingest.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return common.NewUserError("Could not parse the creditor schedule", err)
	}

	opts := pipeline.DefaultOptions()
	opts.Workers = cfg.Workers
	opts.AutoCorrect = cfg.AutoCorrect
	if cfg.VocabularyPath != "" {
		detector, err := classification.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			return common.NewUserError("Could not load the classification vocabulary", err)
		}
		opts.Analyzer = classification.NewAnalyzer(detector)
	}

	progress := cli.NewProgress(cmd.ErrOrStderr(), len(sheet.Rows), "Sanitizing amounts...")
	opts.Progress = progress.Func()

	outcome, err := pipeline.Run(cmd.Context(), sheet, cfg.Columns, opts)
	if err != nil {
		common.LogError(err, "audit failed", common.Fields{"file": path, "rows": len(sheet.Rows)})
		return common.NewUserError("Audit failed", err)
	}

	var pp *prescribed.Outcome
	if cmd.Flags().Changed("assets") && !outcome.Blocked() {
		pp, err = finaliseFromFlags(cmd, outcome)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		if err := writeJSON(out, auditReport{Outcome: outcome, Prescribed: pp, File: path, InputHash: hash}); err != nil {
			return err
		}
	} else {
		writeAudit(out, path, hash, outcome, pp)
	}

	if outcome.Blocked() {
		return common.NewUserError(
			fmt.Sprintf("Certification blocked by %d unresolved issue(s)", outcome.Report.BlockingIssues),
			common.ErrBlockingIssues)
	}
	return nil
}

func finaliseFromFlags(cmd *cobra.Command, outcome *pipeline.Outcome) (*prescribed.Outcome, error) {
	assets, _ := cmd.Flags().GetFloat64("assets")
	costs, _ := cmd.Flags().GetFloat64("costs")
	deMinimis, _ := cmd.Flags().GetBool("de-minimis")
	rawDate, _ := cmd.Flags().GetString("charge-date")

	chargeDate, err := parseChargeDate(rawDate)
	if err != nil {
		return nil, err
	}

	net := classification.CalculateNetProperty(assets, outcome.Eligible)
	result := prescribed.Finalise(prescribed.Finalisation{
		NetFloatingChargeProperty: net.NetProperty,
		Costs:                     costs,
		ChargeDate:                chargeDate,
		ApplyDeMinimis:            deMinimis,
	})
	return &result, nil
}

func writeAudit(w io.Writer, path, hash string, outcome *pipeline.Outcome, pp *prescribed.Outcome) {
	fmt.Fprintln(w, cli.FormatTitle("Auditing "+path))
	fmt.Fprintln(w, cli.SubtleStyle.Render("Input SHA-256: "+ingest.ShortHash(hash)))
	cli.WriteStripped(w, outcome.Stripped)
	fmt.Fprintln(w)

	cli.WriteIntegrityReport(w, outcome.Report)
	cli.WriteDateIssues(w, outcome.DateIssues)
	if outcome.Blocked() {
		return
	}

	fmt.Fprintln(w)
	if outcome.Initial != nil {
		cli.WriteClassification(w, *outcome.Initial)
		cli.WriteCorrections(w, outcome.Corrections)
		fmt.Fprintln(w)
	}
	cli.WriteClassification(w, *outcome.Classification)
	fmt.Fprintln(w)
	cli.WriteTierTotals(w, outcome.TierTotals)

	if pp != nil {
		fmt.Fprintln(w)
		cli.WritePrescribed(w, *pp)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
