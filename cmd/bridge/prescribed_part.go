package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/formal-bridge/internal/cli"
	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/Veraticus/formal-bridge/internal/prescribed"
	"github.com/Veraticus/formal-bridge/internal/sanitize"
	"github.com/spf13/cobra"
)

func prescribedPartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescribed-part",
		Short: "Compute the s.176A prescribed part",
		Long: `Compute the prescribed part set aside for unsecured creditors from the net
floating charge property, with every step of the calculation shown.

The cap is £600,000 for floating charges created before 6 April 2020 and
£800,000 from that date.`,
		Example: `  bridge prescribed-part --net-property 450000 --charge-date 01/01/2024
  bridge prescribed-part --net-property 9000 --costs 1000 --charge-date 2021-05-01 --de-minimis`,
		Args: cobra.NoArgs,
		RunE: runPrescribedPart,
	}

	cmd.Flags().Float64("net-property", 0, "Net floating charge property")
	cmd.Flags().Float64("costs", 0, "Costs deducted before the prescribed part")
	cmd.Flags().String("charge-date", "", "Date the floating charge was created")
	cmd.Flags().Bool("de-minimis", false, "Elect the s.176A(3) de minimis exception when available")
	cmd.Flags().Bool("json", false, "Emit the result as JSON")
	_ = cmd.MarkFlagRequired("net-property")
	_ = cmd.MarkFlagRequired("charge-date")

	return cmd
}

func runPrescribedPart(cmd *cobra.Command, _ []string) error {
	net, _ := cmd.Flags().GetFloat64("net-property")
	costs, _ := cmd.Flags().GetFloat64("costs")
	deMinimis, _ := cmd.Flags().GetBool("de-minimis")
	rawDate, _ := cmd.Flags().GetString("charge-date")

	chargeDate, err := parseChargeDate(rawDate)
	if err != nil {
		return err
	}

	outcome := prescribed.Finalise(prescribed.Finalisation{
		NetFloatingChargeProperty: net,
		Costs:                     costs,
		ChargeDate:                chargeDate,
		ApplyDeMinimis:            deMinimis,
	})

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), outcome)
	}
	cli.WritePrescribed(cmd.OutOrStdout(), outcome)
	return nil
}

// parseChargeDate accepts any format the date sanitizer understands.
func parseChargeDate(raw string) (time.Time, error) {
	d := sanitize.Date(raw)
	if !d.IsValid {
		msg := "unrecognized date"
		for _, w := range d.Warnings {
			if w.Severity == model.SeverityBlocking {
				msg = w.Message
				break
			}
		}
		return time.Time{}, common.NewUserError(fmt.Sprintf("Invalid --charge-date %q", raw),
			fmt.Errorf("%w: %s", common.ErrInvalidConfig, msg))
	}
	return d.Value, nil
}
