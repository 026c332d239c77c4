package main

import (
	"github.com/Veraticus/formal-bridge/internal/cli"
	"github.com/spf13/cobra"
)

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the statutory distribution tiers",
		Long:  `Display the closed set of distribution tiers in waterfall order.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cli.WriteTiers(cmd.OutOrStdout())
		},
	}
}
