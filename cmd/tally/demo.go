package main

import (
	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/log"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through every tally operation on sample bird counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interp, err := session(cmd)
		if err != nil {
			return err
		}
		return cli.Demo(cmd.Context(), interp, cmd.OutOrStdout(), log.FromContext(cmd.Context()))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
