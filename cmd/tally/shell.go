package main

import (
	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/log"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run commands read from the terminal or standard input",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	interp, err := session(cmd)
	if err != nil {
		return err
	}
	sh := cli.NewShell(interp, cli.ShellConfig{
		Prompt:  cfg.Prompt,
		In:      cmd.InOrStdin(),
		ErrOut:  cmd.ErrOrStderr(),
		NoColor: cfg.NoColor,
	}, log.FromContext(cmd.Context()))
	return sh.Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
