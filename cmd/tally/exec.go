package main

import (
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tally/internal/cli"
)

var execKeepGoing bool

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Run each argument as one tally command",
	Example: `  tally exec 'add robin 5' 'add "blue jay" 4' 'inc robin' show
  tally --title Birds exec 'add sparrow 10' by-count export`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		interp, err := session(cmd)
		if err != nil {
			return err
		}

		errColor := color.New(color.FgRed)
		if cfg.NoColor {
			errColor.DisableColor()
		}

		var failed error
		for _, line := range args {
			err := interp.Exec(cmd.Context(), line)
			if errors.Is(err, cli.ErrExit) {
				break
			}
			if err == nil {
				continue
			}
			if !execKeepGoing {
				return errors.Wrapf(err, "command %q", line)
			}
			cli.Report(cmd.ErrOrStderr(), errColor, err)
			if failed == nil {
				failed = errors.Errorf("command %q failed", line)
			}
		}
		return failed
	},
}

func init() {
	execCmd.Flags().BoolVarP(&execKeepGoing, "keep-going", "k", false, "report failed commands and continue with the rest")
	rootCmd.AddCommand(execCmd)
}
