package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/log"
)

var (
	rootTitle    string
	rootLogLevel string

	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Keep tally sheets of category counts",
	Long: `tally keeps named tally sheets in memory. Each sheet has a title and a set
of categories with non-negative counts. Without a subcommand an interactive
shell starts on a sheet called "main"; type help for the commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.LoadEnvFile()

		var err error
		cfg, err = cli.LoadAndValidateConfig(func(c *config.Config) {
			if cmd.Flags().Changed("title") {
				c.Title = rootTitle
			}
			if cmd.Flags().Changed("log-level") {
				c.LogLevel = rootLogLevel
			}
		})
		if err != nil {
			return err
		}

		logger = cli.SetupLogger(cfg)
		cmd.SetContext(log.NewContext(cmd.Context(), logger))
		logger.Debug("configuration loaded", log.FieldOperation, log.OpStartup, log.FieldTitle, cfg.Title)
		return nil
	},
	RunE: runShell,
}

// session starts the interpreter every subcommand works through.
func session(cmd *cobra.Command) (*cli.Interpreter, error) {
	return cli.NewSession(cmd.Context(), cfg.Title, cmd.OutOrStdout(), log.FromContext(cmd.Context()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootTitle, "title", "", "title of the main sheet (default $TALLY_TITLE or \"Tally Sheet\")")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "debug, info, warn or error (default $LOG_LEVEL or warn)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger == nil {
			logger = log.New(log.DefaultConfig())
		}
		logger.Error("tally failed", log.FieldError, err)
		stop()
		os.Exit(1)
	}
}
