// Package cli provides the tally command line: startup helpers shared by
// the cmd/tally subcommands, the command interpreter, the interactive
// shell and the demonstration script.
package cli

import (
	"context"
	"io"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"tally/internal/config"
	"tally/internal/log"
	"tally/internal/sheets/memory"
)

// MainSheet is the name of the sheet every session starts with.
const MainSheet = "main"

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment, applies
// overrides such as command line flags, then validates it.
func LoadAndValidateConfig(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg := config.Load()
	for _, apply := range overrides {
		apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the logger described by cfg and makes it the
// default logger.
func SetupLogger(cfg *config.Config) *log.Logger {
	logger := log.New(cfg.LoggerConfig())
	log.SetDefault(logger)
	return logger
}

// NewSession returns an interpreter over a fresh in-memory book holding
// one sheet, MainSheet, titled title and selected.
func NewSession(ctx context.Context, title string, out io.Writer, logger *log.Logger) (*Interpreter, error) {
	book := memory.New(title)
	if _, err := book.Create(ctx, MainSheet, ""); err != nil {
		return nil, errors.Wrap(err, "create main sheet")
	}
	interp := NewInterpreter(book, out, logger)
	if err := interp.Use(ctx, MainSheet); err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "session ready", log.FieldSheet, MainSheet, log.FieldTitle, book.DefaultTitle())
	return interp, nil
}
