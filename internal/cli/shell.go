package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/wader/readline"

	"tally/internal/core"
	"tally/internal/log"
)

// Shell reads commands line by line and runs them through an Interpreter.
// A failed command is reported and the shell carries on.
type Shell struct {
	interp   *Interpreter
	prompt   string
	in       io.Reader
	errOut   io.Writer
	errColor *color.Color
	logger   *log.Logger
}

// ShellConfig holds the shell's I/O and presentation settings.
type ShellConfig struct {
	Prompt  string
	In      io.Reader
	ErrOut  io.Writer
	NoColor bool
}

func NewShell(interp *Interpreter, cfg ShellConfig, logger *log.Logger) *Shell {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.ErrOut == nil {
		cfg.ErrOut = os.Stderr
	}
	errColor := color.New(color.FgRed)
	if cfg.NoColor || !log.IsTerminal(cfg.ErrOut) {
		errColor.DisableColor()
	}
	return &Shell{
		interp:   interp,
		prompt:   cfg.Prompt,
		in:       cfg.In,
		errOut:   cfg.ErrOut,
		errColor: errColor,
		logger:   logger.WithComponent(log.ComponentShell),
	}
}

// Run reads until exit, end of input or ctx is cancelled. Input from a
// terminal gets line editing and completion.
func (sh *Shell) Run(ctx context.Context) error {
	if f, ok := sh.in.(*os.File); ok && log.IsTerminal(f) {
		return sh.runInteractive(ctx)
	}
	return sh.runScript(ctx)
}

func (sh *Shell) runInteractive(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.prompt,
		AutoComplete:    sh.completer(ctx),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.Wrap(err, "start line editor")
	}
	defer rl.Close()

	sh.logger.DebugContext(ctx, "interactive shell started", log.FieldSheet, sh.interp.Current())
	for ctx.Err() == nil {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if done := sh.exec(ctx, line); done {
			return nil
		}
	}
	return ctx.Err()
}

func (sh *Shell) runScript(ctx context.Context) error {
	sc := bufio.NewScanner(sh.in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if done := sh.exec(ctx, sc.Text()); done {
			return nil
		}
	}
	return sc.Err()
}

// exec runs one line and reports whether the shell should stop.
func (sh *Shell) exec(ctx context.Context, line string) bool {
	err := sh.interp.Exec(ctx, line)
	if errors.Is(err, ErrExit) {
		return true
	}
	if err != nil {
		Report(sh.errOut, sh.errColor, err)
	}
	return false
}

func (sh *Shell) completer(ctx context.Context) *readline.PrefixCompleter {
	categories := func(string) []string { return sh.interp.Categories(ctx) }
	var items []readline.PrefixCompleterInterface
	for _, name := range sh.interp.Commands() {
		switch name {
		case "add", "remove", "get", "set", "inc", "dec":
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(categories)))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

// Report writes err as "<Kind>: <message>", in c's colour.
func Report(w io.Writer, c *color.Color, err error) {
	kind := core.Kind(err)
	if kind == "" {
		kind = "Error"
	}
	fmt.Fprintln(w, c.Sprintf("%s: %v", kind, err))
}
