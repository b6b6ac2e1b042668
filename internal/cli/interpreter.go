package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/anmitsu/go-shlex"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"tally/internal/core"
	"tally/internal/log"
	"tally/internal/sheets"
)

var (
	// ErrExit is returned by Exec for the exit and quit commands.
	ErrExit = errors.New("exit")

	errNoSheet = errors.Wrap(core.ErrNotFound, "no sheet selected, run new or use first")
)

type command struct {
	usage   string
	minArgs int
	maxArgs int // -1 for no limit
	sheet   bool
	run     func(ctx context.Context, sheet *core.Sheet, args []string) error
}

// Interpreter executes tally commands against a book of sheets, one of
// which is current.
type Interpreter struct {
	book     sheets.Book
	current  string
	out      io.Writer
	logger   *log.Logger
	commands map[string]command
}

func NewInterpreter(book sheets.Book, out io.Writer, logger *log.Logger) *Interpreter {
	in := &Interpreter{book: book, out: out, logger: logger.WithComponent(log.ComponentSheets)}
	in.commands = map[string]command{
		"new":         {"new <name> [title...]", 1, -1, false, in.newSheet},
		"use":         {"use <name>", 1, 1, false, in.useSheet},
		"sheets":      {"sheets", 0, 0, false, in.listSheets},
		"drop":        {"drop <name>", 1, 1, false, in.dropSheet},
		"title":       {"title [new title...]", 0, -1, true, in.title},
		"add":         {"add <category> [amount]", 1, 2, true, in.add},
		"remove":      {"remove <category>", 1, 1, true, in.remove},
		"get":         {"get <category>", 1, 1, true, in.get},
		"set":         {"set <category> <amount>", 2, 2, true, in.set},
		"inc":         {"inc <category> [amount]", 1, 2, true, in.inc},
		"dec":         {"dec <category> [amount]", 1, 2, true, in.dec},
		"zero":        {"zero", 0, 0, true, in.zero},
		"show":        {"show", 0, 0, true, in.show},
		"by-category": {"by-category", 0, 0, true, in.byCategory},
		"by-count":    {"by-count", 0, 0, true, in.byCount},
		"export":      {"export", 0, 0, true, in.export},
		"help":        {"help", 0, 0, false, in.help},
		"exit":        {"exit", 0, 0, false, nil},
		"quit":        {"quit", 0, 0, false, nil},
	}
	return in
}

// Current returns the name of the current sheet, or "" if none.
func (in *Interpreter) Current() string {
	return in.current
}

// Use makes name the current sheet.
func (in *Interpreter) Use(ctx context.Context, name string) error {
	if _, err := in.book.Get(ctx, name); err != nil {
		return err
	}
	in.current = strings.TrimSpace(name)
	return nil
}

// Commands returns the command names, sorted.
func (in *Interpreter) Commands() []string {
	names := make([]string, 0, len(in.commands))
	for name := range in.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Categories returns the categories of the current sheet, sorted.
func (in *Interpreter) Categories(ctx context.Context) []string {
	sheet, err := in.sheet(ctx)
	if err != nil {
		return nil
	}
	var out []string
	for _, c := range sheet.Categories() {
		out = append(out, string(c))
	}
	return out
}

// Exec runs one command line. Blank lines and lines starting with # do
// nothing. Command failures are returned unchanged so callers can report
// them by kind.
func (in *Interpreter) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	tokens, err := shlex.Split(line, true)
	if err != nil {
		return errors.Wrapf(core.ErrInvalidArgument, "cannot parse %q: %v", line, err)
	}
	if len(tokens) == 0 {
		return nil
	}

	name, args := tokens[0], tokens[1:]
	cmd, ok := in.commands[name]
	if !ok {
		return errors.Wrapf(core.ErrInvalidArgument, "unknown command %q, try help", name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return errors.Wrapf(core.ErrInvalidArgument, "usage: %s", cmd.usage)
	}
	if cmd.run == nil {
		return ErrExit
	}

	var sheet *core.Sheet
	if cmd.sheet {
		if sheet, err = in.sheet(ctx); err != nil {
			return err
		}
	}

	in.logger.DebugContext(ctx, "exec", log.FieldCommand, name, log.FieldSheet, in.current)
	if err := cmd.run(ctx, sheet, args); err != nil {
		in.logger.Failed(ctx, name, err, log.FieldSheet, in.current, log.FieldErrorKind, core.Kind(err))
		return err
	}
	return nil
}

func (in *Interpreter) sheet(ctx context.Context) (*core.Sheet, error) {
	if in.current == "" {
		return nil, errNoSheet
	}
	return in.book.Get(ctx, in.current)
}

// amountArg parses args[i], or returns def when the argument is absent.
func amountArg(args []string, i, def int) (int, error) {
	if len(args) <= i {
		return def, nil
	}
	return core.ParseAmount(args[i])
}

func (in *Interpreter) newSheet(ctx context.Context, _ *core.Sheet, args []string) error {
	sheet, err := in.book.Create(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	in.current = strings.TrimSpace(args[0])
	in.logger.InfoContext(ctx, "sheet created", log.FieldSheet, in.current, log.FieldTitle, sheet.Title())
	return nil
}

func (in *Interpreter) useSheet(ctx context.Context, _ *core.Sheet, args []string) error {
	return in.Use(ctx, args[0])
}

func (in *Interpreter) listSheets(ctx context.Context, _ *core.Sheet, _ []string) error {
	names, err := in.book.List(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		marker := "  "
		if name == in.current {
			marker = "* "
		}
		fmt.Fprintln(in.out, marker+name)
	}
	return nil
}

func (in *Interpreter) dropSheet(ctx context.Context, _ *core.Sheet, args []string) error {
	if err := in.book.Delete(ctx, args[0]); err != nil {
		return err
	}
	if strings.TrimSpace(args[0]) == in.current {
		in.current = ""
	}
	in.logger.InfoContext(ctx, "sheet dropped", log.FieldSheet, args[0])
	return nil
}

func (in *Interpreter) title(_ context.Context, sheet *core.Sheet, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(in.out, sheet.Title())
		return nil
	}
	return sheet.SetTitle(strings.Join(args, " "))
}

func (in *Interpreter) add(_ context.Context, sheet *core.Sheet, args []string) error {
	amount, err := amountArg(args, 1, core.DefaultAddAmount)
	if err != nil {
		return err
	}
	return sheet.AddCategory(args[0], amount)
}

func (in *Interpreter) remove(_ context.Context, sheet *core.Sheet, args []string) error {
	return sheet.RemoveCategory(args[0])
}

func (in *Interpreter) get(_ context.Context, sheet *core.Sheet, args []string) error {
	n, err := sheet.Tally(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "%s: %d\n", core.NormalizeCategory(args[0]), n)
	return nil
}

func (in *Interpreter) set(_ context.Context, sheet *core.Sheet, args []string) error {
	amount, err := core.ParseAmount(args[1])
	if err != nil {
		return err
	}
	return sheet.SetTally(args[0], amount)
}

func (in *Interpreter) inc(_ context.Context, sheet *core.Sheet, args []string) error {
	amount, err := amountArg(args, 1, core.DefaultStep)
	if err != nil {
		return err
	}
	return sheet.Increment(args[0], amount)
}

func (in *Interpreter) dec(_ context.Context, sheet *core.Sheet, args []string) error {
	amount, err := amountArg(args, 1, core.DefaultStep)
	if err != nil {
		return err
	}
	return sheet.Decrement(args[0], amount)
}

func (in *Interpreter) zero(_ context.Context, sheet *core.Sheet, _ []string) error {
	sheet.ZeroAll()
	return nil
}

func (in *Interpreter) show(_ context.Context, sheet *core.Sheet, _ []string) error {
	_, err := io.WriteString(in.out, sheet.String())
	return err
}

func (in *Interpreter) byCategory(_ context.Context, sheet *core.Sheet, _ []string) error {
	_, err := io.WriteString(in.out, sheet.ItemsSortedByCategory())
	return err
}

func (in *Interpreter) byCount(_ context.Context, sheet *core.Sheet, _ []string) error {
	_, err := io.WriteString(in.out, sheet.ItemsSortedByCount())
	return err
}

type snapshot struct {
	Title      string       `yaml:"title"`
	Categories []core.Entry `yaml:"categories"`
}

func (in *Interpreter) export(_ context.Context, sheet *core.Sheet, _ []string) error {
	enc := yaml.NewEncoder(in.out)
	enc.SetIndent(2)
	if err := enc.Encode(snapshot{Title: sheet.Title(), Categories: sheet.EntriesByCategory()}); err != nil {
		return errors.Wrap(err, "encode sheet")
	}
	return enc.Close()
}

func (in *Interpreter) help(_ context.Context, _ *core.Sheet, _ []string) error {
	for _, name := range in.Commands() {
		fmt.Fprintln(in.out, "  "+in.commands[name].usage)
	}
	return nil
}
