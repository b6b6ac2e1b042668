package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tally/internal/log"
)

// demoScript walks through every sheet operation, including the failing
// ones: missing categories, a decrement below zero.
var demoScript = []string{
	"new outcomes",
	"title",
	"new birds Birds",
	"title",
	"title Birds 1/1/19",
	"title",
	"add sparrow",
	"add robin 5",
	"remove eagle",
	"get robin",
	"set robin 3",
	"inc sparrow",
	"inc robin 5",
	"dec sparrow",
	"dec robin 5",
	"zero",
	"show",
	"by-category",
	"set sparrow 3",
	"set robin 5",
	"by-count",
	"new june Birds on June 1, 2018",
	"title",
	"add robin 5",
	"add sparrow 10",
	"add cardinal 3",
	`add "blue jay" 4`,
	"show",
	"by-count",
	"get eagle",
	"dec cardinal",
	"get cardinal",
	"dec cardinal",
	"get cardinal",
	"dec cardinal",
	"get cardinal",
	"dec cardinal",
	"get cardinal",
	"dec eagle",
	"add cardinal -1",
	"add cardinal many",
	"export",
	"sheets",
}

// Demo runs demoScript on interp, echoing each command to out and
// reporting failures there too.
func Demo(ctx context.Context, interp *Interpreter, out io.Writer, logger *log.Logger) error {
	logger = logger.WithComponent(log.ComponentDemo)
	plain := color.New()
	plain.DisableColor()

	for _, line := range demoScript {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, ">>> %s\n", line)
		if err := interp.Exec(ctx, line); err != nil {
			Report(out, plain, err)
		}
	}
	logger.InfoContext(ctx, "demo finished", log.FieldCount, len(demoScript))
	_, err := fmt.Fprintln(out, "Done")
	return err
}
