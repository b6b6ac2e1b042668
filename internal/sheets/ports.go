package sheets

import (
	"context"

	"tally/internal/core"
)

// Ports for the book of named tally sheets.
type (
	SheetReader interface {
		// Get returns the sheet registered under name.
		Get(ctx context.Context, name string) (*core.Sheet, error)
		// List returns the sheet names in lexicographic order.
		List(ctx context.Context) ([]string, error)
	}

	SheetWriter interface {
		// Create registers a new empty sheet. An empty title selects the
		// book's default title.
		Create(ctx context.Context, name, title string) (*core.Sheet, error)
		Delete(ctx context.Context, name string) error
	}

	Book interface {
		SheetReader
		SheetWriter
	}
)
