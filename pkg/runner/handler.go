package runner

import (
	"context"

	"github.com/aretw0/dialogtree/pkg/ports"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
// The same handler is given to the controller as its Presenter and to the
// Runner as its input source, so output and prompts share one stream.
type IOHandler interface {
	ports.Presenter

	// Input reads one raw line of user input.
	// Returns io.EOF when the source is exhausted.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. "no such option").
	// This is distinct from node presentation.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms node text before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
