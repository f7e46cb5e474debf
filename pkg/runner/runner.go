package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/dialogtree/internal/logging"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/ports"
)

// Runner is the input driver: it repeatedly obtains a zero-based choice from
// the handler and feeds it to the session.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	exitWords []string
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		exitWords: []string{"exit", "quit"},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run starts the session and loops until the input is exhausted, the user
// types an exit word, or the context is canceled.
//
// Invalid choices are reported through the handler and re-prompted. Any other
// error from the session (e.g. a missing node) ends the run and is returned.
func (r *Runner) Run(ctx context.Context, nav ports.Navigator) error {
	if err := nav.Start(ctx); err != nil {
		return fmt.Errorf("start error: %w", err)
	}

	for {
		text, err := r.Handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("input closed", "node", nav.CurrentNodeID())
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		if r.isExit(text) {
			return r.Handler.SystemOutput(ctx, "Bye!")
		}
		if text == "" {
			continue
		}

		index, err := ParseChoice(text)
		if err != nil {
			r.Logger.Debug("unparseable choice", "input", text, "error", err)
			if err := r.Handler.SystemOutput(ctx, fmt.Sprintf("%v. Enter the number of an option.", err)); err != nil {
				return err
			}
			continue
		}

		err = nav.AcceptChoice(ctx, index)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrOptionDoesNotExist):
			if err := r.Handler.SystemOutput(ctx, fmt.Sprintf("Option %d does not exist. Try again.", index)); err != nil {
				return err
			}
		default:
			return err
		}
	}
}

func (r *Runner) isExit(text string) bool {
	for _, w := range r.exitWords {
		if strings.EqualFold(text, w) {
			return true
		}
	}
	return false
}
