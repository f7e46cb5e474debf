package ports

import "context"

// Navigator is the driving port of a dialog session.
// The input driver (runner) talks to the session controller through it.
type Navigator interface {
	// Start presents the entry node (or the resumed one).
	Start(ctx context.Context) error

	// AcceptChoice selects the option at index on the current node and advances.
	AcceptChoice(ctx context.Context, index int) error

	// CurrentNodeID returns where the session currently is.
	CurrentNodeID() string
}
