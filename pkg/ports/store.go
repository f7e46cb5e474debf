package ports

import (
	"context"

	"github.com/aretw0/dialogtree/pkg/domain"
)

// StateStore persists the current node of a session so a run can be resumed.
// Nothing but State.CurrentNodeID is stored.
type StateStore interface {
	// Save persists the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes the state for a given session ID.
	Delete(ctx context.Context, sessionID string) error
}

// SessionLister is implemented by state stores that can enumerate their sessions.
type SessionLister interface {
	List(ctx context.Context) ([]string, error)
}
