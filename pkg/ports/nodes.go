package ports

import (
	"context"

	"github.com/aretw0/dialogtree/pkg/domain"
)

// NodeStore resolves a node identifier to its definition.
// This allows the content source (Memory, Files, Loam, SQLite) to be decoupled.
type NodeStore interface {
	// GetByID returns the node for id.
	// Returns an error matching domain.ErrNodeNotFound if the id is absent.
	// Implementations do not validate option targets.
	GetByID(ctx context.Context, id string) (*domain.Node, error)
}

// NodeLister is implemented by stores that can enumerate their nodes.
// This is used for introspection tools (e.g. 'dialogtree graph').
type NodeLister interface {
	ListNodes(ctx context.Context) ([]string, error)
}
