package ports

import (
	"context"

	"github.com/aretw0/dialogtree/pkg/domain"
)

// Presenter displays a node to the user.
// It is called once per successful transition, including the first display of the start node.
type Presenter interface {
	Present(ctx context.Context, node *domain.Node) error
}

// PresenterFunc adapts a plain function to the Presenter interface.
type PresenterFunc func(ctx context.Context, node *domain.Node) error

// Present calls f(ctx, node).
func (f PresenterFunc) Present(ctx context.Context, node *domain.Node) error {
	return f(ctx, node)
}
