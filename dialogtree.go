package dialogtree

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/dialogtree/internal/logging"
	"github.com/aretw0/dialogtree/internal/runtime"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/ports"
)

// Controller drives a dialog session: it owns the current node ID and runs the
// fetch, present, choose, advance cycle.
//
// A Controller is not safe for concurrent use. One turn completes fully before
// the next one begins.
type Controller struct {
	store     ports.NodeStore
	presenter ports.Presenter

	startNodeID   string
	currentNodeID string

	states    ports.StateStore
	sessionID string

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

var _ ports.Navigator = (*Controller)(nil)

// Option defines a functional option for configuring the Controller.
type Option func(*Controller)

// WithStartNode configures the entry node ID (default: domain.DefaultStartNodeID).
func WithStartNode(nodeID string) Option {
	return func(c *Controller) {
		c.startNodeID = nodeID
	}
}

// WithLogger sets a custom structured logger for the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithStateStore checkpoints the current node ID under sessionID after every
// transition, and resumes from the checkpoint on Start.
func WithStateStore(store ports.StateStore, sessionID string) Option {
	return func(c *Controller) {
		c.states = store
		c.sessionID = sessionID
	}
}

// New creates a Controller positioned at the start node.
// Nothing is presented until Start is called.
func New(store ports.NodeStore, presenter ports.Presenter, opts ...Option) (*Controller, error) {
	if store == nil {
		return nil, fmt.Errorf("node store is required")
	}
	if presenter == nil {
		return nil, fmt.Errorf("presenter is required")
	}

	c := &Controller{
		store:       store,
		presenter:   presenter,
		startNodeID: domain.DefaultStartNodeID,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.startNodeID == "" {
		return nil, fmt.Errorf("start node ID cannot be empty")
	}
	if c.states != nil && c.sessionID == "" {
		return nil, fmt.Errorf("sessionID is required when a state store is configured")
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.sessionID != "" {
		c.logger = c.logger.With("session", c.sessionID)
	}

	c.currentNodeID = c.startNodeID
	return c, nil
}

// CurrentNodeID returns the ID of the node the session is at.
func (c *Controller) CurrentNodeID() string {
	return c.currentNodeID
}

// Start presents the start node. With a state store configured, a previously
// checkpointed node takes precedence over the start node.
func (c *Controller) Start(ctx context.Context) error {
	target := c.startNodeID

	if c.states != nil {
		state, err := c.states.Load(ctx, c.sessionID)
		switch {
		case err == nil:
			c.logger.Info("resuming session", "node", state.CurrentNodeID)
			target = state.CurrentNodeID
		case errors.Is(err, domain.ErrSessionNotFound):
			c.logger.Debug("no checkpoint found, starting fresh", "node", target)
		default:
			return fmt.Errorf("failed to load session %s: %w", c.sessionID, err)
		}
	}

	return c.AdvanceTo(ctx, target)
}

// AdvanceTo moves the session to nodeID, resolves the node and presents it.
//
// The current node ID is set before resolution, so a missing node leaves the
// session pointing at the unresolved ID. That error is not recoverable for the turn.
func (c *Controller) AdvanceTo(ctx context.Context, nodeID string) error {
	c.currentNodeID = nodeID

	node, err := c.store.GetByID(ctx, nodeID)
	if err != nil {
		c.logger.Error("failed to resolve node", "node", nodeID, "error", err)
		return fmt.Errorf("failed to resolve node %s: %w", nodeID, err)
	}

	if err := c.presenter.Present(ctx, node); err != nil {
		return fmt.Errorf("failed to present node %s: %w", nodeID, err)
	}

	c.logger.Debug("entered node", "node", node.ID, "options", len(node.Options))
	c.emitNodeEnter(ctx, node)

	if c.states != nil {
		if err := c.states.Save(ctx, c.sessionID, domain.NewState(nodeID)); err != nil {
			return fmt.Errorf("failed to checkpoint session %s: %w", c.sessionID, err)
		}
	}
	return nil
}

// AcceptChoice selects the option at index on the current node and advances to
// its target. An out-of-range index returns an error matching
// domain.ErrOptionDoesNotExist and leaves the session untouched.
func (c *Controller) AcceptChoice(ctx context.Context, index int) error {
	node, err := c.store.GetByID(ctx, c.currentNodeID)
	if err != nil {
		c.logger.Error("failed to resolve current node", "node", c.currentNodeID, "error", err)
		return fmt.Errorf("failed to resolve node %s: %w", c.currentNodeID, err)
	}

	nextID, err := runtime.SelectOption(node, index)
	if err != nil {
		c.logger.Info("choice rejected", "node", node.ID, "index", index, "options", len(node.Options))
		c.emitChoice(ctx, domain.EventChoiceRejected, node.ID, index, "")
		return err
	}

	c.logger.Debug("choice accepted", "node", node.ID, "index", index, "next", nextID)
	c.emitChoice(ctx, domain.EventChoiceAccepted, node.ID, index, nextID)

	return c.AdvanceTo(ctx, nextID)
}

func (c *Controller) emitNodeEnter(ctx context.Context, node *domain.Node) {
	if c.hooks.OnNodeEnter == nil {
		return
	}
	c.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventNodeEnter,
		},
		NodeID:      node.ID,
		OptionCount: len(node.Options),
	})
}

func (c *Controller) emitChoice(ctx context.Context, typ domain.EventType, nodeID string, index int, nextID string) {
	hook := c.hooks.OnChoiceAccepted
	if typ == domain.EventChoiceRejected {
		hook = c.hooks.OnChoiceRejected
	}
	if hook == nil {
		return
	}
	hook(ctx, &domain.ChoiceEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      typ,
		},
		NodeID:     nodeID,
		Index:      index,
		NextNodeID: nextID,
	})
}
