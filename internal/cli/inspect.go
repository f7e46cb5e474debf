package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/dialogtree/internal/config"
	"github.com/aretw0/dialogtree/internal/presentation/graph"
	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/dialogtree/pkg/ports"
)

// ErrNoStateBackend is returned by session commands when checkpointing is disabled.
var ErrNoStateBackend = errors.New("no state backend configured (use --state file|redis)")

// collectNodes resolves every node of the configured content, in ID order.
// Dangling option targets are left as they are.
func collectNodes(ctx context.Context, cfg config.Config) ([]domain.Node, string, error) {
	store, declaredStart, closer, err := openNodeStore(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("error opening content: %w", err)
	}
	defer closer.Close()

	lister, ok := store.(ports.NodeLister)
	if !ok {
		return nil, "", fmt.Errorf("content source cannot enumerate its nodes")
	}
	ids, err := lister.ListNodes(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("error listing nodes: %w", err)
	}

	nodes := make([]domain.Node, 0, len(ids))
	for _, id := range ids {
		node, err := store.GetByID(ctx, id)
		if err != nil {
			return nil, "", fmt.Errorf("error reading node %s: %w", id, err)
		}
		nodes = append(nodes, *node)
	}
	return nodes, cfg.ResolveStart(declaredStart), nil
}

// ListNodes writes one line per node: its ID, option count and first line of text.
func ListNodes(ctx context.Context, cfg config.Config, w io.Writer) error {
	nodes, _, err := collectNodes(ctx, cfg)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		fmt.Fprintf(w, "%s\t%d\t%s\n", n.ID, len(n.Options), firstLine(n.Text))
	}
	return nil
}

// RenderGraph writes a Mermaid diagram of the content.
// With a session ID, the checkpointed node is highlighted.
func RenderGraph(ctx context.Context, cfg config.Config, sessionID string, w io.Writer) error {
	nodes, start, err := collectNodes(ctx, cfg)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if sessionID != "" {
		state, err := loadSession(ctx, cfg, sessionID)
		if err != nil {
			return err
		}
		overlay = &graph.GraphOverlay{CurrentNode: state.CurrentNodeID}
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(nodes, start, overlay))
	return err
}

// ListSessions prints the stored session IDs.
func ListSessions(ctx context.Context, cfg config.Config, w io.Writer) error {
	if !cfg.Checkpointing() {
		return ErrNoStateBackend
	}
	store, closer, err := openStateStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	lister, ok := store.(ports.SessionLister)
	if !ok {
		return fmt.Errorf("state backend %q cannot list sessions", cfg.StateBackend)
	}
	sessions, err := lister.List(ctx)
	if err != nil {
		return fmt.Errorf("error listing sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No active sessions found.")
		return nil
	}
	fmt.Fprintln(w, "Active Sessions:")
	for _, s := range sessions {
		fmt.Fprintln(w, "- "+s)
	}
	return nil
}

// InspectSession prints a session checkpoint as JSON.
func InspectSession(ctx context.Context, cfg config.Config, sessionID string, w io.Writer) error {
	state, err := loadSession(ctx, cfg, sessionID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling state: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RemoveSessions deletes each session, reporting per ID. It fails if any deletion failed.
func RemoveSessions(ctx context.Context, cfg config.Config, sessionIDs []string, w io.Writer) error {
	if !cfg.Checkpointing() {
		return ErrNoStateBackend
	}
	store, closer, err := openStateStore(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	var errs []error
	for _, id := range sessionIDs {
		if err := store.Delete(ctx, id); err != nil {
			fmt.Fprintf(w, "Error removing '%s': %v\n", id, err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(w, "Removed session '%s'\n", id)
	}
	return errors.Join(errs...)
}

func loadSession(ctx context.Context, cfg config.Config, sessionID string) (*domain.State, error) {
	if !cfg.Checkpointing() {
		return nil, ErrNoStateBackend
	}
	store, closer, err := openStateStore(cfg)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	state, err := store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error loading session '%s': %w", sessionID, err)
	}
	return state, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
