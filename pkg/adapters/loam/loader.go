package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/aretw0/loam"
)

// NodeStore adapts a Loam repository of markdown/yaml/json documents to ports.NodeStore.
type NodeStore struct {
	Repo *loam.TypedRepository[NodeMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[NodeMetadata]) *NodeStore {
	return &NodeStore{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository rooted at dir and wraps it.
func Open(dir string) (*NodeStore, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric frontmatter consistent across serializers.
	// The store never writes, so ReadOnly avoids Loam's dev sandbox.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[NodeMetadata](repo)), nil
}

// GetByID resolves a node by its normalized ID.
// Lookup always goes through the index, so a file named after one node but
// declaring another id in its frontmatter is never returned for the wrong ID.
func (s *NodeStore) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	index, err := s.index(ctx)
	if err != nil {
		return nil, err
	}
	docID, ok := index[id]
	if !ok {
		return nil, &domain.NodeNotFoundError{NodeID: id}
	}

	doc, err := s.Repo.Get(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	rawID := doc.Data.ID
	if rawID == "" {
		rawID = doc.ID
	}

	node := &domain.Node{
		ID:   trimExtension(rawID),
		Text: strings.TrimSpace(doc.Content),
	}
	for _, opt := range doc.Data.Options {
		node.Options = append(node.Options, domain.Option{
			NextNodeID: trimExtension(opt.target()),
			Label:      opt.label(),
		})
	}
	return node, nil
}

// ListNodes lists all node IDs in the repository, sorted.
func (s *NodeStore) ListNodes(ctx context.Context) ([]string, error) {
	index, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// index maps normalized node IDs to Loam document IDs.
func (s *NodeStore) index(ctx context.Context) (map[string]string, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string, len(docs))
	for _, doc := range docs {
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		if existing, ok := seen[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existing, doc.ID)
		}
		seen[id] = doc.ID
	}
	return seen, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
