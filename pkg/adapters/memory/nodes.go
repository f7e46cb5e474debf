package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/dialogtree/pkg/domain"
)

// NodeStore implements ports.NodeStore using an in-memory map.
// Safe for concurrent use.
type NodeStore struct {
	mu    sync.RWMutex
	nodes map[string]domain.Node
}

// NewNodeStore creates an empty store. Use Put to seed it.
func NewNodeStore() *NodeStore {
	return &NodeStore{
		nodes: make(map[string]domain.Node),
	}
}

// NewFromNodes creates a store from domain objects.
// Duplicate or empty IDs are rejected; option targets are not checked.
func NewFromNodes(nodes ...domain.Node) (*NodeStore, error) {
	s := NewNodeStore()
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node missing ID")
		}
		if _, exists := s.nodes[n.ID]; exists {
			return nil, fmt.Errorf("duplicate node ID %q", n.ID)
		}
		s.nodes[n.ID] = copyNode(n)
	}
	return s, nil
}

// Put adds or replaces a node.
func (s *NodeStore) Put(node domain.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[node.ID] = copyNode(node)
}

// GetByID returns a copy of the node so callers can't mutate the store through it.
func (s *NodeStore) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	node, ok := s.nodes[id]
	if !ok {
		return nil, &domain.NodeNotFoundError{NodeID: id}
	}
	ret := copyNode(node)
	return &ret, nil
}

// ListNodes returns all node IDs in deterministic order.
func (s *NodeStore) ListNodes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func copyNode(n domain.Node) domain.Node {
	n.Options = append([]domain.Option(nil), n.Options...)
	return n
}
