package file

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/aretw0/dialogtree/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk layout of a content file (YAML or JSON):
//
//	start: d0
//	nodes:
//	  - id: d0
//	    text: Location 0
//	    options:
//	      - next: d1
//	        label: Go to 'Location 1'
type Document struct {
	Start string        `mapstructure:"start"`
	Nodes []domain.Node `mapstructure:"nodes"`
}

// NodeStore implements ports.NodeStore over a content file loaded once at construction.
type NodeStore struct {
	Path  string
	start string
	nodes map[string]domain.Node
	order []string
}

// Load reads and decodes the content file at path.
// JSON files are accepted too since JSON is valid YAML.
func Load(path string) (*NodeStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	store.Path = path
	return store, nil
}

// Parse decodes content from raw YAML/JSON bytes.
func Parse(data []byte) (*NodeStore, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		// YAML turns bare ids like `1` into ints; accept them as strings.
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &doc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	store := &NodeStore{
		start: doc.Start,
		nodes: make(map[string]domain.Node, len(doc.Nodes)),
		order: make([]string, 0, len(doc.Nodes)),
	}
	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node #%d missing ID", i)
		}
		if _, exists := store.nodes[n.ID]; exists {
			return nil, fmt.Errorf("duplicate node ID %q", n.ID)
		}
		store.nodes[n.ID] = n
		store.order = append(store.order, n.ID)
	}
	return store, nil
}

// StartNodeID returns the start node declared by the file, or "" if none.
func (s *NodeStore) StartNodeID() string {
	return s.start
}

// GetByID returns a copy of the node.
func (s *NodeStore) GetByID(ctx context.Context, id string) (*domain.Node, error) {
	node, ok := s.nodes[id]
	if !ok {
		return nil, &domain.NodeNotFoundError{NodeID: id}
	}
	node.Options = append([]domain.Option(nil), node.Options...)
	return &node, nil
}

// ListNodes returns node IDs sorted alphabetically.
func (s *NodeStore) ListNodes(ctx context.Context) ([]string, error) {
	ids := append([]string(nil), s.order...)
	sort.Strings(ids)
	return ids, nil
}
