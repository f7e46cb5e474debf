package memory

import "github.com/aretw0/dialogtree/pkg/domain"

// SampleNodes returns the built-in three-location dialog.
// Every node links to the two others and has a final "Where am I?" option
// that loops back to itself.
func SampleNodes() []domain.Node {
	return []domain.Node{
		{
			ID:   "d0",
			Text: "Location 0",
			Options: []domain.Option{
				{NextNodeID: "d1", Label: "Go to 'Location 1'"},
				{NextNodeID: "d2", Label: "Go to 'Location 2'"},
				{NextNodeID: "d0", Label: "Where am I?"},
			},
		},
		{
			ID:   "d1",
			Text: "Location 1",
			Options: []domain.Option{
				{NextNodeID: "d0", Label: "Go to 'Location 0'"},
				{NextNodeID: "d2", Label: "Go to 'Location 2'"},
				{NextNodeID: "d1", Label: "Where am I?"},
			},
		},
		{
			ID:   "d2",
			Text: "Location 2",
			Options: []domain.Option{
				{NextNodeID: "d0", Label: "Go to 'Location 0'"},
				{NextNodeID: "d1", Label: "Go to 'Location 1'"},
				{NextNodeID: "d2", Label: "Where am I?"},
			},
		},
	}
}
