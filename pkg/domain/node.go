package domain

// Option is one outgoing choice of a Node.
// It references the next node by ID only; nodes never own each other.
type Option struct {
	// NextNodeID is the identifier of the node this choice leads to.
	NextNodeID string `json:"next_node_id" yaml:"next" mapstructure:"next"`

	// Label is the text shown for this choice (e.g. "Go to location 1").
	Label string `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
}

// Node is a point in the dialog graph.
// Nodes are created once at content-load time and treated as immutable afterwards.
type Node struct {
	ID string `json:"id" yaml:"id" mapstructure:"id"`

	// Text is the free-form content displayed to the user.
	Text string `json:"text" yaml:"text" mapstructure:"text"`

	// Options is ordered: the position of an option is the index the user selects it by.
	// An empty slice makes the node a dead end.
	Options []Option `json:"options" yaml:"options" mapstructure:"options"`
}

// Option returns the option at the given zero-based index.
// Any index outside [0, len(Options)) yields an *OptionDoesNotExistError.
func (n *Node) Option(index int) (Option, error) {
	if index < 0 || index >= len(n.Options) {
		return Option{}, &OptionDoesNotExistError{
			NodeID: n.ID,
			Index:  index,
			Count:  len(n.Options),
		}
	}
	return n.Options[index], nil
}

// IsDeadEnd reports whether the node has no options at all.
func (n *Node) IsDeadEnd() bool {
	return len(n.Options) == 0
}
