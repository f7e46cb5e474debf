package domain

// DefaultStartNodeID is the entry node used when none is configured.
const DefaultStartNodeID = "d0"

// State is the session state: where the user currently is in the graph.
// It is the only mutable piece of a session and is never persisted beyond this field.
type State struct {
	// CurrentNodeID is the identifier of the active node.
	CurrentNodeID string `json:"current_node_id"`
}

// NewState creates a state positioned at the given start node.
func NewState(startNodeID string) *State {
	return &State{CurrentNodeID: startNodeID}
}
