package domain

import (
	"errors"
	"fmt"
)

// ErrOptionDoesNotExist is returned when a requested option index is out of bounds for a node.
var ErrOptionDoesNotExist = errors.New("option does not exist")

// ErrNodeNotFound is returned when a node ID has no entry in the node store.
var ErrNodeNotFound = errors.New("node not found")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// OptionDoesNotExistError carries the offending index and node for diagnostics.
// It matches ErrOptionDoesNotExist with errors.Is.
type OptionDoesNotExistError struct {
	NodeID string
	Index  int
	Count  int
}

func (e *OptionDoesNotExistError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("%s: index %d on node %q (node has no options)", ErrOptionDoesNotExist, e.Index, e.NodeID)
	}
	return fmt.Sprintf("%s: index %d on node %q (valid range 0..%d)", ErrOptionDoesNotExist, e.Index, e.NodeID, e.Count-1)
}

// Is makes errors.Is(err, ErrOptionDoesNotExist) hold.
func (e *OptionDoesNotExistError) Is(target error) bool {
	return target == ErrOptionDoesNotExist
}

// NodeNotFoundError reports a node ID missing from the store.
// It matches ErrNodeNotFound with errors.Is.
type NodeNotFoundError struct {
	NodeID string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNodeNotFound, e.NodeID)
}

// Is makes errors.Is(err, ErrNodeNotFound) hold.
func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}
