package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter      EventType = "node_enter"
	EventChoiceAccepted EventType = "choice_accepted"
	EventChoiceRejected EventType = "choice_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent represents entry into a node (after it was presented).
type NodeEvent struct {
	EventBase
	NodeID      string `json:"node_id"`
	OptionCount int    `json:"option_count"`
}

// ChoiceEvent represents a choice made on a node, accepted or not.
type ChoiceEvent struct {
	EventBase
	NodeID     string `json:"node_id"`
	Index      int    `json:"index"`
	NextNodeID string `json:"next_node_id,omitempty"`
}

// LifecycleHooks defines callbacks for controller observability.
type LifecycleHooks struct {
	OnNodeEnter      func(context.Context, *NodeEvent)
	OnChoiceAccepted func(context.Context, *ChoiceEvent)
	OnChoiceRejected func(context.Context, *ChoiceEvent)
}
