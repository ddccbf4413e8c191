package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventTransition EventType = "transition"
	EventReject     EventType = "reject"
	EventReset      EventType = "reset"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine"`
}

// TransitionEvent is emitted after the cursor moved.
type TransitionEvent struct {
	EventBase
	From     StateID `json:"from"`
	FromName string  `json:"from_name"`
	Symbol   Symbol  `json:"symbol"`
	To       StateID `json:"to"`
	ToName   string  `json:"to_name"`
	// Fallback is true when the destination came from the default transition.
	Fallback bool `json:"fallback,omitempty"`
}

// RejectEvent is emitted when a symbol has no viable transition.
type RejectEvent struct {
	EventBase
	State     StateID `json:"state"`
	StateName string  `json:"state_name"`
	Symbol    Symbol  `json:"symbol"`
	Err       error   `json:"-"`
}

// ResetEvent is emitted when the cursor is placed on the initial state.
type ResetEvent struct {
	EventBase
	Initial     StateID `json:"initial"`
	InitialName string  `json:"initial_name"`
}

// LifecycleHooks defines machine-level callbacks for observability.
// Nil fields are skipped. Hooks run synchronously on the caller's goroutine.
type LifecycleHooks struct {
	OnTransition func(*TransitionEvent)
	OnReject     func(*RejectEvent)
	OnReset      func(*ResetEvent)
}

// NewEventBase stamps an event header.
func NewEventBase(t EventType, machine string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, Machine: machine}
}
