package event

import "context"

// Event is a domain event identified by a stable name.
type Event interface {
	Name() string
}

// Handler reacts to a single event type.
type Handler interface {
	Handle(ctx context.Context, e Event) error
}

// Dispatcher delivers events to registered handlers. This version
// supports at most one handler per event name and silently no-ops when
// nothing is registered; handler errors propagate to the dispatching
// caller.
type Dispatcher interface {
	Register(name string, h Handler)
	Dispatch(ctx context.Context, e Event) error
}
