package events

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/registration-api/internal/domain/event"
)

// InMemoryDispatcher delivers events synchronously to the single
// handler registered for each event name. Dispatching an event nobody
// registered for is a no-op; a handler error propagates to the caller.
type InMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[string]event.Handler
	logger   *logrus.Logger
}

func NewInMemoryDispatcher(logger *logrus.Logger) *InMemoryDispatcher {
	return &InMemoryDispatcher{
		handlers: make(map[string]event.Handler),
		logger:   logger,
	}
}

// Register binds a handler to an event name. Registering again for the
// same name replaces the previous handler.
func (d *InMemoryDispatcher) Register(name string, handler event.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = handler
}

func (d *InMemoryDispatcher) Dispatch(ctx context.Context, e event.Event) error {
	d.mu.RLock()
	handler, ok := d.handlers[e.Name()]
	d.mu.RUnlock()
	if !ok {
		if d.logger != nil {
			d.logger.WithField("event", e.Name()).Debug("no handler registered, event dropped")
		}
		return nil
	}
	return handler.Handle(ctx, e)
}

var _ event.Dispatcher = (*InMemoryDispatcher)(nil)
