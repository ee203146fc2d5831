package client

import (
	"context"
	"sync"
)

// Event names a browser-side lifecycle event the capture client reacts to
type Event string

const (
	EventBlur     Event = "blur"
	EventPageHide Event = "page-hide"
	EventUnload   Event = "unload"
)

// Dispatcher routes events to subscribed handlers. Subscriptions are
// explicit and carry a cancel function so bindings can be released at
// teardown.
type Dispatcher struct {
	mu       sync.Mutex
	nextID   int
	handlers map[Event]map[int]func()
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Event]map[int]func())}
}

// Subscribe registers a handler for an event and returns its cancel function
func (d *Dispatcher) Subscribe(event Event, handler func()) (cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.handlers[event] == nil {
		d.handlers[event] = make(map[int]func())
	}
	id := d.nextID
	d.nextID++
	d.handlers[event][id] = handler

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.handlers[event], id)
	}
}

// Emit invokes every handler subscribed to the event
func (d *Dispatcher) Emit(event Event) {
	d.mu.Lock()
	handlers := make([]func(), 0, len(d.handlers[event]))
	for _, h := range d.handlers[event] {
		handlers = append(handlers, h)
	}
	d.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

// Bind subscribes the client's handlers to the form lifecycle events:
// blur drives partial saves, page-hide and unload drive abandoned saves.
func (c *Client) Bind(d *Dispatcher) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancels = append(c.cancels,
		d.Subscribe(EventBlur, func() { c.HandleBlur(context.Background()) }),
		d.Subscribe(EventPageHide, c.HandlePageHide),
		d.Subscribe(EventUnload, c.HandlePageHide),
	)
}

// Close releases every event subscription held by the client
func (c *Client) Close() {
	c.mu.Lock()
	cancels := c.cancels
	c.cancels = nil
	c.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
