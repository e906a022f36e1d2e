// Package reactor implements the engine's typed event bus: handlers
// register against a message's concrete type and are invoked
// synchronously, in registration order, whenever that type is dispatched.
package reactor

import "reflect"

// Handler is invoked once per dispatch of a message of the type it was
// registered against.
type Handler func(msg any)

// Reactor is a type-keyed, FIFO-deferring message bus. Dispatch delivers
// a message to every handler registered for its exact type immediately;
// Defer queues a message to be delivered after the current dispatch (if
// any) finishes, so a handler reacting to one message can safely queue
// another without re-entering the handler stack mid-dispatch.
type Reactor struct {
	handlers    map[reflect.Type][]Handler
	deferQueue  []any
	deferActive bool
}

// New creates an empty Reactor.
func New() *Reactor {
	return &Reactor{handlers: make(map[reflect.Type][]Handler)}
}

// On registers fn to run whenever a message of exactly sample's type is
// dispatched. sample is only consulted for its type, e.g.
// r.On(CharacterJump{}, func(msg any) { ... }).
func (r *Reactor) On(sample any, fn Handler) {
	t := reflect.TypeOf(sample)
	r.handlers[t] = append(r.handlers[t], fn)
}

// dispatchRaw invokes every handler registered for msg's type, in
// registration order.
func (r *Reactor) dispatchRaw(msg any) {
	t := reflect.TypeOf(msg)
	for _, h := range r.handlers[t] {
		h(msg)
	}
}

// Dispatch delivers msg to its handlers now. If called from within a
// handler (nested dispatch), it runs synchronously inline rather than
// going through the defer queue, matching Defer's re-entrancy contract.
func (r *Reactor) Dispatch(msg any) {
	if r.deferActive {
		r.dispatchRaw(msg)
		return
	}
	r.dispatchDefer(msg)
}

// dispatchDefer dispatches msg, then drains any messages handlers queued
// via Defer during that dispatch, looping until the queue runs dry. A
// handler deferring a message that itself triggers more deferrals is
// handled correctly: each drain pass dispatches everything queued by the
// pass before it.
func (r *Reactor) dispatchDefer(msg any) {
	r.deferActive = true
	r.dispatchRaw(msg)
	for len(r.deferQueue) > 0 {
		next := r.deferQueue[0]
		r.deferQueue = r.deferQueue[1:]
		r.dispatchRaw(next)
	}
	r.deferActive = false
}

// Defer queues msg for delivery after the current dispatch completes. If
// no dispatch is in progress, it dispatches immediately.
func (r *Reactor) Defer(msg any) {
	if r.deferActive {
		r.deferQueue = append(r.deferQueue, msg)
		return
	}
	r.Dispatch(msg)
}
