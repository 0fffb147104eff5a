// Package emitter provides a synchronous, ordered publish/subscribe channel.
//
// Listeners run on the publishing goroutine in registration order. The
// listener list is copied on write, so a listener may subscribe or cancel
// while an emission is in progress; the change applies from the next Emit.
package emitter

import "slices"

type listener[T any] struct {
	fn func(T)
	id uint64
}

// Emitter delivers values to registered listeners.
// The zero value is ready to use. An Emitter is not safe for concurrent use.
type Emitter[T any] struct {
	listeners []listener[T]
	nextID    uint64
}

// On registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (e *Emitter[T]) On(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	next := make([]listener[T], len(e.listeners), len(e.listeners)+1)
	copy(next, e.listeners)
	e.listeners = append(next, listener[T]{fn: fn, id: id})
	return func() { e.off(id) }
}

func (e *Emitter[T]) off(id uint64) {
	idx := slices.IndexFunc(e.listeners, func(l listener[T]) bool { return l.id == id })
	if idx < 0 {
		return
	}
	e.listeners = slices.Delete(slices.Clone(e.listeners), idx, idx+1)
}

// Emit delivers v to every listener registered before the call.
func (e *Emitter[T]) Emit(v T) {
	for _, l := range e.listeners {
		l.fn(v)
	}
}

// Len reports the number of registered listeners.
func (e *Emitter[T]) Len() int {
	return len(e.listeners)
}
