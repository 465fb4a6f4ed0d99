package accordeon

import "slices"

// Notifier is a minimal activation-listener registry. Expander
// implementations can embed it to get the OnActivated half of the interface
// for free and call Notify after each real state change.
//
// The zero value is ready to use.
type Notifier struct {
	nextID    int
	listeners map[int]func()
}

// OnActivated registers fn to run on every activation notification. The
// returned cancel function removes the registration; calling it more than
// once is harmless.
func (n *Notifier) OnActivated(fn func()) (cancel func()) {
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

// Notify invokes every registered listener in registration order.
func (n *Notifier) Notify() {
	ids := make([]int, 0, len(n.listeners))
	for id := range n.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		// A listener may have been cancelled by an earlier one.
		if fn, ok := n.listeners[id]; ok {
			fn()
		}
	}
}
