package accordeon

// Accordeon coordinates a set of externally owned Expanders so that
// expanding one collapses all the others. The panels stay owned by the
// caller and the host toolkit; the Accordeon holds only references and the
// activation subscriptions it created, and Remove symmetrically tears a
// subscription down again.
//
// The single-open rule is maintained reactively, not validated up front:
// ExpandAll deliberately breaks it, and nothing restores it until the next
// activation notification arrives.
//
// While the Accordeon is mutating panel states itself it ignores the
// notifications those mutations fire. Without that, ExpandAll would trip
// its own single-open reaction and close every panel but the last.
//
// An Accordeon is not safe for concurrent use. Like the widgets it
// coordinates, it expects to be driven from the toolkit's event loop.
type Accordeon struct {
	entries []entry
	busy    bool
}

type entry struct {
	expander Expander
	cancel   func()
}

// New creates an Accordeon pre-populated with the given expanders and
// subscribes to each of them. Like AddAll, no duplicate check is applied.
func New(expanders ...Expander) *Accordeon {
	a := &Accordeon{}
	a.AddAll(expanders...)
	return a
}

// Add appends e and subscribes to its activation notification. Adding an
// expander that is already present is a silent no-op.
func (a *Accordeon) Add(e Expander) {
	for _, ent := range a.entries {
		if ent.expander == e {
			return
		}
	}
	a.subscribe(e)
}

// AddAll appends every given expander unconditionally and subscribes to
// each. Unlike Add it performs no duplicate check, so an expander passed
// twice is counted twice; callers that need de-duplication should Add one
// item at a time.
func (a *Accordeon) AddAll(expanders ...Expander) {
	for _, e := range expanders {
		a.subscribe(e)
	}
}

func (a *Accordeon) subscribe(e Expander) {
	cancel := e.OnActivated(func() {
		a.activated(e)
	})
	a.entries = append(a.entries, entry{expander: e, cancel: cancel})
}

// Remove cancels the activation subscription for e and drops it from the
// set. Removing an expander that is not present is a silent no-op. When e
// was added more than once, only its first entry is removed.
func (a *Accordeon) Remove(e Expander) {
	for i, ent := range a.entries {
		if ent.expander == e {
			ent.cancel()
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return
		}
	}
}

// CollapseAll collapses every coordinated expander.
func (a *Accordeon) CollapseAll() {
	a.setStates(func(int, Expander) bool { return false })
}

// ExpandAll expands every coordinated expander. This intentionally breaks
// the single-open rule as a "show me everything" escape hatch; the rule
// re-establishes itself on the next activation.
func (a *Accordeon) ExpandAll() {
	a.setStates(func(int, Expander) bool { return true })
}

// CollapseAllButIndex expands only the expander at position index and
// collapses every other one. No bounds check is applied: an out-of-range
// index simply collapses everything.
func (a *Accordeon) CollapseAllButIndex(index int) {
	a.setStates(func(i int, _ Expander) bool { return i == index })
}

// CollapseAllBut expands only e and collapses every other expander. If e
// is not part of the set, everything is collapsed.
func (a *Accordeon) CollapseAllBut(e Expander) {
	a.setStates(func(_ int, item Expander) bool { return item == e })
}

// setStates drives every expander to the state picked by expanded, with the
// busy guard up so the resulting notifications do not feed back into
// activated.
func (a *Accordeon) setStates(expanded func(i int, e Expander) bool) {
	a.busy = true
	defer func() { a.busy = false }()
	for i, ent := range a.entries {
		ent.expander.SetExpanded(expanded(i, ent.expander))
	}
}

// At returns the expander at position index in insertion order. It panics
// with the runtime's index-out-of-range error when index is not in
// [0, Len()).
func (a *Accordeon) At(index int) Expander {
	return a.entries[index].expander
}

// Len returns the number of coordinated expanders.
func (a *Accordeon) Len() int {
	return len(a.entries)
}

// Expanders returns the coordinated expanders in insertion order. The
// returned slice is a copy; mutating it does not affect the Accordeon.
func (a *Accordeon) Expanders() []Expander {
	out := make([]Expander, len(a.entries))
	for i, ent := range a.entries {
		out[i] = ent.expander
	}
	return out
}

// activated handles an activation notification from e. Expanding one panel
// forces every other panel closed. A collapse notification changes nothing:
// closing a panel never auto-opens another. Notifications caused by the
// Accordeon's own mutations are ignored.
func (a *Accordeon) activated(e Expander) {
	if a.busy || !e.Expanded() {
		return
	}
	a.setStates(func(_ int, item Expander) bool { return item == e })
}
