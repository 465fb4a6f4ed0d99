// Package accordeon coordinates collapsible panel widgets so that opening
// one closes all the others, giving a set of independent expanders the feel
// of a radio group.
//
// The package ships a Fyne Panel widget that can be coordinated out of the
// box, but the Accordeon itself only depends on the small Expander
// capability, so any widget that can report, set and announce its expanded
// state can take part.
package accordeon

// Expander is the capability the Accordeon coordinates: a panel with a
// boolean expanded state and an activation notification that fires whenever
// that state changes, whether by user interaction or programmatically.
//
// Implementations must notify only on an actual state change; re-asserting
// the current value stays silent. The Accordeon relies on this while it
// forces other panels closed, otherwise the forced collapses would echo
// back as fresh notifications forever.
type Expander interface {
	// Expanded reports whether the panel is currently expanded.
	Expanded() bool

	// SetExpanded expands or collapses the panel and, on an actual state
	// change, fires the activation notification.
	SetExpanded(expanded bool)

	// OnActivated registers fn to run on every activation notification.
	// The returned cancel function removes the registration.
	OnActivated(fn func()) (cancel func())
}
