package model

import "fyne.io/fyne/v2/data/binding"

// DemoState represents the centralized demo state with Fyne data bindings.
// UI components bind to these values for reactive updates.
type DemoState struct {
	// OpenSection is the title of the currently open section, or "" when
	// none (or more than one, after Expand All) is open.
	OpenSection binding.String

	// SectionCount is the number of sections built from the manifest.
	SectionCount binding.Int
}

// NewDemoState creates a new DemoState with initialized bindings.
func NewDemoState() *DemoState {
	open := binding.NewString()
	_ = open.Set("") // Nothing open until the first activation

	return &DemoState{
		OpenSection:  open,
		SectionCount: binding.NewInt(),
	}
}
