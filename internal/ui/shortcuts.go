package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupKeyboardShortcuts configures all keyboard shortcuts for the main window
func (mw *MainWindow) setupKeyboardShortcuts() {
	canvas := mw.window.Canvas()

	// Cmd+E: Expand all sections
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyE,
		Modifier: fyne.KeyModifierSuper, // Cmd on macOS, Win on Windows
	}, func(shortcut fyne.Shortcut) {
		mw.logger.Debug("keyboard shortcut: expand all")
		mw.group.ExpandAll()
	})

	// Cmd+K: Collapse all sections
	canvas.AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyK,
		Modifier: fyne.KeyModifierSuper,
	}, func(shortcut fyne.Shortcut) {
		mw.logger.Debug("keyboard shortcut: collapse all")
		mw.group.CollapseAll()
	})

	// Cmd+1 .. Cmd+9: Open exactly that section, closing the rest
	digits := []fyne.KeyName{
		fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4, fyne.Key5,
		fyne.Key6, fyne.Key7, fyne.Key8, fyne.Key9,
	}
	for i, key := range digits {
		canvas.AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierSuper,
		}, func(shortcut fyne.Shortcut) {
			mw.logger.Debug("keyboard shortcut: open section", slog.Int("index", i))
			mw.group.CollapseAllButIndex(i)
		})
	}
}
