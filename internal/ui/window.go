package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/foldkit/accordeon"
	"github.com/foldkit/accordeon/internal/app"
	"github.com/foldkit/accordeon/internal/model"
)

// AppController defines the interface for app-level operations needed by the UI
type AppController interface {
	State() *model.DemoState
	Logger() *slog.Logger
	Manifest() *app.Manifest
}

// MainWindow manages the main demo window and its layout.
type MainWindow struct {
	window fyne.Window
	state  *model.DemoState
	logger *slog.Logger

	// Coordinated section widgets
	group  *accordeon.Accordeon
	panels []*accordeon.Panel

	// Controls
	expandAllBtn   *widget.Button
	collapseAllBtn *widget.Button
	sectionSelect  *widget.Select
}

// NewMainWindow creates the demo window: a scrollable column of collapsible
// sections coordinated by a single Accordeon, a control bar on top and a
// status bar showing the open section at the bottom.
func NewMainWindow(fyneApp fyne.App, controller AppController) *MainWindow {
	manifest := controller.Manifest()
	window := fyneApp.NewWindow(manifest.Title)

	mw := &MainWindow{
		window: window,
		state:  controller.State(),
		logger: controller.Logger(),
	}

	mw.buildSections(manifest)
	mw.buildControls(manifest)
	mw.setContent()
	mw.setupKeyboardShortcuts()

	window.Resize(fyne.NewSize(520, 640))

	return mw
}

// Window returns the underlying Fyne window.
func (mw *MainWindow) Window() fyne.Window {
	return mw.window
}

// buildSections creates one Panel per manifest section and hands the whole
// set to an Accordeon for single-open coordination.
func (mw *MainWindow) buildSections(manifest *app.Manifest) {
	expanders := make([]accordeon.Expander, 0, len(manifest.Sections))
	for _, section := range manifest.Sections {
		body := widget.NewLabel(section.Body)
		body.Wrapping = fyne.TextWrapWord

		panel := accordeon.NewPanel(section.Title, body)
		mw.panels = append(mw.panels, panel)
		expanders = append(expanders, panel)

		panel.OnActivated(mw.sectionActivated)
	}

	mw.group = accordeon.New(expanders...)

	// Honor the manifest's initial open section; the first one marked
	// expanded wins, everything else starts closed.
	for i, section := range manifest.Sections {
		if section.Expanded {
			mw.group.CollapseAllButIndex(i)
			break
		}
	}
}

// buildControls wires the Expand All / Collapse All buttons and the
// open-exactly-one section picker.
func (mw *MainWindow) buildControls(manifest *app.Manifest) {
	mw.expandAllBtn = widget.NewButton("Expand All", func() {
		mw.logger.Debug("expanding all sections")
		mw.group.ExpandAll()
	})

	mw.collapseAllBtn = widget.NewButton("Collapse All", func() {
		mw.logger.Debug("collapsing all sections")
		mw.group.CollapseAll()
	})

	titles := make([]string, 0, len(manifest.Sections))
	for _, section := range manifest.Sections {
		titles = append(titles, section.Title)
	}

	mw.sectionSelect = widget.NewSelect(titles, func(selected string) {
		for i, panel := range mw.panels {
			if panel.Title() == selected {
				mw.logger.Debug("opening section via picker", slog.String("title", selected))
				mw.group.CollapseAllButIndex(i)
				return
			}
		}
	})
	mw.sectionSelect.PlaceHolder = "Open section…"
}

// sectionActivated recomputes the status bar after any panel changes state.
// The open-section binding holds a title only while exactly one section is
// open; Expand All leaves it empty.
func (mw *MainWindow) sectionActivated() {
	open := ""
	count := 0
	for _, panel := range mw.panels {
		if panel.Expanded() {
			open = panel.Title()
			count++
		}
	}
	if count != 1 {
		open = ""
	}
	_ = mw.state.OpenSection.Set(open)
}

// setContent assembles the window layout:
//   - Top: control bar (Expand All, Collapse All, section picker)
//   - Center: scrollable column of collapsible sections
//   - Bottom: status bar bound to the open section
func (mw *MainWindow) setContent() {
	controls := container.NewHBox(mw.expandAllBtn, mw.collapseAllBtn, mw.sectionSelect)

	sections := make([]fyne.CanvasObject, 0, len(mw.panels))
	for _, panel := range mw.panels {
		sections = append(sections, panel)
	}
	column := container.NewVScroll(container.NewVBox(sections...))

	status := container.NewHBox(
		widget.NewLabel("Open section:"),
		widget.NewLabelWithData(mw.state.OpenSection),
	)

	mw.window.SetContent(container.NewBorder(controls, status, nil, nil, column))
}
