package accordeon

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Compile-time interface checks.
var (
	_ fyne.Widget = (*Panel)(nil)
	_ Expander    = (*Panel)(nil)
)

// Panel is a collapsible section widget: a tappable header row with a
// chevron that shows or hides the detail content below it. It implements
// Expander, so any number of Panels can be handed to an Accordeon for
// single-open coordination — or used standalone as a plain disclosure
// widget.
type Panel struct {
	widget.BaseWidget
	Notifier

	header   *widget.Button
	content  fyne.CanvasObject
	box      *fyne.Container
	expanded bool
}

// NewPanel creates a Panel with the given header title and detail content.
// The panel starts collapsed.
func NewPanel(title string, content fyne.CanvasObject) *Panel {
	p := &Panel{content: content}
	p.header = widget.NewButtonWithIcon(title, theme.MenuDropDownIcon(), p.toggle)
	p.header.Alignment = widget.ButtonAlignLeading
	p.content.Hide()
	p.box = container.NewVBox(p.header, p.content)
	p.ExtendBaseWidget(p)
	return p
}

// Title returns the header title.
func (p *Panel) Title() string {
	return p.header.Text
}

// SetTitle updates the header title.
func (p *Panel) SetTitle(title string) {
	p.header.SetText(title)
}

// Expanded reports whether the detail content is visible.
func (p *Panel) Expanded() bool {
	return p.expanded
}

// SetExpanded shows or hides the detail content and flips the header
// chevron. Listeners registered via OnActivated fire only when the state
// actually changes.
func (p *Panel) SetExpanded(expanded bool) {
	if p.expanded == expanded {
		return
	}
	p.expanded = expanded
	if expanded {
		p.header.SetIcon(theme.MenuDropUpIcon())
		p.content.Show()
	} else {
		p.header.SetIcon(theme.MenuDropDownIcon())
		p.content.Hide()
	}
	p.Refresh()
	p.Notify()
}

// toggle flips the expanded state in response to a header tap.
func (p *Panel) toggle() {
	p.SetExpanded(!p.expanded)
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.box)
}
