package ui

import "fmt"

// Item is one category entry of the centre menu. ID is opaque to the menu.
type Item struct {
	ID    string
	Label string
}

// Action is what a click on a menu node asks for.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionCategory
	ActionDismiss
)

const (
	fadeSeconds = 0.3 // menu fade/scale transition
	closedScale = 0.8
	itemStep    = 58 // vertical distance between menu items
	menuFooter  = 20
)

// Menu is the overlay of the showroom: the centre category menu, the toggle button, the status label
// and the blocking notification. It only tracks what is shown; the caller decides what a click does.
type Menu struct {
	panel  *Node
	title  *Node
	items  []*Node
	toggle *Node
	status *Node

	overlay *Node
	notice  *Node
	text    *Node
	hint    *Node

	open  bool
	shown float32 // 0 closed .. 1 open
}

// NewMenu builds the overlay for items. It starts open, matching the initial interaction state.
func NewMenu(items []Item) *Menu {
	m := &Menu{
		panel:   NewNode("panel", "center-menu", "", ""),
		toggle:  NewNode("button", "", "toggle", ""),
		status:  NewNode("label", "status", "", ""),
		overlay: NewNode("button", "notice-overlay", "notice", ""),
		notice:  NewNode("panel", "notice", "", ""),
		hint:    NewNode("label", "notice-hint", "", "Click or press Enter to continue"),
		open:    true,
		shown:   1,
	}
	m.title = NewNode("label", "menu-title", "", "Categories")
	m.title.Parent = m.panel
	for i, it := range items {
		label := it.Label
		if label == "" {
			label = it.ID
		}
		n := NewNode("button", "menu-item", "", label)
		n.Value = it.ID
		n.Parent = m.panel
		n.Offset.Y = float32(i * itemStep)
		m.items = append(m.items, n)
	}
	m.panel.MinHeight = float32(72 + len(items)*itemStep + menuFooter)
	m.text = NewNode("label", "notice-text", "", "")
	m.text.Parent = m.notice
	m.hint.Parent = m.notice
	m.notice.Parent = m.overlay
	m.status.Hidden = true
	m.overlay.Hidden = true
	m.SetOpen(true)
	m.apply()
	return m
}

// Nodes returns every overlay node in draw order.
func (m *Menu) Nodes() []*Node {
	out := []*Node{m.panel, m.title}
	out = append(out, m.items...)
	return append(out, m.toggle, m.status, m.overlay, m.notice, m.text, m.hint)
}

// SetOpen follows the menu state: it relabels the toggle button and starts the fade.
// A closed menu stops taking clicks at once, while it is still fading out.
func (m *Menu) SetOpen(open bool) {
	m.open = open
	if open {
		m.toggle.Text = "Hide menu"
	} else {
		m.toggle.Text = "Show menu"
	}
	m.panel.Disabled = !open
}

// Open reports the last state passed to SetOpen.
func (m *Menu) Open() bool {
	return m.open
}

// Shown returns the transition progress, 0 fully hidden to 1 fully shown.
func (m *Menu) Shown() float32 {
	return m.shown
}

// Update advances the fade by dt seconds.
func (m *Menu) Update(dt float32) {
	step := dt / fadeSeconds
	if m.open {
		m.shown = min(m.shown+step, 1)
	} else {
		m.shown = max(m.shown-step, 0)
	}
	m.apply()
}

func (m *Menu) apply() {
	scale := closedScale + (1-closedScale)*m.shown
	for _, n := range append([]*Node{m.panel, m.title}, m.items...) {
		n.Opacity = m.shown
		n.Scale = scale
	}
	m.panel.Hidden = m.shown <= 0
}

// SetStatus shows text in the status label; an empty string hides it.
func (m *Menu) SetStatus(text string) {
	m.status.Text = text
	m.status.Hidden = text == ""
}

// Status returns the status label text.
func (m *Menu) Status() string {
	return m.status.Text
}

// Notify opens the blocking notification with msg, replacing any open one.
func (m *Menu) Notify(msg string) {
	m.text.Text = msg
	m.overlay.Hidden = false
}

// Notice returns the open notification, if any.
func (m *Menu) Notice() (string, bool) {
	if m.overlay.Hidden {
		return "", false
	}
	return m.text.Text, true
}

// Dismiss closes the notification.
func (m *Menu) Dismiss() {
	m.overlay.Hidden = true
	m.text.Text = ""
}

// Action maps a clicked node to what it asks for. While a notification is open every click dismisses it.
// For ActionCategory the second result is the category id.
func (m *Menu) Action(n *Node) (Action, string) {
	if !m.overlay.Hidden {
		return ActionDismiss, ""
	}
	switch {
	case n == nil:
		return ActionNone, ""
	case n == m.toggle:
		return ActionToggle, ""
	case n.Class == "menu-item" && n.Parent == m.panel:
		return ActionCategory, n.Value
	}
	return ActionNone, ""
}

// ProductMessage is the notification text for a selected category.
func ProductMessage(category string) string {
	return fmt.Sprintf("Showing products for category: %s", category)
}
