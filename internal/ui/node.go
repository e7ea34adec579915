package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label or button. Class and ID select its CSS rules.
// Position and size come from the stylesheet, relative to Parent (or the screen when Parent is nil);
// Bounds holds the result of the last layout in screen pixels.
type Node struct {
	Type   string // "panel", "label" or "button"
	Class  string // e.g. "menu-item" for .menu-item
	ID     string // e.g. "toggle" for #toggle
	Text   string
	Value  string // opaque payload of a button, e.g. a category id
	Parent *Node

	Offset    rl.Vector2 // added to the styled position
	MinHeight float32
	Opacity   float32 // multiplies the style opacity
	Scale     float32 // about the screen centre; 0 means 1
	Hidden    bool    // not drawn, not clickable
	Disabled  bool    // drawn, not clickable

	Bounds rl.Rectangle
}

// NewNode creates a visible, fully opaque node.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:    typ,
		Class:   class,
		ID:      id,
		Text:    text,
		Opacity: 1,
	}
}

// Clickable reports whether the node takes pointer input: a visible, enabled button whose
// ancestors are visible and enabled too.
func (n *Node) Clickable() bool {
	if n.Type != "button" {
		return false
	}
	for p := n; p != nil; p = p.Parent {
		if p.Hidden || p.Disabled {
			return false
		}
	}
	return true
}

// visible reports whether n and all its ancestors are shown.
func (n *Node) visible() bool {
	for p := n; p != nil; p = p.Parent {
		if p.Hidden {
			return false
		}
	}
	return true
}
