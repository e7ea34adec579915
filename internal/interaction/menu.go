package interaction

// MenuState is the visibility of the centre menu.
type MenuState int

const (
	MenuOpen MenuState = iota
	MenuClosed
)

// Toggle returns the other state.
func (m MenuState) Toggle() MenuState {
	if m == MenuOpen {
		return MenuClosed
	}
	return MenuOpen
}

func (m MenuState) String() string {
	switch m {
	case MenuOpen:
		return "open"
	case MenuClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Cursor is a presentational hint for the pointer shape over the 3D view.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
)

func (c Cursor) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}
