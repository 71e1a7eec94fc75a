// Package webinput defines the host-side input primitives injected into a
// view. Events are translated into fire-and-forget protocol commands; no
// acknowledgement is awaited.
package webinput

// MouseButton identifies which mouse button an event refers to.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// KeyEventType distinguishes the keyboard event variants.
type KeyEventType int

const (
	KeyDown KeyEventType = iota
	KeyUp
	KeyChar
)

// Modifier flags for keyboard events.
const (
	ModShift = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

// KeyboardEvent carries a single keyboard event in the shape the page
// expects: virtual key code plus the text the key produces.
type KeyboardEvent struct {
	Type           KeyEventType
	VirtualKeyCode int
	NativeKeyCode  int
	Modifiers      int
	Text           string
	UnmodifiedText string
}
