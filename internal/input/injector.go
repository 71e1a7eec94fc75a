// Package input translates host input calls into fire-and-forget protocol
// commands. Injection is asynchronous: effects surface later as paint or
// callback events, never as return values.
package input

import (
	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/pkg/webinput"
)

// EnqueueFunc posts a command onto the view's command channel.
type EnqueueFunc func(op protocol.Op, payload any)

// Injector forwards input events to the worker.
type Injector struct {
	enqueue EnqueueFunc
}

// NewInjector creates an injector posting commands through enqueue.
func NewInjector(enqueue EnqueueFunc) *Injector {
	return &Injector{enqueue: enqueue}
}

// MouseMove injects a pointer move to view coordinates.
func (i *Injector) MouseMove(x, y int) {
	i.enqueue(protocol.OpMouseMove, protocol.MouseMovePayload{X: x, Y: y})
}

// MouseDown injects a button press at the current pointer position.
func (i *Injector) MouseDown(button webinput.MouseButton) {
	i.enqueue(protocol.OpMouseDown, protocol.MouseButtonPayload{Button: button})
}

// MouseUp injects a button release at the current pointer position.
func (i *Injector) MouseUp(button webinput.MouseButton) {
	i.enqueue(protocol.OpMouseUp, protocol.MouseButtonPayload{Button: button})
}

// MouseWheel injects a scroll by delta.
func (i *Injector) MouseWheel(delta int) {
	i.enqueue(protocol.OpMouseWheel, protocol.MouseWheelPayload{Delta: delta})
}

// KeyboardEvent injects a keyboard event.
func (i *Injector) KeyboardEvent(event webinput.KeyboardEvent) {
	i.enqueue(protocol.OpKeyboard, protocol.KeyboardPayload{Event: event})
}

// Focus gives the view input focus.
func (i *Injector) Focus() {
	i.enqueue(protocol.OpFocus, nil)
}

// Unfocus removes input focus from the view.
func (i *Injector) Unfocus() {
	i.enqueue(protocol.OpUnfocus, nil)
}
