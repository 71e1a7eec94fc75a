// Package surface tracks the off-screen render surface for one view: the
// latest pixel snapshot, the accumulated dirty region, the pause switch, and
// the resize lifecycle.
package surface

import (
	"sync"
	"time"

	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/pkg/render"
)

// State is the surface lifecycle state.
type State int32

const (
	// StateIdle accepts paints and new resize requests.
	StateIdle State = iota
	// StateResizing has a resize in flight; further resizes are rejected.
	StateResizing
	// StateCrashed is terminal; the surface no longer yields pixels.
	StateCrashed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResizing:
		return "resizing"
	case StateCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// EnqueueFunc posts a command onto the view's command channel.
type EnqueueFunc func(op protocol.Op, payload any)

// Manager owns surface state for one view. Paint, ack and crash handlers are
// invoked from the channel's dispatch goroutine; the query and request
// methods from host goroutines.
type Manager struct {
	enqueue EnqueueFunc

	mu     sync.Mutex
	state  State
	buffer *render.Buffer
	dirty  render.Rect
	paused bool
	ack    chan bool
}

// NewManager creates a surface manager posting commands through enqueue.
func NewManager(enqueue EnqueueFunc) *Manager {
	return &Manager{enqueue: enqueue}
}

// Resize requests new surface dimensions. With wait set it blocks until the
// worker acknowledges the repaint at the new size, up to timeout. It returns
// false when the dimensions are invalid, a resize is already in flight, the
// surface has crashed, or the wait timed out. On timeout the resize stays in
// flight: a later ack returns the surface to idle, a crash makes it terminal.
func (m *Manager) Resize(width, height int, wait bool, timeout time.Duration) bool {
	if width <= 0 || height <= 0 {
		return false
	}

	m.mu.Lock()
	if m.state != StateIdle {
		m.mu.Unlock()
		return false
	}
	m.state = StateResizing
	ack := make(chan bool, 1)
	m.ack = ack
	m.mu.Unlock()

	m.enqueue(protocol.OpResize, protocol.ResizePayload{Width: width, Height: height})

	if !wait {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ok := <-ack:
		return ok
	case <-timer.C:
		return false
	}
}

// HandleResizeAck completes an in-flight resize.
func (m *Manager) HandleResizeAck(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateResizing {
		return
	}
	m.state = StateIdle
	m.signalAck(true)
}

// HandlePaint absorbs a repaint: the buffer reference is replaced and the
// dirty region grows to cover the union of unrendered damage. Paints are
// ignored while rendering is paused or after a crash.
func (m *Manager) HandlePaint(buffer *render.Buffer, dirty render.Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateCrashed || m.paused {
		return
	}
	m.buffer = buffer
	m.dirty = m.dirty.Union(dirty)
}

// HandleCrash moves the surface to its terminal state, drops the buffer, and
// fails any in-flight resize wait.
func (m *Manager) HandleCrash() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateCrashed
	m.buffer = nil
	m.dirty = render.Rect{}
	m.signalAck(false)
}

// signalAck delivers the resize outcome at most once. Callers hold mu.
func (m *Manager) signalAck(ok bool) {
	if m.ack == nil {
		return
	}
	select {
	case m.ack <- ok:
	default:
	}
	m.ack = nil
}

// Render returns the current pixel snapshot and clears the dirty region, or
// nil after a crash. The snapshot stays valid until the next paint.
func (m *Manager) Render() *render.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateCrashed {
		return nil
	}
	m.dirty = render.Rect{}
	return m.buffer
}

// IsDirty reports whether pixels changed since the last Render.
func (m *Manager) IsDirty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.dirty.IsEmpty()
}

// DirtyBounds returns the bounding rectangle of unrendered damage.
func (m *Manager) DirtyBounds() render.Rect {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirty
}

// IsResizing reports whether a resize is in flight.
func (m *Manager) IsResizing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateResizing
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Pause suppresses buffer updates until Resume. The worker keeps running;
// only surface-side absorption stops.
func (m *Manager) Pause() {
	m.mu.Lock()
	m.paused = true
	m.mu.Unlock()
	m.enqueue(protocol.OpPauseRendering, nil)
}

// Resume re-enables buffer updates.
func (m *Manager) Resume() {
	m.mu.Lock()
	m.paused = false
	m.mu.Unlock()
	m.enqueue(protocol.OpResumeRendering, nil)
}
