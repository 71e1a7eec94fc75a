package surface

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/pkg/render"
)

type commandLog struct {
	mu  sync.Mutex
	ops []protocol.Op
}

func (l *commandLog) enqueue(op protocol.Op, payload any) {
	l.mu.Lock()
	l.ops = append(l.ops, op)
	l.mu.Unlock()
}

func (l *commandLog) list() []protocol.Op {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]protocol.Op(nil), l.ops...)
}

func newTestManager() (*Manager, *commandLog) {
	log := &commandLog{}
	return NewManager(log.enqueue), log
}

func TestManager_PaintAccumulatesDirtyUnion(t *testing.T) {
	m, _ := newTestManager()
	buf := render.NewBuffer(800, 600, 4)

	m.HandlePaint(buf, render.Rect{X: 0, Y: 0, Width: 10, Height: 10})
	m.HandlePaint(buf, render.Rect{X: 90, Y: 90, Width: 10, Height: 10})

	require.True(t, m.IsDirty())
	assert.Equal(t, render.Rect{X: 0, Y: 0, Width: 100, Height: 100}, m.DirtyBounds())
}

func TestManager_RenderClearsDirty(t *testing.T) {
	m, _ := newTestManager()
	buf := render.NewBuffer(640, 480, 4)
	m.HandlePaint(buf, render.Rect{X: 1, Y: 2, Width: 3, Height: 4})

	got := m.Render()
	require.Same(t, buf, got)
	assert.False(t, m.IsDirty())
	assert.True(t, m.DirtyBounds().IsEmpty())
}

func TestManager_RenderAfterCrashReturnsNil(t *testing.T) {
	m, _ := newTestManager()
	m.HandlePaint(render.NewBuffer(100, 100, 4), render.Rect{Width: 5, Height: 5})

	m.HandleCrash()

	assert.Nil(t, m.Render())
	assert.False(t, m.IsDirty())
	assert.Equal(t, StateCrashed, m.State())
}

func TestManager_PaintIgnoredWhilePaused(t *testing.T) {
	m, log := newTestManager()
	m.Pause()
	m.HandlePaint(render.NewBuffer(100, 100, 4), render.Rect{Width: 5, Height: 5})
	assert.False(t, m.IsDirty())
	assert.Nil(t, m.Render())

	m.Resume()
	buf := render.NewBuffer(100, 100, 4)
	m.HandlePaint(buf, render.Rect{Width: 5, Height: 5})
	assert.True(t, m.IsDirty())
	assert.Same(t, buf, m.Render())

	assert.Equal(t, []protocol.Op{protocol.OpPauseRendering, protocol.OpResumeRendering}, log.list())
}

func TestManager_ResizeWithoutWaitReturnsImmediately(t *testing.T) {
	m, log := newTestManager()

	ok := m.Resize(200, 150, false, 0)
	require.True(t, ok)
	assert.True(t, m.IsResizing())
	assert.Equal(t, []protocol.Op{protocol.OpResize}, log.list())

	m.HandleResizeAck(200, 150)
	assert.False(t, m.IsResizing())
	assert.Equal(t, StateIdle, m.State())
}

func TestManager_ResizeRejectsInvalidAndConcurrent(t *testing.T) {
	m, _ := newTestManager()

	assert.False(t, m.Resize(0, 100, false, 0))
	assert.False(t, m.Resize(100, -1, false, 0))

	require.True(t, m.Resize(100, 100, false, 0))
	assert.False(t, m.Resize(200, 200, false, 0), "second resize while one is in flight")

	m.HandleResizeAck(100, 100)
	assert.True(t, m.Resize(200, 200, false, 0))
}

func TestManager_ResizeWaitTimesOutThenLateAckRecovers(t *testing.T) {
	m, _ := newTestManager()

	done := make(chan bool, 1)
	go func() {
		done <- m.Resize(100, 100, true, time.Millisecond)
	}()

	select {
	case ok := <-done:
		assert.False(t, ok, "resize must time out without an ack")
	case <-time.After(time.Second):
		t.Fatal("resize wait did not return")
	}
	assert.True(t, m.IsResizing(), "surface stays resizing after a timed-out wait")

	// A late ack still completes the resize.
	m.HandleResizeAck(100, 100)
	assert.False(t, m.IsResizing())
	assert.Equal(t, StateIdle, m.State())
}

func TestManager_ResizeWaitSucceedsOnAck(t *testing.T) {
	m, _ := newTestManager()

	done := make(chan bool, 1)
	go func() {
		done <- m.Resize(320, 240, true, time.Second)
	}()

	// Let the request get in flight before acking.
	require.Eventually(t, m.IsResizing, time.Second, time.Millisecond)
	m.HandleResizeAck(320, 240)

	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("resize wait did not return")
	}
}

func TestManager_CrashFailsInFlightResize(t *testing.T) {
	m, _ := newTestManager()

	done := make(chan bool, 1)
	go func() {
		done <- m.Resize(100, 100, true, time.Second)
	}()
	require.Eventually(t, m.IsResizing, time.Second, time.Millisecond)

	m.HandleCrash()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("resize wait did not return after crash")
	}
	assert.Equal(t, StateCrashed, m.State())
	assert.False(t, m.Resize(50, 50, false, 0), "crashed surface rejects resizes")
}
