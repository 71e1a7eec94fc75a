package channel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/internal/transport"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
)

func newTestChannel(t *testing.T, h Handlers) (*Channel, *transport.Pipe) {
	t.Helper()
	pipe := transport.NewPipe(64)
	c := New(context.Background(), protocol.NewViewID(), pipe)
	c.SetHandlers(h)
	c.Start()
	t.Cleanup(func() {
		c.Close()
		_ = pipe.Close()
	})
	return c, pipe
}

func TestChannel_CommandsReachWorkerInFIFOOrder(t *testing.T) {
	c, pipe := newTestChannel(t, Handlers{})

	const n = 50
	for i := 0; i < n; i++ {
		c.Enqueue(protocol.OpMouseMove, protocol.MouseMovePayload{X: i})
	}

	for i := 0; i < n; i++ {
		select {
		case cmd := <-pipe.Commands():
			assert.Equal(t, protocol.OpMouseMove, cmd.Op)
			assert.Equal(t, i, cmd.Payload.(protocol.MouseMovePayload).X)
			assert.Equal(t, uint64(i+1), cmd.Seq)
		case <-time.After(time.Second):
			t.Fatalf("command %d never arrived", i)
		}
	}
}

func TestChannel_EnqueueNeverBlocksBeyondTransportCapacity(t *testing.T) {
	// Pipe capacity 1 and no consumer: every Enqueue must still return.
	pipe := transport.NewPipe(1)
	c := New(context.Background(), protocol.NewViewID(), pipe)
	c.SetHandlers(Handlers{})
	c.Start()
	defer func() {
		_ = pipe.Close()
		c.Close()
	}()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			c.Enqueue(protocol.OpStop, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on transport backpressure")
	}
}

func TestChannel_RoutesScriptResult(t *testing.T) {
	got := make(chan protocol.ScriptResultPayload, 1)
	_, pipe := newTestChannel(t, Handlers{
		OnScriptResult: func(id uint64, v jsvalue.Value) {
			got <- protocol.ScriptResultPayload{RequestID: id, Value: v}
		},
	})

	require.NoError(t, pipe.Emit(protocol.Event{
		Kind:    protocol.EvScriptResult,
		Payload: protocol.ScriptResultPayload{RequestID: 7, Value: jsvalue.Number(3)},
	}))

	select {
	case p := <-got:
		assert.Equal(t, uint64(7), p.RequestID)
		assert.Equal(t, float64(3), p.Value.Number())
	case <-time.After(time.Second):
		t.Fatal("script result never routed")
	}
}

func TestChannel_RoutesPaintAndResizeAck(t *testing.T) {
	paints := make(chan render.Rect, 1)
	acks := make(chan [2]int, 1)
	_, pipe := newTestChannel(t, Handlers{
		OnPaint:     func(_ *render.Buffer, dirty render.Rect) { paints <- dirty },
		OnResizeAck: func(w, h int) { acks <- [2]int{w, h} },
	})

	buf := render.NewBuffer(10, 10, 4)
	require.NoError(t, pipe.Emit(protocol.Event{
		Kind:    protocol.EvPaint,
		Payload: protocol.PaintPayload{Buffer: buf, Dirty: render.Rect{Width: 4, Height: 4}},
	}))
	require.NoError(t, pipe.Emit(protocol.Event{
		Kind:    protocol.EvResizeAck,
		Payload: protocol.ResizeAckPayload{Width: 320, Height: 240},
	}))

	select {
	case dirty := <-paints:
		assert.Equal(t, render.Rect{Width: 4, Height: 4}, dirty)
	case <-time.After(time.Second):
		t.Fatal("paint never routed")
	}
	select {
	case wh := <-acks:
		assert.Equal(t, [2]int{320, 240}, wh)
	case <-time.After(time.Second):
		t.Fatal("resize ack never routed")
	}
}

func TestChannel_ListenerEventsGoToListenerHandlerOnly(t *testing.T) {
	var mu sync.Mutex
	var kinds []protocol.EventKind
	crashed := false
	_, pipe := newTestChannel(t, Handlers{
		OnListener: func(ev protocol.Event) {
			mu.Lock()
			kinds = append(kinds, ev.Kind)
			mu.Unlock()
		},
		OnCrashed: func(string) {
			mu.Lock()
			crashed = true
			mu.Unlock()
		},
	})

	for _, ev := range []protocol.Event{
		{Kind: protocol.EvLoadStarted, Payload: protocol.LoadStartedPayload{URL: "local://a"}},
		{Kind: protocol.EvTitleChanged, Payload: protocol.TitleChangedPayload{Title: "t"}},
		{Kind: protocol.EvConsoleMessage, Payload: protocol.ConsoleMessagePayload{Message: "m"}},
		{Kind: protocol.EvLoadFinished, Payload: protocol.LoadFinishedPayload{URL: "local://a"}},
	} {
		require.NoError(t, pipe.Emit(ev))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(kinds) == 4
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []protocol.EventKind{
		protocol.EvLoadStarted,
		protocol.EvTitleChanged,
		protocol.EvConsoleMessage,
		protocol.EvLoadFinished,
	}, kinds, "listener events keep worker order")
	assert.False(t, crashed)
}

func TestChannel_CrashRoutesToCrashHandler(t *testing.T) {
	reasons := make(chan string, 1)
	_, pipe := newTestChannel(t, Handlers{
		OnCrashed: func(reason string) { reasons <- reason },
	})

	require.NoError(t, pipe.Emit(protocol.Event{
		Kind:    protocol.EvCrashed,
		Payload: protocol.CrashedPayload{Reason: "renderer died"},
	}))

	select {
	case reason := <-reasons:
		assert.Equal(t, "renderer died", reason)
	case <-time.After(time.Second):
		t.Fatal("crash never routed")
	}
}

func TestChannel_EnqueueAfterCloseIsDropped(t *testing.T) {
	pipe := transport.NewPipe(8)
	c := New(context.Background(), protocol.NewViewID(), pipe)
	c.SetHandlers(Handlers{})
	c.Start()

	c.Enqueue(protocol.OpStop, nil)
	c.Close()
	c.Enqueue(protocol.OpReload, nil)

	// Only the pre-close command may arrive.
	select {
	case cmd := <-pipe.Commands():
		assert.Equal(t, protocol.OpStop, cmd.Op)
	case <-time.After(time.Second):
		t.Fatal("pre-close command never flushed")
	}
	select {
	case cmd := <-pipe.Commands():
		t.Fatalf("unexpected command after close: %s", cmd.Op)
	case <-time.After(50 * time.Millisecond):
	}
	_ = pipe.Close()
}
