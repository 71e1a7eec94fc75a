// Package channel implements the per-view command channel: ordered,
// non-blocking dispatch of control messages to the worker, and routing of
// worker events back to the script bridge, the render surface, and the
// registered listener.
package channel

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/offview/offview/internal/logging"
	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/internal/transport"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
)

// Handlers receives routed events. Each event dispatches to exactly one
// handler, decided by event kind; the crash handler is responsible for the
// full crash fanout (failing pending script calls, invalidating the render
// buffer, notifying the listener). Handlers are invoked sequentially from a
// single dispatch goroutine, preserving worker event order.
type Handlers struct {
	OnScriptResult func(requestID uint64, value jsvalue.Value)
	OnPaint        func(buffer *render.Buffer, dirty render.Rect)
	OnResizeAck    func(width, height int)
	OnListener     func(ev protocol.Event)
	OnCrashed      func(reason string)
	OnTeardown     func()
}

// Channel is the command/event conduit for one view.
type Channel struct {
	view protocol.ViewID
	tr   transport.Transport
	log  zerolog.Logger

	handlers Handlers

	mu     sync.Mutex
	queue  []protocol.Command
	seq    uint64
	closed bool

	kick    chan struct{}
	closing chan struct{}
	done    sync.WaitGroup
}

// New creates a channel for the given view over the given transport.
func New(ctx context.Context, view protocol.ViewID, tr transport.Transport) *Channel {
	log := logging.FromContext(ctx).With().
		Str("component", "channel").
		Str("view_id", string(view)).
		Logger()
	return &Channel{
		view:    view,
		tr:      tr,
		log:     log,
		kick:    make(chan struct{}, 1),
		closing: make(chan struct{}),
	}
}

// SetHandlers registers the routing targets. Must be called before Start.
func (c *Channel) SetHandlers(h Handlers) {
	c.handlers = h
}

// Start launches the command pump and the event dispatcher.
func (c *Channel) Start() {
	c.done.Add(2)
	go c.pump()
	go c.dispatch()
}

// Enqueue appends a command to the view's FIFO queue. It never blocks and
// never fails observably: worker-side failures surface as events. Commands
// enqueued after Close are dropped.
func (c *Channel) Enqueue(op protocol.Op, payload any) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.log.Debug().Str("op", string(op)).Msg("command dropped after close")
		return
	}
	c.seq++
	c.queue = append(c.queue, protocol.Command{
		View:    c.view,
		Seq:     c.seq,
		Op:      op,
		Payload: payload,
	})
	c.mu.Unlock()

	select {
	case c.kick <- struct{}{}:
	default:
	}
}

// pump drains the queue into the transport, preserving enqueue order.
func (c *Channel) pump() {
	defer c.done.Done()
	for {
		select {
		case <-c.kick:
		case <-c.closing:
			// Flush whatever was enqueued before close so a queued
			// destroy still reaches the worker.
			c.flush()
			return
		}
		c.flush()
	}
}

func (c *Channel) flush() {
	for {
		c.mu.Lock()
		if len(c.queue) == 0 {
			c.mu.Unlock()
			return
		}
		cmd := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()

		if err := c.tr.Send(cmd); err != nil {
			// Transport gone; the worker can no longer observe
			// anything we send. Failures surface as events, not
			// here.
			c.log.Debug().Err(err).Str("op", string(cmd.Op)).Msg("send failed")
			return
		}
	}
}

// dispatch routes worker events in production order.
func (c *Channel) dispatch() {
	defer c.done.Done()
	for {
		select {
		case ev, ok := <-c.tr.Events():
			if !ok {
				return
			}
			c.route(ev)
		case <-c.closing:
			return
		}
	}
}

func (c *Channel) route(ev protocol.Event) {
	switch ev.Kind {
	case protocol.EvScriptResult:
		p, ok := ev.Payload.(protocol.ScriptResultPayload)
		if ok && c.handlers.OnScriptResult != nil {
			c.handlers.OnScriptResult(p.RequestID, p.Value)
		}
	case protocol.EvPaint:
		p, ok := ev.Payload.(protocol.PaintPayload)
		if ok && c.handlers.OnPaint != nil {
			c.handlers.OnPaint(p.Buffer, p.Dirty)
		}
	case protocol.EvResizeAck:
		p, ok := ev.Payload.(protocol.ResizeAckPayload)
		if ok && c.handlers.OnResizeAck != nil {
			c.handlers.OnResizeAck(p.Width, p.Height)
		}
	case protocol.EvCrashed:
		reason := ""
		if p, ok := ev.Payload.(protocol.CrashedPayload); ok {
			reason = p.Reason
		}
		c.log.Warn().Str("reason", reason).Msg("worker crashed")
		if c.handlers.OnCrashed != nil {
			c.handlers.OnCrashed(reason)
		}
	case protocol.EvTeardownComplete:
		if c.handlers.OnTeardown != nil {
			c.handlers.OnTeardown()
		}
	default:
		// Load state, title, URL, console and script callbacks all
		// belong to the listener.
		if c.handlers.OnListener != nil {
			c.handlers.OnListener(ev)
		}
	}
}

// Close stops accepting commands, flushes the queue, and stops dispatching.
// It does not close the transport; the owner does that once teardown
// completes.
func (c *Channel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	close(c.closing)
	c.done.Wait()
}
