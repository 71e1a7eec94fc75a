// Package transport carries protocol traffic between the host-facing command
// channel and a worker. Process spawning and the real cross-process transport
// live outside this module; the in-process Pipe models the same contract for
// embedding, testing and the diagnostic CLI.
package transport

import (
	"errors"
	"sync"

	"github.com/offview/offview/internal/protocol"
)

// ErrClosed is returned when sending on a closed transport.
var ErrClosed = errors.New("transport: closed")

// Transport is the host side: commands go down, events come back.
type Transport interface {
	// Send hands a command to the worker. It may block briefly under
	// backpressure but never drops or reorders commands for a view.
	Send(cmd protocol.Command) error

	// Events returns the ordered stream of worker events. The channel is
	// closed when the transport closes.
	Events() <-chan protocol.Event

	// Close tears the transport down. Safe to call more than once.
	Close() error
}

// WorkerSide is the worker's view of the same duplex link.
type WorkerSide interface {
	// Commands returns the ordered stream of host commands.
	Commands() <-chan protocol.Command

	// Emit delivers an event to the host.
	Emit(ev protocol.Event) error

	// Done is closed when the transport closes.
	Done() <-chan struct{}
}

// Pipe is an in-process duplex transport. Both directions preserve FIFO
// order; capacity bounds how far the producer can run ahead.
type Pipe struct {
	cmds chan protocol.Command
	evts chan protocol.Event

	closeOnce sync.Once
	closed    chan struct{}
}

// NewPipe creates a pipe with the given per-direction capacity.
func NewPipe(capacity int) *Pipe {
	if capacity < 1 {
		capacity = 1
	}
	return &Pipe{
		cmds:   make(chan protocol.Command, capacity),
		evts:   make(chan protocol.Event, capacity),
		closed: make(chan struct{}),
	}
}

// Send implements Transport.
func (p *Pipe) Send(cmd protocol.Command) error {
	select {
	case <-p.closed:
		return ErrClosed
	default:
	}
	select {
	case p.cmds <- cmd:
		return nil
	case <-p.closed:
		return ErrClosed
	}
}

// Events implements Transport.
func (p *Pipe) Events() <-chan protocol.Event { return p.evts }

// Close implements Transport. It also ends the worker's command stream and
// the host's event stream.
func (p *Pipe) Close() error {
	p.closeOnce.Do(func() {
		close(p.closed)
	})
	return nil
}

// Commands implements WorkerSide.
func (p *Pipe) Commands() <-chan protocol.Command { return p.cmds }

// Emit implements WorkerSide.
func (p *Pipe) Emit(ev protocol.Event) error {
	select {
	case <-p.closed:
		return ErrClosed
	default:
	}
	select {
	case p.evts <- ev:
		return nil
	case <-p.closed:
		return ErrClosed
	}
}

// Done implements WorkerSide.
func (p *Pipe) Done() <-chan struct{} { return p.closed }
