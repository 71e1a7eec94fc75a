// Package script implements the host side of remote script execution:
// future-backed evaluation requests, bound global objects, and callback
// registration. All worker interaction goes through the command channel; the
// bridge only correlates results back to their futures.
package script

import (
	"sync"

	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/pkg/jsvalue"
)

// EnqueueFunc posts a command onto the view's command channel.
type EnqueueFunc func(op protocol.Op, payload any)

type pendingCall struct {
	future  *jsvalue.Future
	resolve func(jsvalue.Value)
	abort   func(error)
}

// Bridge manages script execution and object binding for one view.
type Bridge struct {
	enqueue EnqueueFunc

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*pendingCall
	closed  bool
	reason  error
}

// NewBridge creates a bridge posting commands through enqueue.
func NewBridge(enqueue EnqueueFunc) *Bridge {
	return &Bridge{
		enqueue: enqueue,
		pending: make(map[uint64]*pendingCall),
	}
}

// Execute runs script in a frame, discarding any result.
func (b *Bridge) Execute(script, frame string) {
	b.enqueue(protocol.OpExecuteScript, protocol.ExecuteScriptPayload{
		Script: script,
		Frame:  frame,
	})
}

// Evaluate runs script in a frame and returns a future that settles with the
// script's result, or with an error if the worker dies first. The returned
// future settles exactly once.
func (b *Bridge) Evaluate(script, frame string) *jsvalue.Future {
	f, resolve, abort := jsvalue.NewFuture()

	b.mu.Lock()
	if b.closed {
		reason := b.reason
		b.mu.Unlock()
		abort(reason)
		return f
	}
	b.nextID++
	id := b.nextID
	b.pending[id] = &pendingCall{future: f, resolve: resolve, abort: abort}
	b.mu.Unlock()

	b.enqueue(protocol.OpExecuteScript, protocol.ExecuteScriptPayload{
		Script:    script,
		Frame:     frame,
		RequestID: id,
	})
	return f
}

// CallFunction invokes object.function(args...) in a frame, discarding the
// result. An empty object name targets the global scope.
func (b *Bridge) CallFunction(object, function string, args []jsvalue.Value, frame string) {
	b.enqueue(protocol.OpCallFunction, protocol.CallFunctionPayload{
		Object:   object,
		Function: function,
		Args:     args,
		Frame:    frame,
	})
}

// CreateObject creates a named global object in the page, persisting across
// navigations until destroyed.
func (b *Bridge) CreateObject(name string) {
	b.enqueue(protocol.OpCreateObject, protocol.ObjectPayload{Object: name})
}

// DestroyObject removes a previously created object. Unknown names are a
// silent no-op worker-side.
func (b *Bridge) DestroyObject(name string) {
	b.enqueue(protocol.OpDestroyObject, protocol.ObjectPayload{Object: name})
}

// SetProperty sets a property on a bound object.
func (b *Bridge) SetProperty(object, property string, value jsvalue.Value) {
	b.enqueue(protocol.OpSetObjectProperty, protocol.ObjectPayload{
		Object: object,
		Member: property,
		Value:  value,
	})
}

// SetCallback binds a callback member on a bound object. Page script invoking
// it produces a callback event for the listener.
func (b *Bridge) SetCallback(object, callback string) {
	b.enqueue(protocol.OpSetObjectCallback, protocol.ObjectPayload{
		Object: object,
		Member: callback,
	})
}

// Resolve settles the pending call for requestID. Results for unknown or
// already-settled requests are dropped.
func (b *Bridge) Resolve(requestID uint64, value jsvalue.Value) {
	b.mu.Lock()
	call, ok := b.pending[requestID]
	if ok {
		delete(b.pending, requestID)
	}
	b.mu.Unlock()
	if ok {
		call.resolve(value)
	}
}

// AbortAll fails every pending call with err and rejects future Evaluate
// calls with the same error. Used on crash and on destroy.
func (b *Bridge) AbortAll(err error) {
	b.mu.Lock()
	calls := b.pending
	b.pending = make(map[uint64]*pendingCall)
	b.closed = true
	b.reason = err
	b.mu.Unlock()

	for _, call := range calls {
		call.abort(err)
	}
}

// PendingCount reports the number of unsettled evaluation requests.
func (b *Bridge) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
