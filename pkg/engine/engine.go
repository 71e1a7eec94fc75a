// Package engine defines the port interfaces for the external collaborators
// of a view: the rendering engine that performs layout, script execution and
// painting, and the OS clipboard service. The protocol layer drives these
// interfaces; it never reaches into an engine's internals.
package engine

import (
	"context"

	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
	"github.com/offview/offview/pkg/webinput"
)

//go:generate mockgen -destination=mocks/mock_engine.go -package=mock_engine github.com/offview/offview/pkg/engine Engine,Clipboard

// Callbacks defines the notifications an engine emits while executing
// commands. The worker translates these into protocol events; implementations
// must invoke them from the goroutine applying commands.
type Callbacks struct {
	// OnLoadStarted is called when navigation begins in a frame.
	OnLoadStarted func(frame, url string)
	// OnLoadFinished is called when the page has fully loaded.
	OnLoadFinished func(url string)
	// OnTitleChanged is called when the page title changes.
	OnTitleChanged func(title, frame string)
	// OnURLChanged is called when the page URL changes.
	OnURLChanged func(url string)
	// OnConsoleMessage is called for each console message the page logs.
	OnConsoleMessage func(message string, line int, source string)
	// OnCallback is called when page script invokes a bound callback.
	OnCallback func(object, callback string, args []jsvalue.Value)
	// OnPaint is called after the engine repaints; dirty is the bounding
	// rectangle of changed pixels and buffer the current pixel snapshot.
	OnPaint func(buffer *render.Buffer, dirty render.Rect)
	// OnCrash is called when the engine dies. It is terminal.
	OnCrash func(reason string)
}

// Engine abstracts the rendering engine behind the command protocol. All
// methods are invoked from a single worker goroutine, in per-view FIFO
// command order; implementations need not be safe for concurrent use.
type Engine interface {
	// SetCallbacks registers the event sink. Pass nil to clear.
	SetCallbacks(cb *Callbacks)

	// SetResourceGate installs the hook consulted before each outgoing
	// resource request. Pass nil to clear.
	SetResourceGate(gate ResourceGate)

	// LoadURL navigates a frame, optionally with HTTP basic auth.
	LoadURL(ctx context.Context, url, frame, username, password string) error

	// LoadHTML loads an HTML string into a frame.
	LoadHTML(ctx context.Context, html, frame string) error

	// LoadFile loads a file resolved against the local resource root.
	LoadFile(ctx context.Context, path, frame string) error

	// GoToHistoryOffset navigates the session history by a relative offset.
	GoToHistoryOffset(offset int)

	// Stop stops the current navigation.
	Stop()

	// Reload reloads the current page.
	Reload(ctx context.Context) error

	// Evaluate executes script in a frame and returns the resulting value.
	Evaluate(ctx context.Context, script, frame string) (jsvalue.Value, error)

	// CallFunction invokes object.function(args...) in a frame, discarding
	// the result. An empty object name targets the global scope.
	CallFunction(ctx context.Context, object, function string, args []jsvalue.Value, frame string) error

	// CreateObject creates a named global script object that persists
	// across navigations until destroyed.
	CreateObject(name string)

	// DestroyObject removes an object created by CreateObject. Unknown
	// names are silently ignored.
	DestroyObject(name string)

	// SetObjectProperty sets a property on a bound object. Unknown object
	// names are silently ignored.
	SetObjectProperty(object, property string, value jsvalue.Value)

	// SetObjectCallback binds a callback function on a bound object.
	// Script invoking it triggers Callbacks.OnCallback.
	SetObjectCallback(object, callback string)

	// Input injection.
	InjectMouseMove(x, y int)
	InjectMouseDown(button webinput.MouseButton)
	InjectMouseUp(button webinput.MouseButton)
	InjectMouseWheel(delta int)
	InjectKeyboardEvent(event webinput.KeyboardEvent)
	Focus()
	Unfocus()

	// Editing actions against the system clipboard.
	Cut(ctx context.Context) error
	Copy(ctx context.Context) error
	Paste(ctx context.Context) error
	SelectAll()

	// SetZoom applies a zoom percent (already clamped by the host).
	SetZoom(percent int)

	// SetTransparent toggles transparent-background rendering.
	SetTransparent(transparent bool)

	// Resize repaints at new dimensions. It returns once the repaint at
	// the new size is complete.
	Resize(ctx context.Context, width, height int) error

	// State queries.
	Title() string
	URL() string
	IsLoading() bool

	// Close releases engine resources.
	Close() error
}

// Clipboard defines the port interface for clipboard operations.
// This abstracts platform-specific clipboard implementations.
type Clipboard interface {
	// WriteText copies text to the clipboard.
	WriteText(ctx context.Context, text string) error

	// ReadText reads text from the clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	ReadText(ctx context.Context) (string, error)

	// Clear clears the clipboard contents.
	Clear(ctx context.Context) error

	// HasText returns true if the clipboard contains text data.
	HasText(ctx context.Context) (bool, error)
}
