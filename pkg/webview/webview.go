// Package webview is the embedding surface of offview: an off-screen web
// view driven entirely through an asynchronous command protocol. A View owns
// a worker running the rendering engine; every mutating call becomes a
// command in a per-view FIFO queue, and everything the page does comes back
// as events routed to futures, the render surface, or the listener.
package webview

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/offview/offview/internal/channel"
	"github.com/offview/offview/internal/engine/headless"
	"github.com/offview/offview/internal/input"
	"github.com/offview/offview/internal/logging"
	"github.com/offview/offview/internal/policy"
	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/internal/script"
	"github.com/offview/offview/internal/surface"
	"github.com/offview/offview/internal/transport"
	"github.com/offview/offview/internal/worker"
	"github.com/offview/offview/pkg/engine"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
	"github.com/offview/offview/pkg/webinput"
)

// Zoom bounds in percent, matching what real renderers accept.
const (
	MinZoom     = 10
	MaxZoom     = 500
	DefaultZoom = 100
)

// DefaultResizeTimeout bounds how long a waiting Resize blocks for the
// repaint acknowledgement.
const DefaultResizeTimeout = 300 * time.Millisecond

// FilteringMode selects how URL filters are interpreted.
type FilteringMode = policy.FilteringMode

// Re-exported filtering modes.
const (
	FilterNone      = policy.FilterNone
	FilterBlacklist = policy.FilterBlacklist
	FilterWhitelist = policy.FilterWhitelist
)

// Options configures a new view.
type Options struct {
	// Width and Height are the initial surface dimensions. Zero values
	// default to 800x600.
	Width  int
	Height int

	// Engine overrides the worker's rendering engine. Nil selects the
	// built-in headless engine.
	Engine engine.Engine

	// Root serves local:// URLs and LoadFile paths in the headless
	// engine. Ignored when Engine is set.
	Root afero.Fs

	// TransportCapacity bounds the in-process pipe. Zero defaults to 64.
	TransportCapacity int

	// ResizeTimeout is the default wait for Resize acknowledgements.
	// Zero defaults to DefaultResizeTimeout.
	ResizeTimeout time.Duration
}

// View is an off-screen web view. All methods are safe for concurrent use.
// Mutating methods are asynchronous: they enqueue a command and return, and
// their effects surface later through queries, futures, Render, or the
// listener. After Destroy every method is an inert no-op.
type View struct {
	id  protocol.ViewID
	log zerolog.Logger

	ch     *channel.Channel
	bridge *script.Bridge
	surf   *surface.Manager
	inj    *input.Injector
	pol    *policy.Engine
	pipe   *transport.Pipe
	wrk    *worker.Worker

	resizeTimeout time.Duration

	mu          sync.Mutex
	listener    Listener
	zoom        int
	transparent bool
	loading     bool
	title       string
	url         string
	destroyed   bool
	crashed     bool
	crashReason string

	done chan struct{}
}

// New creates a view and starts its worker. The context carries the logger
// and bounds the worker's lifetime.
func New(ctx context.Context, opts Options) *View {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.TransportCapacity <= 0 {
		opts.TransportCapacity = 64
	}
	if opts.ResizeTimeout <= 0 {
		opts.ResizeTimeout = DefaultResizeTimeout
	}

	id := protocol.NewViewID()
	log := logging.FromContext(ctx).With().
		Str("component", "webview").
		Str("view_id", string(id)).
		Logger()

	eng := opts.Engine
	if eng == nil {
		eng = headless.New(ctx, headless.Options{
			Width:  opts.Width,
			Height: opts.Height,
			Root:   opts.Root,
		})
	}

	pipe := transport.NewPipe(opts.TransportCapacity)
	v := &View{
		id:            id,
		log:           log,
		pipe:          pipe,
		pol:           policy.New(),
		resizeTimeout: opts.ResizeTimeout,
		zoom:          DefaultZoom,
		done:          make(chan struct{}),
	}

	v.ch = channel.New(ctx, id, pipe)
	v.bridge = script.NewBridge(v.enqueue)
	v.surf = surface.NewManager(v.enqueue)
	v.inj = input.NewInjector(v.enqueue)
	v.wrk = worker.New(ctx, id, pipe, eng)

	v.ch.SetHandlers(channel.Handlers{
		OnScriptResult: v.bridge.Resolve,
		OnPaint:        v.surf.HandlePaint,
		OnResizeAck:    v.surf.HandleResizeAck,
		OnListener:     v.handleListenerEvent,
		OnCrashed:      v.handleCrash,
		OnTeardown:     v.handleTeardown,
	})
	v.ch.Start()

	go func() {
		if err := v.wrk.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("worker stopped")
		}
	}()

	return v
}

// enqueue is the single entry point for commands; it drops everything after
// Destroy.
func (v *View) enqueue(op protocol.Op, payload any) {
	v.mu.Lock()
	dead := v.destroyed
	v.mu.Unlock()
	if dead {
		return
	}
	v.ch.Enqueue(op, payload)
}

// handleListenerEvent updates cached page state, then forwards to the
// registered listener.
func (v *View) handleListenerEvent(ev protocol.Event) {
	v.mu.Lock()
	switch ev.Kind {
	case protocol.EvLoadStarted:
		v.loading = true
	case protocol.EvLoadFinished:
		v.loading = false
	case protocol.EvTitleChanged:
		v.title = ev.Payload.(protocol.TitleChangedPayload).Title
	case protocol.EvURLChanged:
		v.url = ev.Payload.(protocol.URLChangedPayload).URL
	}
	l := v.listener
	v.mu.Unlock()

	if l == nil {
		return
	}
	switch ev.Kind {
	case protocol.EvLoadStarted:
		p := ev.Payload.(protocol.LoadStartedPayload)
		l.OnLoadStarted(p.Frame, p.URL)
	case protocol.EvLoadFinished:
		l.OnLoadFinished(ev.Payload.(protocol.LoadFinishedPayload).URL)
	case protocol.EvTitleChanged:
		p := ev.Payload.(protocol.TitleChangedPayload)
		l.OnTitleChanged(p.Title, p.Frame)
	case protocol.EvURLChanged:
		l.OnURLChanged(ev.Payload.(protocol.URLChangedPayload).URL)
	case protocol.EvConsoleMessage:
		p := ev.Payload.(protocol.ConsoleMessagePayload)
		l.OnConsoleMessage(p.Message, p.Line, p.Source)
	case protocol.EvCallback:
		p := ev.Payload.(protocol.CallbackPayload)
		l.OnCallback(p.Object, p.Callback, p.Args)
	}
}

// handleCrash runs the crash fanout: fail pending futures, invalidate the
// surface, then notify the listener.
func (v *View) handleCrash(reason string) {
	v.mu.Lock()
	v.crashed = true
	v.crashReason = reason
	v.loading = false
	l := v.listener
	v.mu.Unlock()

	v.bridge.AbortAll(ErrViewCrashed)
	v.surf.HandleCrash()

	if l != nil {
		l.OnCrashed(reason)
	}
}

func (v *View) handleTeardown() {
	v.log.Debug().Msg("teardown complete")
	close(v.done)
	go func() {
		v.ch.Close()
		_ = v.pipe.Close()
	}()
}

// ID returns the view's opaque identifier.
func (v *View) ID() string { return string(v.id) }

// Navigation.

// LoadURL begins navigating the named frame (empty for the main frame),
// optionally with HTTP basic auth credentials.
func (v *View) LoadURL(url, frame, username, password string) {
	v.enqueue(protocol.OpNavigate, protocol.NavigatePayload{
		URL:      url,
		Frame:    frame,
		Username: username,
		Password: password,
	})
}

// LoadHTML loads an HTML string into a frame.
func (v *View) LoadHTML(html, frame string) {
	v.enqueue(protocol.OpLoadHTML, protocol.LoadHTMLPayload{HTML: html, Frame: frame})
}

// LoadFile loads a file resolved against the local resource root.
func (v *View) LoadFile(path, frame string) {
	v.enqueue(protocol.OpLoadFile, protocol.LoadFilePayload{Path: path, Frame: frame})
}

// GoToHistoryOffset navigates the session history relative to the current
// entry: negative is back, positive is forward.
func (v *View) GoToHistoryOffset(offset int) {
	v.enqueue(protocol.OpHistoryOffset, protocol.HistoryOffsetPayload{Offset: offset})
}

// Stop stops the current navigation.
func (v *View) Stop() { v.enqueue(protocol.OpStop, nil) }

// Reload reloads the current page.
func (v *View) Reload() { v.enqueue(protocol.OpReload, nil) }

// Scripting.

// ExecuteJavascript runs script in a frame, discarding the result.
func (v *View) ExecuteJavascript(script, frame string) {
	v.bridge.Execute(script, frame)
}

// ExecuteJavascriptWithResult runs script in a frame and returns a future
// for the result. The future fails with ErrViewCrashed or ErrViewDestroyed
// if the view dies before the script completes.
func (v *View) ExecuteJavascriptWithResult(script, frame string) *jsvalue.Future {
	return v.bridge.Evaluate(script, frame)
}

// CallJavascriptFunction invokes object.function(args...) in a frame. An
// empty object name targets the global scope.
func (v *View) CallJavascriptFunction(object, function string, args []jsvalue.Value, frame string) {
	v.bridge.CallFunction(object, function, args, frame)
}

// CreateObject creates a named global script object that persists across
// navigations until destroyed.
func (v *View) CreateObject(name string) { v.bridge.CreateObject(name) }

// DestroyObject removes an object created by CreateObject.
func (v *View) DestroyObject(name string) { v.bridge.DestroyObject(name) }

// SetObjectProperty sets a property on a bound object. Unknown objects are
// silently ignored.
func (v *View) SetObjectProperty(object, property string, value jsvalue.Value) {
	v.bridge.SetProperty(object, property, value)
}

// SetObjectCallback binds a callback on a bound object; page script invoking
// it reaches the listener's OnCallback.
func (v *View) SetObjectCallback(object, callback string) {
	v.bridge.SetCallback(object, callback)
}

// Page state queries, answered from host-cached state.

// IsLoadingPage reports whether a page load is in progress.
func (v *View) IsLoadingPage() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Title returns the last observed page title.
func (v *View) Title() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.title
}

// URL returns the last observed page URL.
func (v *View) URL() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.url
}

// IsCrashed reports whether the worker has died.
func (v *View) IsCrashed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.crashed
}

// Rendering.

// IsDirty reports whether pixels changed since the last Render.
func (v *View) IsDirty() bool { return v.surf.IsDirty() }

// DirtyBounds returns the bounding rectangle of unrendered damage.
func (v *View) DirtyBounds() render.Rect { return v.surf.DirtyBounds() }

// Render returns the current pixel snapshot and clears the dirty region.
// It returns nil once the view has crashed. The snapshot is valid until the
// next paint.
func (v *View) Render() *render.Buffer { return v.surf.Render() }

// PauseRendering suppresses buffer updates until ResumeRendering. The page
// keeps running.
func (v *View) PauseRendering() { v.surf.Pause() }

// ResumeRendering re-enables buffer updates.
func (v *View) ResumeRendering() { v.surf.Resume() }

// Resize requests new surface dimensions. With wait set it blocks until the
// repaint at the new size is acknowledged, up to timeout (zero means the
// configured default). It returns false when the dimensions are invalid, a
// resize is already in flight, the view has crashed, or the wait timed out;
// after a timeout the resize completes in the background.
func (v *View) Resize(width, height int, wait bool, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = v.resizeTimeout
	}
	return v.surf.Resize(width, height, wait, timeout)
}

// IsResizing reports whether a resize is in flight.
func (v *View) IsResizing() bool { return v.surf.IsResizing() }

// SetTransparent toggles transparent-background rendering.
func (v *View) SetTransparent(transparent bool) {
	v.mu.Lock()
	v.transparent = transparent
	v.mu.Unlock()
	v.enqueue(protocol.OpSetTransparent, protocol.TransparentPayload{Transparent: transparent})
}

// IsTransparent reports the last requested transparency.
func (v *View) IsTransparent() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.transparent
}

// Input.

// InjectMouseMove injects a pointer move to view coordinates.
func (v *View) InjectMouseMove(x, y int) { v.inj.MouseMove(x, y) }

// InjectMouseDown injects a button press.
func (v *View) InjectMouseDown(button webinput.MouseButton) { v.inj.MouseDown(button) }

// InjectMouseUp injects a button release.
func (v *View) InjectMouseUp(button webinput.MouseButton) { v.inj.MouseUp(button) }

// InjectMouseWheel injects a scroll.
func (v *View) InjectMouseWheel(delta int) { v.inj.MouseWheel(delta) }

// InjectKeyboardEvent injects a keyboard event.
func (v *View) InjectKeyboardEvent(event webinput.KeyboardEvent) { v.inj.KeyboardEvent(event) }

// Focus gives the view input focus.
func (v *View) Focus() { v.inj.Focus() }

// Unfocus removes input focus.
func (v *View) Unfocus() { v.inj.Unfocus() }

// Editing.

// Cut cuts the selection to the clipboard.
func (v *View) Cut() { v.enqueue(protocol.OpCut, nil) }

// Copy copies the selection to the clipboard.
func (v *View) Copy() { v.enqueue(protocol.OpCopy, nil) }

// Paste pastes clipboard text into the focused element.
func (v *View) Paste() { v.enqueue(protocol.OpPaste, nil) }

// SelectAll selects the whole document.
func (v *View) SelectAll() { v.enqueue(protocol.OpSelectAll, nil) }

// Zoom.

// SetZoom applies a zoom percent, clamped to [MinZoom, MaxZoom].
func (v *View) SetZoom(percent int) {
	if percent < MinZoom {
		percent = MinZoom
	}
	if percent > MaxZoom {
		percent = MaxZoom
	}
	v.mu.Lock()
	v.zoom = percent
	v.mu.Unlock()
	v.enqueue(protocol.OpSetZoom, protocol.ZoomPayload{Percent: percent})
}

// ResetZoom restores the default zoom.
func (v *View) ResetZoom() { v.SetZoom(DefaultZoom) }

// Zoom returns the last requested zoom percent.
func (v *View) Zoom() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom
}

// Resource policy. Mutations apply to the host's authoritative copy and are
// pushed to the worker as one atomic snapshot per call, so worker-side
// evaluation never observes a half-applied configuration.

// SetURLFilteringMode switches between none, blacklist and whitelist
// filtering.
func (v *View) SetURLFilteringMode(mode FilteringMode) {
	v.pol.SetFilteringMode(mode)
	v.pushPolicy()
}

// URLFilteringMode returns the current filtering mode.
func (v *View) URLFilteringMode() FilteringMode { return v.pol.FilteringMode() }

// AddURLFilter appends a URL filter pattern ('*' and '?' wildcards).
func (v *View) AddURLFilter(pattern string) {
	v.pol.AddFilter(pattern)
	v.pushPolicy()
}

// ClearAllURLFilters removes every URL filter.
func (v *View) ClearAllURLFilters() {
	v.pol.ClearFilters()
	v.pushPolicy()
}

// SetHeaderDefinition creates or replaces a named set of header values.
// Redefinition replaces the previous mapping wholesale.
func (v *View) SetHeaderDefinition(name string, definition map[string]string) {
	v.pol.SetHeaderDefinition(name, definition)
	v.pushPolicy()
}

// AddHeaderRewriteRule attaches a header definition to requests whose URL
// matches pattern. The first matching rule, in insertion order, wins.
func (v *View) AddHeaderRewriteRule(pattern, definition string) {
	v.pol.AddRewriteRule(pattern, definition)
	v.pushPolicy()
}

// RemoveHeaderRewriteRule removes rules added with exactly this pattern.
func (v *View) RemoveHeaderRewriteRule(pattern string) {
	v.pol.RemoveRewriteRule(pattern)
	v.pushPolicy()
}

// RemoveHeaderRewriteRulesByDefinitionName removes every rule referencing
// the named definition. The empty name removes all rules.
func (v *View) RemoveHeaderRewriteRulesByDefinitionName(name string) {
	v.pol.RemoveRewriteRulesByDefinitionName(name)
	v.pushPolicy()
}

func (v *View) pushPolicy() {
	v.enqueue(protocol.OpSetPolicy, protocol.PolicyPayload{Snapshot: v.pol.Snapshot()})
}

// Hooks.

// SetListener registers the event listener. Last write wins; nil clears.
func (v *View) SetListener(l Listener) {
	v.mu.Lock()
	v.listener = l
	v.mu.Unlock()
}

// SetResourceInterceptor registers the hook offered each outgoing resource
// request before URL filtering. Last write wins; nil clears. Unlike
// commands, the interceptor takes effect immediately, not in queue order.
func (v *View) SetResourceInterceptor(ic engine.ResourceInterceptor) {
	v.wrk.SetInterceptor(ic)
}

// Lifecycle.

// Destroy tears the view down asynchronously: teardown is queued behind any
// commands already enqueued, the handle becomes inert immediately, and
// pending script futures fail with ErrViewDestroyed. Destroy is idempotent.
func (v *View) Destroy() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	v.destroyed = true
	v.mu.Unlock()

	v.ch.Enqueue(protocol.OpDestroyView, nil)
	v.bridge.AbortAll(ErrViewDestroyed)
}

// Done is closed once worker teardown has completed.
func (v *View) Done() <-chan struct{} { return v.done }
