// Package headless implements the engine port on a pure-Go JavaScript
// runtime. There is no real layout or network: documents are plain HTML
// strings, inline scripts run in a persistent runtime, and paints are
// synthesized. It backs tests, the diagnostic CLI, and embeddings that only
// need scripting and resource policy, not pixels from a real renderer.
package headless

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/offview/offview/internal/logging"
	"github.com/offview/offview/pkg/engine"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
	"github.com/offview/offview/pkg/webinput"
)

// LocalScheme is the URL scheme resolved against the engine's resource root.
const LocalScheme = "local://"

var (
	titleRe  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	scriptRe = regexp.MustCompile(`(?is)<script[^>]*>(.*?)</script>`)
	tagRe    = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Options configures a headless engine.
type Options struct {
	// Width and Height are the initial surface dimensions.
	Width  int
	Height int
	// Root is the filesystem serving local:// URLs and LoadFile paths.
	// Nil disables local resources.
	Root afero.Fs
	// Clipboard backs cut, copy and paste. Nil uses an in-memory one.
	Clipboard engine.Clipboard
}

// Engine is a headless implementation of the engine port. Per the port
// contract all methods run on one goroutine; no internal locking.
type Engine struct {
	log  zerolog.Logger
	rt   *sobek.Runtime
	cb   *engine.Callbacks
	gate engine.ResourceGate
	clip engine.Clipboard
	root afero.Fs

	width, height int
	zoom          int
	transparent   bool
	focused       bool
	paintSeq      uint8

	url      string
	title    string
	doc      string
	loading  bool
	history  []string
	histPos  int
	closed   bool
	selected string

	objects map[string]*sobek.Object
}

// New creates a headless engine with a fresh JavaScript runtime.
func New(ctx context.Context, opts Options) *Engine {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = NewMemoryClipboard()
	}
	e := &Engine{
		log:     logging.FromContext(ctx).With().Str("component", "headless").Logger(),
		rt:      sobek.New(),
		clip:    clip,
		root:    opts.Root,
		width:   opts.Width,
		height:  opts.Height,
		zoom:    100,
		objects: make(map[string]*sobek.Object),
	}
	e.installConsole()
	return e
}

// SetCallbacks implements engine.Engine.
func (e *Engine) SetCallbacks(cb *engine.Callbacks) { e.cb = cb }

// SetResourceGate implements engine.Engine.
func (e *Engine) SetResourceGate(gate engine.ResourceGate) { e.gate = gate }

func (e *Engine) installConsole() {
	console := e.rt.NewObject()
	log := func(call sobek.FunctionCall) sobek.Value {
		parts := make([]string, len(call.Arguments))
		for i, a := range call.Arguments {
			parts[i] = a.String()
		}
		if e.cb != nil && e.cb.OnConsoleMessage != nil {
			e.cb.OnConsoleMessage(strings.Join(parts, " "), 0, e.url)
		}
		return sobek.Undefined()
	}
	for _, name := range []string{"log", "info", "warn", "error", "debug"} {
		_ = console.Set(name, log)
	}
	_ = e.rt.Set("console", console)
}

// LoadURL implements engine.Engine. The request is offered to the resource
// gate; denied navigations go nowhere, synthesized ones render the attached
// response body. Non-local allowed URLs render a placeholder document since
// a headless engine has no network stack.
func (e *Engine) LoadURL(_ context.Context, url, frame, username, password string) error {
	if e.closed {
		return fmt.Errorf("headless: engine closed")
	}
	headers := map[string]string{}
	if username != "" || password != "" {
		headers["Authorization"] = basicAuth(username, password)
	}
	body, ok, err := e.fetch(url, frame, headers)
	if err != nil {
		return err
	}
	if !ok {
		e.log.Debug().Str("url", url).Msg("navigation blocked")
		return nil
	}
	e.commitLoad(url, frame, body, true)
	return nil
}

// LoadHTML implements engine.Engine.
func (e *Engine) LoadHTML(_ context.Context, html, frame string) error {
	if e.closed {
		return fmt.Errorf("headless: engine closed")
	}
	e.commitLoad("about:blank", frame, html, true)
	return nil
}

// LoadFile implements engine.Engine. The path resolves against the resource
// root, same as a local:// URL.
func (e *Engine) LoadFile(ctx context.Context, p, frame string) error {
	return e.LoadURL(ctx, LocalScheme+strings.TrimPrefix(p, "/"), frame, "", "")
}

// fetch runs the request pipeline and returns the document body. ok is false
// when the gate denied the request.
func (e *Engine) fetch(url, frame string, headers map[string]string) (string, bool, error) {
	req := &engine.ResourceRequest{
		URL:     url,
		Method:  "GET",
		Frame:   frame,
		Headers: headers,
	}
	if e.gate != nil {
		res := e.gate.Offer(req)
		switch res.Decision {
		case engine.GateDeny:
			return "", false, nil
		case engine.GateSynthesize:
			if res.Response == nil {
				return "", false, nil
			}
			return string(res.Response.Body), true, nil
		}
	}
	if strings.HasPrefix(url, LocalScheme) {
		if e.root == nil {
			return "", false, fmt.Errorf("headless: no resource root for %s", url)
		}
		rel := path.Clean("/" + strings.TrimPrefix(url, LocalScheme))
		data, err := afero.ReadFile(e.root, rel)
		if err != nil {
			return "", false, fmt.Errorf("headless: read %s: %w", url, err)
		}
		return string(data), true, nil
	}
	// No network stack: render a placeholder carrying the URL.
	return fmt.Sprintf("<html><head><title>%s</title></head><body></body></html>", url), true, nil
}

// commitLoad swaps in a new document, fires load events, runs inline
// scripts, and repaints.
func (e *Engine) commitLoad(url, frame, doc string, pushHistory bool) {
	e.loading = true
	e.fire(func(cb *engine.Callbacks) {
		if cb.OnLoadStarted != nil {
			cb.OnLoadStarted(frame, url)
		}
	})

	e.doc = doc
	e.selected = ""
	if e.url != url {
		e.url = url
		e.fire(func(cb *engine.Callbacks) {
			if cb.OnURLChanged != nil {
				cb.OnURLChanged(url)
			}
		})
	}
	if pushHistory {
		e.history = append(e.history[:e.histPos], url)
		e.histPos = len(e.history)
	}

	title := ""
	if m := titleRe.FindStringSubmatch(doc); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if title != e.title {
		e.title = title
		e.fire(func(cb *engine.Callbacks) {
			if cb.OnTitleChanged != nil {
				cb.OnTitleChanged(title, frame)
			}
		})
	}

	for _, m := range scriptRe.FindAllStringSubmatch(doc, -1) {
		if _, err := e.run(m[1]); err != nil {
			e.log.Debug().Err(err).Msg("inline script failed")
		}
	}

	e.loading = false
	e.fire(func(cb *engine.Callbacks) {
		if cb.OnLoadFinished != nil {
			cb.OnLoadFinished(url)
		}
	})
	e.repaint(render.Rect{Width: e.width, Height: e.height})
}

// GoToHistoryOffset implements engine.Engine. Out-of-range offsets are
// silently ignored.
func (e *Engine) GoToHistoryOffset(offset int) {
	target := e.histPos - 1 + offset
	if target < 0 || target >= len(e.history) {
		return
	}
	e.histPos = target + 1
	url := e.history[target]
	body, ok, err := e.fetch(url, "", map[string]string{})
	if err != nil || !ok {
		return
	}
	e.commitLoad(url, "", body, false)
}

// Stop implements engine.Engine. Loads commit synchronously here, so there
// is never an in-flight navigation to abort.
func (e *Engine) Stop() { e.loading = false }

// Reload implements engine.Engine.
func (e *Engine) Reload(_ context.Context) error {
	if e.url == "" || e.url == "about:blank" {
		e.commitLoad(e.url, "", e.doc, false)
		return nil
	}
	body, ok, err := e.fetch(e.url, "", map[string]string{})
	if err != nil {
		return err
	}
	if ok {
		e.commitLoad(e.url, "", body, false)
	}
	return nil
}

// Evaluate implements engine.Engine.
func (e *Engine) Evaluate(_ context.Context, script, _ string) (jsvalue.Value, error) {
	v, err := e.run(script)
	if err != nil {
		return jsvalue.Undefined(), err
	}
	return fromSobek(v), nil
}

func (e *Engine) run(script string) (sobek.Value, error) {
	v, err := e.rt.RunString(script)
	if err != nil {
		var exc *sobek.Exception
		if ok := asException(err, &exc); ok {
			e.fire(func(cb *engine.Callbacks) {
				if cb.OnConsoleMessage != nil {
					cb.OnConsoleMessage(exc.Error(), 0, e.url)
				}
			})
		}
		return nil, err
	}
	return v, nil
}

func asException(err error, target **sobek.Exception) bool {
	exc, ok := err.(*sobek.Exception)
	if ok {
		*target = exc
	}
	return ok
}

// CallFunction implements engine.Engine.
func (e *Engine) CallFunction(_ context.Context, object, function string, args []jsvalue.Value, _ string) error {
	var recv sobek.Value = e.rt.GlobalObject()
	if object != "" {
		recv = e.rt.GlobalObject().Get(object)
		if recv == nil || sobek.IsUndefined(recv) || sobek.IsNull(recv) {
			return fmt.Errorf("headless: no object %q", object)
		}
	}
	obj := recv.ToObject(e.rt)
	fn, ok := sobek.AssertFunction(obj.Get(function))
	if !ok {
		return fmt.Errorf("headless: %q is not a function on %q", function, object)
	}
	sargs := make([]sobek.Value, len(args))
	for i := range args {
		sargs[i] = toSobek(e.rt, args[i])
	}
	_, err := fn(obj, sargs...)
	return err
}

// CreateObject implements engine.Engine. The object persists across
// navigations until destroyed; creating an existing name is a no-op.
func (e *Engine) CreateObject(name string) {
	if name == "" {
		return
	}
	if _, exists := e.objects[name]; exists {
		return
	}
	obj := e.rt.NewObject()
	e.objects[name] = obj
	_ = e.rt.Set(name, obj)
}

// DestroyObject implements engine.Engine. Unknown names are ignored.
func (e *Engine) DestroyObject(name string) {
	if _, exists := e.objects[name]; !exists {
		return
	}
	delete(e.objects, name)
	_ = e.rt.GlobalObject().Delete(name)
}

// SetObjectProperty implements engine.Engine. Unknown objects are ignored.
func (e *Engine) SetObjectProperty(object, property string, value jsvalue.Value) {
	obj, exists := e.objects[object]
	if !exists {
		return
	}
	_ = obj.Set(property, toSobek(e.rt, value))
}

// SetObjectCallback implements engine.Engine. Unknown objects are ignored.
// Script invoking the callback reaches the host with losslessly converted
// arguments.
func (e *Engine) SetObjectCallback(object, callback string) {
	obj, exists := e.objects[object]
	if !exists {
		return
	}
	_ = obj.Set(callback, func(call sobek.FunctionCall) sobek.Value {
		args := make([]jsvalue.Value, len(call.Arguments))
		for i, a := range call.Arguments {
			args[i] = fromSobek(a)
		}
		e.fire(func(cb *engine.Callbacks) {
			if cb.OnCallback != nil {
				cb.OnCallback(object, callback, args)
			}
		})
		return sobek.Undefined()
	})
}

// InjectMouseMove implements engine.Engine.
func (e *Engine) InjectMouseMove(x, y int) {
	e.repaint(render.Rect{X: clampInt(x, 0, e.width), Y: clampInt(y, 0, e.height), Width: 1, Height: 1})
}

// InjectMouseDown implements engine.Engine.
func (e *Engine) InjectMouseDown(webinput.MouseButton) {}

// InjectMouseUp implements engine.Engine.
func (e *Engine) InjectMouseUp(webinput.MouseButton) {}

// InjectMouseWheel implements engine.Engine.
func (e *Engine) InjectMouseWheel(int) {
	e.repaint(render.Rect{Width: e.width, Height: e.height})
}

// InjectKeyboardEvent implements engine.Engine.
func (e *Engine) InjectKeyboardEvent(webinput.KeyboardEvent) {}

// Focus implements engine.Engine.
func (e *Engine) Focus() { e.focused = true }

// Unfocus implements engine.Engine.
func (e *Engine) Unfocus() { e.focused = false }

// SelectAll implements engine.Engine. Selection is the document text with
// markup stripped.
func (e *Engine) SelectAll() {
	e.selected = strings.TrimSpace(tagRe.ReplaceAllString(e.doc, ""))
}

// Copy implements engine.Engine.
func (e *Engine) Copy(ctx context.Context) error {
	if e.selected == "" {
		return nil
	}
	return e.clip.WriteText(ctx, e.selected)
}

// Cut implements engine.Engine. Headless documents are not editable, so cut
// behaves as copy plus dropping the selection.
func (e *Engine) Cut(ctx context.Context) error {
	if err := e.Copy(ctx); err != nil {
		return err
	}
	e.selected = ""
	return nil
}

// Paste implements engine.Engine. The pasted text lands in a global the
// page can observe, standing in for an editable DOM.
func (e *Engine) Paste(ctx context.Context) error {
	text, err := e.clip.ReadText(ctx)
	if err != nil {
		return err
	}
	return e.rt.Set("__pasted", text)
}

// SetZoom implements engine.Engine.
func (e *Engine) SetZoom(percent int) {
	if percent == e.zoom {
		return
	}
	e.zoom = percent
	e.repaint(render.Rect{Width: e.width, Height: e.height})
}

// Zoom reports the current zoom percent.
func (e *Engine) Zoom() int { return e.zoom }

// SetTransparent implements engine.Engine.
func (e *Engine) SetTransparent(transparent bool) {
	if transparent == e.transparent {
		return
	}
	e.transparent = transparent
	e.repaint(render.Rect{Width: e.width, Height: e.height})
}

// Resize implements engine.Engine. The repaint at the new size happens
// before returning.
func (e *Engine) Resize(_ context.Context, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("headless: invalid dimensions %dx%d", width, height)
	}
	e.width = width
	e.height = height
	e.repaint(render.Rect{Width: width, Height: height})
	return nil
}

// repaint synthesizes a full paint: a fresh buffer stamped with a sequence
// byte so successive paints are distinguishable, plus the dirty rectangle.
func (e *Engine) repaint(dirty render.Rect) {
	e.paintSeq++
	buf := render.NewBuffer(e.width, e.height, 4)
	alpha := byte(0xFF)
	if e.transparent {
		alpha = 0
	}
	for i := 0; i+3 < len(buf.Pixels); i += buf.BytesPerPixel {
		buf.Pixels[i] = e.paintSeq
		buf.Pixels[i+3] = alpha
	}
	e.fire(func(cb *engine.Callbacks) {
		if cb.OnPaint != nil {
			cb.OnPaint(buf, dirty)
		}
	})
}

// Title implements engine.Engine.
func (e *Engine) Title() string { return e.title }

// URL implements engine.Engine.
func (e *Engine) URL() string { return e.url }

// IsLoading implements engine.Engine.
func (e *Engine) IsLoading() bool { return e.loading }

// Crash simulates an engine crash for tests and fault drills.
func (e *Engine) Crash(reason string) {
	e.fire(func(cb *engine.Callbacks) {
		if cb.OnCrash != nil {
			cb.OnCrash(reason)
		}
	})
}

// Close implements engine.Engine.
func (e *Engine) Close() error {
	e.closed = true
	e.objects = make(map[string]*sobek.Object)
	return nil
}

func (e *Engine) fire(f func(cb *engine.Callbacks)) {
	if e.cb != nil {
		f(e.cb)
	}
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
