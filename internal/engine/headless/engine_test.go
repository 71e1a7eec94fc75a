package headless

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offview/offview/pkg/engine"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e := New(context.Background(), opts)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

func TestEngine_EvaluateArithmetic(t *testing.T) {
	e := newTestEngine(t, Options{})

	v, err := e.Evaluate(context.Background(), "1 + 2", "")
	require.NoError(t, err)
	assert.Equal(t, jsvalue.KindNumber, v.Kind())
	assert.Equal(t, float64(3), v.Number())
}

func TestEngine_EvaluateRoundTripsKinds(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		script string
		want   jsvalue.Value
	}{
		{"undefined", jsvalue.Undefined()},
		{"null", jsvalue.Null()},
		{"true", jsvalue.Bool(true)},
		{"1.5", jsvalue.Number(1.5)},
		{"'hi'", jsvalue.String("hi")},
		{"[1, 'two']", jsvalue.Array(jsvalue.Number(1), jsvalue.String("two"))},
		{"({a: 1})", jsvalue.Object(map[string]jsvalue.Value{"a": jsvalue.Number(1)})},
	}
	for _, tt := range tests {
		v, err := e.Evaluate(context.Background(), tt.script, "")
		require.NoError(t, err, tt.script)
		assert.Equal(t, tt.want, v, tt.script)
	}
}

func TestEngine_EvaluateErrorReturnsError(t *testing.T) {
	e := newTestEngine(t, Options{})

	_, err := e.Evaluate(context.Background(), "throw new Error('boom')", "")
	assert.Error(t, err)
}

func TestEngine_LoadHTMLFiresLoadEventsAndTitle(t *testing.T) {
	e := newTestEngine(t, Options{})
	var started, finished, titles []string
	e.SetCallbacks(&engine.Callbacks{
		OnLoadStarted:  func(_, url string) { started = append(started, url) },
		OnLoadFinished: func(url string) { finished = append(finished, url) },
		OnTitleChanged: func(title, _ string) { titles = append(titles, title) },
	})

	err := e.LoadHTML(context.Background(), "<html><head><title>Hello</title></head></html>", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"about:blank"}, started)
	assert.Equal(t, []string{"about:blank"}, finished)
	assert.Equal(t, []string{"Hello"}, titles)
	assert.Equal(t, "Hello", e.Title())
	assert.False(t, e.IsLoading())
}

func TestEngine_InlineScriptsRunOnLoad(t *testing.T) {
	e := newTestEngine(t, Options{})

	err := e.LoadHTML(context.Background(), "<html><script>var x = 40 + 2;</script></html>", "")
	require.NoError(t, err)

	v, err := e.Evaluate(context.Background(), "x", "")
	require.NoError(t, err)
	assert.Equal(t, float64(42), v.Number())
}

func TestEngine_ConsoleMessagesReachCallback(t *testing.T) {
	e := newTestEngine(t, Options{})
	var msgs []string
	e.SetCallbacks(&engine.Callbacks{
		OnConsoleMessage: func(msg string, _ int, _ string) { msgs = append(msgs, msg) },
	})

	_, err := e.Evaluate(context.Background(), "console.log('a', 1, true)", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a 1 true"}, msgs)
}

func TestEngine_BoundObjectCallbackDeliversArgs(t *testing.T) {
	e := newTestEngine(t, Options{})
	var gotObject, gotCallback string
	var gotArgs []jsvalue.Value
	e.SetCallbacks(&engine.Callbacks{
		OnCallback: func(object, callback string, args []jsvalue.Value) {
			gotObject, gotCallback, gotArgs = object, callback, args
		},
	})

	e.CreateObject("app")
	e.SetObjectCallback("app", "notify")

	_, err := e.Evaluate(context.Background(), "app.notify('ready', {count: 2}, [null])", "")
	require.NoError(t, err)

	assert.Equal(t, "app", gotObject)
	assert.Equal(t, "notify", gotCallback)
	require.Len(t, gotArgs, 3)
	assert.Equal(t, "ready", gotArgs[0].Str())
	assert.Equal(t, float64(2), gotArgs[1].Prop("count").Number())
	require.Len(t, gotArgs[2].Elems(), 1)
	assert.True(t, gotArgs[2].Elems()[0].IsNull())
}

func TestEngine_ObjectPropertyVisibleToScript(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.CreateObject("app")
	e.SetObjectProperty("app", "version", jsvalue.String("2.1"))

	v, err := e.Evaluate(context.Background(), "app.version", "")
	require.NoError(t, err)
	assert.Equal(t, "2.1", v.Str())
}

func TestEngine_SetPropertyOnUnknownObjectIsNoOp(t *testing.T) {
	e := newTestEngine(t, Options{})

	e.SetObjectProperty("ghost", "p", jsvalue.Number(1))
	e.SetObjectCallback("ghost", "cb")
	e.DestroyObject("ghost")

	v, err := e.Evaluate(context.Background(), "typeof ghost", "")
	require.NoError(t, err)
	assert.Equal(t, "undefined", v.Str())
}

func TestEngine_ObjectsPersistAcrossNavigations(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.CreateObject("app")
	e.SetObjectProperty("app", "keep", jsvalue.Bool(true))

	require.NoError(t, e.LoadHTML(context.Background(), "<html></html>", ""))

	v, err := e.Evaluate(context.Background(), "app.keep", "")
	require.NoError(t, err)
	assert.True(t, v.Bool())
}

func TestEngine_DestroyObjectRemovesGlobal(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.CreateObject("app")
	e.DestroyObject("app")

	v, err := e.Evaluate(context.Background(), "typeof app", "")
	require.NoError(t, err)
	assert.Equal(t, "undefined", v.Str())
}

func TestEngine_LocalSchemeServesFromRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/index.html",
		[]byte("<html><head><title>Local</title></head></html>"), 0o644))
	e := newTestEngine(t, Options{Root: fs})

	require.NoError(t, e.LoadURL(context.Background(), "local://index.html", "", "", ""))
	assert.Equal(t, "Local", e.Title())
	assert.Equal(t, "local://index.html", e.URL())
}

func TestEngine_LoadFileResolvesAgainstRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/page.html",
		[]byte("<html><head><title>Page</title></head></html>"), 0o644))
	e := newTestEngine(t, Options{Root: fs})

	require.NoError(t, e.LoadFile(context.Background(), "docs/page.html", ""))
	assert.Equal(t, "Page", e.Title())
}

func TestEngine_GateDenyBlocksNavigation(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.SetResourceGate(engine.GateFunc(func(*engine.ResourceRequest) engine.GateResult {
		return engine.GateResult{Decision: engine.GateDeny}
	}))
	var started []string
	e.SetCallbacks(&engine.Callbacks{
		OnLoadStarted: func(_, url string) { started = append(started, url) },
	})

	require.NoError(t, e.LoadURL(context.Background(), "https://blocked.example/", "", "", ""))
	assert.Empty(t, started)
	assert.Empty(t, e.URL())
}

func TestEngine_GateSynthesizeServesResponse(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.SetResourceGate(engine.GateFunc(func(req *engine.ResourceRequest) engine.GateResult {
		return engine.GateResult{
			Decision: engine.GateSynthesize,
			Response: &engine.ResourceResponse{
				Status:      200,
				ContentType: "text/html",
				Body:        []byte("<html><head><title>Synthetic</title></head></html>"),
			},
		}
	}))

	require.NoError(t, e.LoadURL(context.Background(), "https://any.example/", "", "", ""))
	assert.Equal(t, "Synthetic", e.Title())
}

func TestEngine_BasicAuthHeaderOfferedToGate(t *testing.T) {
	e := newTestEngine(t, Options{})
	var auth string
	e.SetResourceGate(engine.GateFunc(func(req *engine.ResourceRequest) engine.GateResult {
		auth = req.Headers["Authorization"]
		return engine.GateResult{Decision: engine.GateAllow}
	}))

	require.NoError(t, e.LoadURL(context.Background(), "https://secure.example/", "", "user", "pass"))
	assert.Equal(t, "Basic dXNlcjpwYXNz", auth)
}

func TestEngine_HistoryOffsetNavigatesBackAndForward(t *testing.T) {
	e := newTestEngine(t, Options{})

	require.NoError(t, e.LoadURL(context.Background(), "https://one.example/", "", "", ""))
	require.NoError(t, e.LoadURL(context.Background(), "https://two.example/", "", "", ""))
	require.NoError(t, e.LoadURL(context.Background(), "https://three.example/", "", "", ""))

	e.GoToHistoryOffset(-2)
	assert.Equal(t, "https://one.example/", e.URL())

	e.GoToHistoryOffset(1)
	assert.Equal(t, "https://two.example/", e.URL())

	// Out of range is ignored.
	e.GoToHistoryOffset(-5)
	assert.Equal(t, "https://two.example/", e.URL())
}

func TestEngine_ResizePaintsAtNewSize(t *testing.T) {
	e := newTestEngine(t, Options{Width: 100, Height: 100})
	var last *render.Buffer
	var dirty render.Rect
	e.SetCallbacks(&engine.Callbacks{
		OnPaint: func(buf *render.Buffer, d render.Rect) { last, dirty = buf, d },
	})

	require.NoError(t, e.Resize(context.Background(), 320, 240))
	require.NotNil(t, last)
	assert.Equal(t, 320, last.Width)
	assert.Equal(t, 240, last.Height)
	assert.Equal(t, render.Rect{Width: 320, Height: 240}, dirty)

	assert.Error(t, e.Resize(context.Background(), 0, 240))
}

func TestEngine_CopyPasteThroughClipboard(t *testing.T) {
	clip := NewMemoryClipboard()
	e := newTestEngine(t, Options{Clipboard: clip})
	ctx := context.Background()

	require.NoError(t, e.LoadHTML(ctx, "<html><body>hello world</body></html>", ""))
	e.SelectAll()
	require.NoError(t, e.Copy(ctx))

	text, err := clip.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	require.NoError(t, e.Paste(ctx))
	v, err := e.Evaluate(ctx, "__pasted", "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", v.Str())
}

func TestEngine_CrashReachesCallback(t *testing.T) {
	e := newTestEngine(t, Options{})
	var reason string
	e.SetCallbacks(&engine.Callbacks{
		OnCrash: func(r string) { reason = r },
	})

	e.Crash("oom")
	assert.Equal(t, "oom", reason)
}
