// Package worker runs the engine side of a view: it applies host commands to
// the rendering engine in FIFO order, translates engine notifications into
// protocol events, and gates outgoing resource requests through the
// interceptor and the resource policy.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/offview/offview/internal/logging"
	"github.com/offview/offview/internal/policy"
	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/internal/transport"
	"github.com/offview/offview/pkg/engine"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
)

// Worker drives one engine instance for one view.
type Worker struct {
	view protocol.ViewID
	side transport.WorkerSide
	eng  engine.Engine
	pol  *policy.Engine
	log  zerolog.Logger

	interceptor atomic.Value // holds interceptorSlot

	seq     atomic.Uint64
	emitMu  sync.Mutex
	crashed bool
	paused  bool

	kill chan string
}

// The atomic.Value needs a consistent concrete type even when clearing.
type interceptorSlot struct {
	ic engine.ResourceInterceptor
}

// New wires a worker over the given transport side and engine. The worker
// owns the engine's callbacks and resource gate from this point on.
func New(ctx context.Context, view protocol.ViewID, side transport.WorkerSide, eng engine.Engine) *Worker {
	w := &Worker{
		view: view,
		side: side,
		eng:  eng,
		pol:  policy.New(),
		kill: make(chan string, 1),
	}
	w.log = logging.FromContext(ctx).With().
		Str("component", "worker").
		Str("view_id", string(view)).
		Logger()
	w.interceptor.Store(interceptorSlot{})

	eng.SetCallbacks(&engine.Callbacks{
		OnLoadStarted: func(frame, url string) {
			w.emit(protocol.EvLoadStarted, protocol.LoadStartedPayload{Frame: frame, URL: url})
		},
		OnLoadFinished: func(url string) {
			w.emit(protocol.EvLoadFinished, protocol.LoadFinishedPayload{URL: url})
		},
		OnTitleChanged: func(title, frame string) {
			w.emit(protocol.EvTitleChanged, protocol.TitleChangedPayload{Title: title, Frame: frame})
		},
		OnURLChanged: func(url string) {
			w.emit(protocol.EvURLChanged, protocol.URLChangedPayload{URL: url})
		},
		OnConsoleMessage: func(message string, line int, source string) {
			w.emit(protocol.EvConsoleMessage, protocol.ConsoleMessagePayload{
				Message: message,
				Line:    line,
				Source:  source,
			})
		},
		OnCallback: func(object, callback string, args []jsvalue.Value) {
			w.emit(protocol.EvCallback, protocol.CallbackPayload{
				Object:   object,
				Callback: callback,
				Args:     args,
			})
		},
		OnPaint: func(buffer *render.Buffer, dirty render.Rect) {
			if w.paused {
				return
			}
			w.emit(protocol.EvPaint, protocol.PaintPayload{Buffer: buffer, Dirty: dirty})
		},
		OnCrash: func(reason string) {
			w.reportCrash(reason)
		},
	})
	eng.SetResourceGate(engine.GateFunc(w.gate))
	return w
}

// SetInterceptor installs the resource interceptor consulted before policy
// filtering. Last write wins; nil clears. The slot crosses the host/worker
// boundary synchronously, outside the command queue.
func (w *Worker) SetInterceptor(ic engine.ResourceInterceptor) {
	w.interceptor.Store(interceptorSlot{ic: ic})
}

// Policy exposes the worker's policy engine for tests.
func (w *Worker) Policy() *policy.Engine { return w.pol }

// Kill simulates an engine crash with the given reason.
func (w *Worker) Kill(reason string) {
	select {
	case w.kill <- reason:
	default:
	}
}

// Run applies commands until the transport closes, the view is destroyed, or
// ctx is cancelled. It always releases the engine before returning.
func (w *Worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer func() {
			if err := w.eng.Close(); err != nil {
				w.log.Debug().Err(err).Msg("engine close")
			}
		}()
		return w.loop(ctx)
	})
	return g.Wait()
}

func (w *Worker) loop(ctx context.Context) error {
	for {
		select {
		case cmd, ok := <-w.side.Commands():
			if !ok {
				return nil
			}
			if done := w.apply(ctx, cmd); done {
				return nil
			}
		case reason := <-w.kill:
			w.reportCrash(reason)
		case <-w.side.Done():
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// apply executes one command. It returns true when the worker should stop.
func (w *Worker) apply(ctx context.Context, cmd protocol.Command) bool {
	if w.crashed && cmd.Op != protocol.OpDestroyView {
		// Dead engine: only teardown still means anything.
		return false
	}

	switch cmd.Op {
	case protocol.OpNavigate:
		p := cmd.Payload.(protocol.NavigatePayload)
		if err := w.eng.LoadURL(ctx, p.URL, p.Frame, p.Username, p.Password); err != nil {
			w.log.Warn().Err(err).Str("url", p.URL).Msg("navigation failed")
		}
	case protocol.OpLoadHTML:
		p := cmd.Payload.(protocol.LoadHTMLPayload)
		if err := w.eng.LoadHTML(ctx, p.HTML, p.Frame); err != nil {
			w.log.Warn().Err(err).Msg("load html failed")
		}
	case protocol.OpLoadFile:
		p := cmd.Payload.(protocol.LoadFilePayload)
		if err := w.eng.LoadFile(ctx, p.Path, p.Frame); err != nil {
			w.log.Warn().Err(err).Str("path", p.Path).Msg("load file failed")
		}
	case protocol.OpHistoryOffset:
		p := cmd.Payload.(protocol.HistoryOffsetPayload)
		w.eng.GoToHistoryOffset(p.Offset)
	case protocol.OpStop:
		w.eng.Stop()
	case protocol.OpReload:
		if err := w.eng.Reload(ctx); err != nil {
			w.log.Warn().Err(err).Msg("reload failed")
		}
	case protocol.OpExecuteScript:
		p := cmd.Payload.(protocol.ExecuteScriptPayload)
		w.executeScript(ctx, p)
	case protocol.OpCallFunction:
		p := cmd.Payload.(protocol.CallFunctionPayload)
		if err := w.eng.CallFunction(ctx, p.Object, p.Function, p.Args, p.Frame); err != nil {
			w.log.Warn().Err(err).Str("function", p.Function).Msg("function call failed")
		}
	case protocol.OpCreateObject:
		p := cmd.Payload.(protocol.ObjectPayload)
		w.eng.CreateObject(p.Object)
	case protocol.OpDestroyObject:
		p := cmd.Payload.(protocol.ObjectPayload)
		w.eng.DestroyObject(p.Object)
	case protocol.OpSetObjectProperty:
		p := cmd.Payload.(protocol.ObjectPayload)
		w.eng.SetObjectProperty(p.Object, p.Member, p.Value)
	case protocol.OpSetObjectCallback:
		p := cmd.Payload.(protocol.ObjectPayload)
		w.eng.SetObjectCallback(p.Object, p.Member)
	case protocol.OpMouseMove:
		p := cmd.Payload.(protocol.MouseMovePayload)
		w.eng.InjectMouseMove(p.X, p.Y)
	case protocol.OpMouseDown:
		p := cmd.Payload.(protocol.MouseButtonPayload)
		w.eng.InjectMouseDown(p.Button)
	case protocol.OpMouseUp:
		p := cmd.Payload.(protocol.MouseButtonPayload)
		w.eng.InjectMouseUp(p.Button)
	case protocol.OpMouseWheel:
		p := cmd.Payload.(protocol.MouseWheelPayload)
		w.eng.InjectMouseWheel(p.Delta)
	case protocol.OpKeyboard:
		p := cmd.Payload.(protocol.KeyboardPayload)
		w.eng.InjectKeyboardEvent(p.Event)
	case protocol.OpFocus:
		w.eng.Focus()
	case protocol.OpUnfocus:
		w.eng.Unfocus()
	case protocol.OpCut:
		if err := w.eng.Cut(ctx); err != nil {
			w.log.Debug().Err(err).Msg("cut failed")
		}
	case protocol.OpCopy:
		if err := w.eng.Copy(ctx); err != nil {
			w.log.Debug().Err(err).Msg("copy failed")
		}
	case protocol.OpPaste:
		if err := w.eng.Paste(ctx); err != nil {
			w.log.Debug().Err(err).Msg("paste failed")
		}
	case protocol.OpSelectAll:
		w.eng.SelectAll()
	case protocol.OpSetZoom:
		p := cmd.Payload.(protocol.ZoomPayload)
		w.eng.SetZoom(p.Percent)
	case protocol.OpSetTransparent:
		p := cmd.Payload.(protocol.TransparentPayload)
		w.eng.SetTransparent(p.Transparent)
	case protocol.OpResize:
		p := cmd.Payload.(protocol.ResizePayload)
		if err := w.eng.Resize(ctx, p.Width, p.Height); err != nil {
			// No ack: the host's wait times out and the next ack or
			// crash settles the surface.
			w.log.Warn().Err(err).Int("width", p.Width).Int("height", p.Height).Msg("resize failed")
			return false
		}
		w.emit(protocol.EvResizeAck, protocol.ResizeAckPayload{Width: p.Width, Height: p.Height})
	case protocol.OpPauseRendering:
		w.paused = true
	case protocol.OpResumeRendering:
		w.paused = false
	case protocol.OpSetPolicy:
		p := cmd.Payload.(protocol.PolicyPayload)
		w.pol.Restore(p.Snapshot)
	case protocol.OpDestroyView:
		w.emit(protocol.EvTeardownComplete, nil)
		return true
	default:
		w.log.Warn().Str("op", string(cmd.Op)).Msg("unknown command")
	}
	return false
}

func (w *Worker) executeScript(ctx context.Context, p protocol.ExecuteScriptPayload) {
	val, err := w.eng.Evaluate(ctx, p.Script, p.Frame)
	if err != nil {
		// Script errors resolve to undefined rather than failing the
		// future; only a dead worker fails futures.
		w.log.Debug().Err(err).Msg("script evaluation failed")
		val = jsvalue.Undefined()
	}
	if p.RequestID == 0 {
		return
	}
	w.emit(protocol.EvScriptResult, protocol.ScriptResultPayload{
		RequestID: p.RequestID,
		Value:     val,
	})
}

// gate runs the request pipeline: interceptor first, then URL filtering,
// then header rewriting.
func (w *Worker) gate(req *engine.ResourceRequest) engine.GateResult {
	slot, _ := w.interceptor.Load().(interceptorSlot)
	if slot.ic != nil {
		if resp := slot.ic.OnRequest(req); resp != nil {
			return engine.GateResult{Decision: engine.GateSynthesize, Response: resp}
		}
	}
	if !w.pol.Allows(req.URL) {
		w.log.Debug().Str("url", req.URL).Msg("request blocked by filter")
		return engine.GateResult{Decision: engine.GateDeny}
	}
	if req.Headers != nil {
		w.pol.RewriteHeaders(req.URL, req.Headers)
	}
	return engine.GateResult{Decision: engine.GateAllow}
}

// reportCrash emits the crash event once and poisons further command
// application.
func (w *Worker) reportCrash(reason string) {
	if w.crashed {
		return
	}
	w.crashed = true
	w.log.Error().Str("reason", reason).Msg("engine crashed")
	w.emit(protocol.EvCrashed, protocol.CrashedPayload{Reason: reason})
}

func (w *Worker) emit(kind protocol.EventKind, payload any) {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()
	ev := protocol.Event{
		View:    w.view,
		Seq:     w.seq.Add(1),
		Kind:    kind,
		Payload: payload,
	}
	if err := w.side.Emit(ev); err != nil {
		w.log.Debug().Err(err).Str("kind", string(kind)).Msg("event dropped")
	}
}
