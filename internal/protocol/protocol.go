// Package protocol defines the command/event envelopes exchanged between the
// host-facing view handle and the worker. The representation is intra-product:
// typed payload structs ride inside an envelope, in the manner of a message
// bus, and no cross-version wire format is promised.
package protocol

import (
	"github.com/google/uuid"

	"github.com/offview/offview/internal/policy"
	"github.com/offview/offview/pkg/jsvalue"
	"github.com/offview/offview/pkg/render"
	"github.com/offview/offview/pkg/webinput"
)

// ViewID uniquely identifies a view across the host/worker boundary.
type ViewID string

// NewViewID allocates a fresh opaque view identifier.
func NewViewID() ViewID { return ViewID(uuid.NewString()) }

// Op identifies a host→worker command.
type Op string

const (
	OpNavigate          Op = "navigate"
	OpLoadHTML          Op = "load_html"
	OpLoadFile          Op = "load_file"
	OpHistoryOffset     Op = "history_offset"
	OpStop              Op = "stop"
	OpReload            Op = "reload"
	OpExecuteScript     Op = "execute_script"
	OpCallFunction      Op = "call_function"
	OpCreateObject      Op = "create_object"
	OpDestroyObject     Op = "destroy_object"
	OpSetObjectProperty Op = "set_object_property"
	OpSetObjectCallback Op = "set_object_callback"
	OpMouseMove         Op = "mouse_move"
	OpMouseDown         Op = "mouse_down"
	OpMouseUp           Op = "mouse_up"
	OpMouseWheel        Op = "mouse_wheel"
	OpKeyboard          Op = "keyboard"
	OpFocus             Op = "focus"
	OpUnfocus           Op = "unfocus"
	OpCut               Op = "cut"
	OpCopy              Op = "copy"
	OpPaste             Op = "paste"
	OpSelectAll         Op = "select_all"
	OpSetZoom           Op = "set_zoom"
	OpSetTransparent    Op = "set_transparent"
	OpResize            Op = "resize"
	OpPauseRendering    Op = "pause_rendering"
	OpResumeRendering   Op = "resume_rendering"
	OpSetPolicy         Op = "set_policy"
	OpDestroyView       Op = "destroy_view"
)

// Command is a one-way instruction from host to worker. Commands are
// immutable once enqueued and applied by the worker in per-view FIFO order.
type Command struct {
	View    ViewID
	Seq     uint64
	Op      Op
	Payload any
}

// EventKind identifies a worker→host event.
type EventKind string

const (
	EvLoadStarted      EventKind = "load_started"
	EvLoadFinished     EventKind = "load_finished"
	EvTitleChanged     EventKind = "title_changed"
	EvURLChanged       EventKind = "url_changed"
	EvConsoleMessage   EventKind = "console_message"
	EvCallback         EventKind = "callback"
	EvScriptResult     EventKind = "script_result"
	EvPaint            EventKind = "paint"
	EvResizeAck        EventKind = "resize_ack"
	EvCrashed          EventKind = "crashed"
	EvTeardownComplete EventKind = "teardown_complete"
)

// Event is an asynchronous notification from the worker. Events for a given
// view are delivered in the order the worker produced them.
type Event struct {
	View    ViewID
	Seq     uint64
	Kind    EventKind
	Payload any
}

// Command payloads.

type NavigatePayload struct {
	URL      string
	Frame    string
	Username string
	Password string
}

type LoadHTMLPayload struct {
	HTML  string
	Frame string
}

type LoadFilePayload struct {
	Path  string
	Frame string
}

type HistoryOffsetPayload struct {
	Offset int
}

// ExecuteScriptPayload carries both fire-and-forget execution (RequestID 0)
// and execute-with-result (RequestID > 0, correlating the script result
// event back to the pending future).
type ExecuteScriptPayload struct {
	Script    string
	Frame     string
	RequestID uint64
}

type CallFunctionPayload struct {
	Object   string
	Function string
	Args     []jsvalue.Value
	Frame    string
}

// ObjectPayload serves the bound-object mutators: Member is the property or
// callback name where applicable, Value the property value.
type ObjectPayload struct {
	Object string
	Member string
	Value  jsvalue.Value
}

type MouseMovePayload struct {
	X int
	Y int
}

type MouseButtonPayload struct {
	Button webinput.MouseButton
}

type MouseWheelPayload struct {
	Delta int
}

type KeyboardPayload struct {
	Event webinput.KeyboardEvent
}

type ZoomPayload struct {
	Percent int
}

type TransparentPayload struct {
	Transparent bool
}

type ResizePayload struct {
	Width  int
	Height int
}

type PolicyPayload struct {
	Snapshot policy.Snapshot
}

// Event payloads.

type LoadStartedPayload struct {
	Frame string
	URL   string
}

type LoadFinishedPayload struct {
	URL string
}

type TitleChangedPayload struct {
	Title string
	Frame string
}

type URLChangedPayload struct {
	URL string
}

type ConsoleMessagePayload struct {
	Message string
	Line    int
	Source  string
}

type CallbackPayload struct {
	Object   string
	Callback string
	Args     []jsvalue.Value
}

type ScriptResultPayload struct {
	RequestID uint64
	Value     jsvalue.Value
}

// PaintPayload carries the shared buffer reference and the bounding
// rectangle of pixels changed since the last render snapshot.
type PaintPayload struct {
	Buffer *render.Buffer
	Dirty  render.Rect
}

type ResizeAckPayload struct {
	Width  int
	Height int
}

type CrashedPayload struct {
	Reason string
}
