package webview

import "github.com/offview/offview/pkg/jsvalue"

// Listener receives page events for one view. A view has at most one
// listener; SetListener replaces it wholesale. Methods are invoked
// sequentially, in the order the worker produced the events, from the view's
// dispatch goroutine. Blocking inside a listener stalls all further event
// delivery for that view.
type Listener interface {
	// OnLoadStarted fires when navigation begins in a frame.
	OnLoadStarted(frame, url string)

	// OnLoadFinished fires when the page has fully loaded.
	OnLoadFinished(url string)

	// OnTitleChanged fires when the page title changes.
	OnTitleChanged(title, frame string)

	// OnURLChanged fires when the page URL changes.
	OnURLChanged(url string)

	// OnConsoleMessage fires for each console message the page logs.
	OnConsoleMessage(message string, line int, source string)

	// OnCallback fires when page script invokes a callback bound with
	// SetObjectCallback. Arguments arrive losslessly converted.
	OnCallback(object, callback string, args []jsvalue.Value)

	// OnCrashed fires once when the worker dies.
	OnCrashed(reason string)
}

// ListenerFuncs adapts plain functions to the Listener interface. Nil fields
// ignore their event.
type ListenerFuncs struct {
	LoadStarted    func(frame, url string)
	LoadFinished   func(url string)
	TitleChanged   func(title, frame string)
	URLChanged     func(url string)
	ConsoleMessage func(message string, line int, source string)
	Callback       func(object, callback string, args []jsvalue.Value)
	Crashed        func(reason string)
}

var _ Listener = (*ListenerFuncs)(nil)

func (l *ListenerFuncs) OnLoadStarted(frame, url string) {
	if l.LoadStarted != nil {
		l.LoadStarted(frame, url)
	}
}

func (l *ListenerFuncs) OnLoadFinished(url string) {
	if l.LoadFinished != nil {
		l.LoadFinished(url)
	}
}

func (l *ListenerFuncs) OnTitleChanged(title, frame string) {
	if l.TitleChanged != nil {
		l.TitleChanged(title, frame)
	}
}

func (l *ListenerFuncs) OnURLChanged(url string) {
	if l.URLChanged != nil {
		l.URLChanged(url)
	}
}

func (l *ListenerFuncs) OnConsoleMessage(message string, line int, source string) {
	if l.ConsoleMessage != nil {
		l.ConsoleMessage(message, line, source)
	}
}

func (l *ListenerFuncs) OnCallback(object, callback string, args []jsvalue.Value) {
	if l.Callback != nil {
		l.Callback(object, callback, args)
	}
}

func (l *ListenerFuncs) OnCrashed(reason string) {
	if l.Crashed != nil {
		l.Crashed(reason)
	}
}
