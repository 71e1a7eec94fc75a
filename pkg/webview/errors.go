package webview

import "errors"

// Sentinel errors for view lifecycle failures. Pending script futures settle
// with one of these when the view can no longer produce results.
var (
	// ErrViewDestroyed means the operation raced with or followed Destroy.
	ErrViewDestroyed = errors.New("webview: view destroyed")

	// ErrViewCrashed means the worker process died. The view stays usable
	// only for state queries and Destroy.
	ErrViewCrashed = errors.New("webview: view crashed")
)
