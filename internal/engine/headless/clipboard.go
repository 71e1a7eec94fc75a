package headless

import (
	"context"
	"sync"
)

// MemoryClipboard is an in-process clipboard for headless use.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	has  bool
}

// NewMemoryClipboard creates an empty clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

// WriteText copies text to the clipboard.
func (c *MemoryClipboard) WriteText(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.has = true
	return nil
}

// ReadText reads text from the clipboard. Returns the empty string when the
// clipboard is empty.
func (c *MemoryClipboard) ReadText(_ context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// Clear clears the clipboard contents.
func (c *MemoryClipboard) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = ""
	c.has = false
	return nil
}

// HasText reports whether the clipboard holds text.
func (c *MemoryClipboard) HasText(_ context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.has, nil
}
