// Package render defines the pixel-buffer types shared between the worker's
// paint pipeline and the host's compositor. The buffer layout is deliberately
// minimal: width, height, bytes per pixel, and a dirty sub-rectangle.
package render

// Rect is an axis-aligned rectangle in surface coordinates.
// The zero Rect is empty.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Union returns the bounding rectangle of r and other.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.X+r.Width, other.X+other.Width)
	y2 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Buffer is a read-only snapshot of the worker's render output. The snapshot
// is valid until the next Render call on the owning view, or until a crash
// event invalidates it; callers must not retain it past either.
type Buffer struct {
	Width         int
	Height        int
	BytesPerPixel int
	Rowspan       int
	Pixels        []byte
}

// NewBuffer allocates a zeroed buffer for the given dimensions.
func NewBuffer(width, height, bpp int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:         width,
		Height:        height,
		BytesPerPixel: bpp,
		Rowspan:       width * bpp,
		Pixels:        make([]byte, width*height*bpp),
	}
}

// Bounds returns the full-buffer rectangle.
func (b *Buffer) Bounds() Rect {
	if b == nil {
		return Rect{}
	}
	return Rect{Width: b.Width, Height: b.Height}
}
