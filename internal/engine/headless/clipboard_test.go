package headless

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_engine "github.com/offview/offview/pkg/engine/mocks"
)

func TestMemoryClipboard(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClipboard()

	has, err := c.HasText(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, c.WriteText(ctx, "snippet"))
	text, err := c.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snippet", text)
	has, err = c.HasText(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, c.Clear(ctx))
	text, err = c.ReadText(ctx)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestEngine_CopyWritesSelectionToClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock_engine.NewMockClipboard(ctrl)
	e := newTestEngine(t, Options{Clipboard: clip})
	ctx := context.Background()

	require.NoError(t, e.LoadHTML(ctx, "<html><body>copy me</body></html>", ""))

	// Nothing selected yet: no clipboard traffic.
	require.NoError(t, e.Copy(ctx))

	clip.EXPECT().WriteText(ctx, "copy me").Return(nil)
	e.SelectAll()
	require.NoError(t, e.Copy(ctx))
}

func TestEngine_CutPropagatesClipboardErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock_engine.NewMockClipboard(ctrl)
	e := newTestEngine(t, Options{Clipboard: clip})
	ctx := context.Background()

	require.NoError(t, e.LoadHTML(ctx, "<html><body>x</body></html>", ""))
	e.SelectAll()

	boom := errors.New("clipboard unavailable")
	clip.EXPECT().WriteText(ctx, "x").Return(boom)
	assert.ErrorIs(t, e.Cut(ctx), boom)
}
