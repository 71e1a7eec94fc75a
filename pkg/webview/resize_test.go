package webview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_engine "github.com/offview/offview/pkg/engine/mocks"
)

// A resize against an engine that never finishes repainting must time out,
// leave the view resizing, and still recover when the repaint lands.
func TestView_ResizeTimeoutThenLateAckRecovers(t *testing.T) {
	ctrl := gomock.NewController(t)
	eng := mock_engine.NewMockEngine(ctrl)

	release := make(chan struct{})
	eng.EXPECT().SetCallbacks(gomock.Any())
	eng.EXPECT().SetResourceGate(gomock.Any())
	eng.EXPECT().Resize(gomock.Any(), 100, 100).DoAndReturn(
		func(context.Context, int, int) error {
			<-release
			return nil
		})
	eng.EXPECT().Close().Return(nil).AnyTimes()

	v := newTestView(t, Options{Engine: eng})

	ok := v.Resize(100, 100, true, time.Millisecond)
	assert.False(t, ok, "resize must report failure on timeout")
	assert.True(t, v.IsResizing(), "timed-out resize stays in flight")

	// Further resizes are rejected while the first is unresolved.
	assert.False(t, v.Resize(50, 50, false, 0))

	close(release)
	require.Eventually(t, func() bool { return !v.IsResizing() }, 2*time.Second, time.Millisecond)
}

// Engines that acknowledge promptly complete a waiting resize within the
// timeout.
func TestView_ResizeWaitSucceedsWithMockEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	eng := mock_engine.NewMockEngine(ctrl)

	eng.EXPECT().SetCallbacks(gomock.Any())
	eng.EXPECT().SetResourceGate(gomock.Any())
	eng.EXPECT().Resize(gomock.Any(), 640, 480).Return(nil)
	eng.EXPECT().Close().Return(nil).AnyTimes()

	v := newTestView(t, Options{Engine: eng})

	assert.True(t, v.Resize(640, 480, true, time.Second))
	assert.False(t, v.IsResizing())
}
