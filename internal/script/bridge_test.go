package script

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offview/offview/internal/protocol"
	"github.com/offview/offview/pkg/jsvalue"
)

type captured struct {
	op      protocol.Op
	payload any
}

func newCapturingBridge() (*Bridge, *[]captured) {
	var cmds []captured
	b := NewBridge(func(op protocol.Op, payload any) {
		cmds = append(cmds, captured{op: op, payload: payload})
	})
	return b, &cmds
}

func TestBridge_ExecuteFireAndForget(t *testing.T) {
	b, cmds := newCapturingBridge()

	b.Execute("console.log('hi')", "")

	require.Len(t, *cmds, 1)
	assert.Equal(t, protocol.OpExecuteScript, (*cmds)[0].op)
	p := (*cmds)[0].payload.(protocol.ExecuteScriptPayload)
	assert.Equal(t, uint64(0), p.RequestID)
	assert.Equal(t, "console.log('hi')", p.Script)
	assert.Equal(t, 0, b.PendingCount())
}

func TestBridge_EvaluateResolvesFuture(t *testing.T) {
	b, cmds := newCapturingBridge()

	f := b.Evaluate("1+2", "")
	require.Len(t, *cmds, 1)
	p := (*cmds)[0].payload.(protocol.ExecuteScriptPayload)
	require.NotZero(t, p.RequestID)
	assert.False(t, f.Ready())
	assert.Equal(t, 1, b.PendingCount())

	b.Resolve(p.RequestID, jsvalue.Number(3))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	v, err := f.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(3), v.Number())
	assert.Equal(t, 0, b.PendingCount())
}

func TestBridge_ResolveUnknownRequestIsDropped(t *testing.T) {
	b, _ := newCapturingBridge()
	b.Resolve(42, jsvalue.String("stale"))
	assert.Equal(t, 0, b.PendingCount())
}

func TestBridge_AbortAllFailsEveryPendingExactlyOnce(t *testing.T) {
	b, _ := newCapturingBridge()
	crashErr := errors.New("renderer crashed")

	f1 := b.Evaluate("a()", "")
	f2 := b.Evaluate("b()", "")
	require.Equal(t, 2, b.PendingCount())

	b.AbortAll(crashErr)

	for _, f := range []*jsvalue.Future{f1, f2} {
		v, err, ok := f.Result()
		require.True(t, ok)
		assert.ErrorIs(t, err, crashErr)
		assert.True(t, v.IsUndefined())
	}
	assert.Equal(t, 0, b.PendingCount())

	// A late result for an aborted request must not flip its outcome.
	b.Resolve(1, jsvalue.Number(99))
	_, err, ok := f1.Result()
	require.True(t, ok)
	assert.ErrorIs(t, err, crashErr)
}

func TestBridge_EvaluateAfterAbortFailsImmediately(t *testing.T) {
	b, cmds := newCapturingBridge()
	crashErr := errors.New("renderer crashed")
	b.AbortAll(crashErr)
	n := len(*cmds)

	f := b.Evaluate("1", "")
	_, err, ok := f.Result()
	require.True(t, ok)
	assert.ErrorIs(t, err, crashErr)
	assert.Len(t, *cmds, n, "no command should be enqueued after abort")
}

func TestBridge_ObjectCommands(t *testing.T) {
	b, cmds := newCapturingBridge()

	b.CreateObject("app")
	b.SetProperty("app", "version", jsvalue.String("1.0"))
	b.SetCallback("app", "onReady")
	b.CallFunction("app", "init", []jsvalue.Value{jsvalue.Bool(true)}, "")
	b.DestroyObject("app")

	require.Len(t, *cmds, 5)
	assert.Equal(t, protocol.OpCreateObject, (*cmds)[0].op)
	assert.Equal(t, protocol.OpSetObjectProperty, (*cmds)[1].op)
	assert.Equal(t, protocol.OpSetObjectCallback, (*cmds)[2].op)
	assert.Equal(t, protocol.OpCallFunction, (*cmds)[3].op)
	assert.Equal(t, protocol.OpDestroyObject, (*cmds)[4].op)

	prop := (*cmds)[1].payload.(protocol.ObjectPayload)
	assert.Equal(t, "app", prop.Object)
	assert.Equal(t, "version", prop.Member)
	assert.Equal(t, "1.0", prop.Value.Str())

	call := (*cmds)[3].payload.(protocol.CallFunctionPayload)
	assert.Equal(t, "init", call.Function)
	require.Len(t, call.Args, 1)
	assert.True(t, call.Args[0].Bool())
}

func TestBridge_RequestIDsAreUnique(t *testing.T) {
	b, cmds := newCapturingBridge()
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		b.Evaluate("x", "")
	}
	for _, c := range *cmds {
		id := c.payload.(protocol.ExecuteScriptPayload).RequestID
		assert.False(t, seen[id], "duplicate request id %d", id)
		seen[id] = true
	}
}
