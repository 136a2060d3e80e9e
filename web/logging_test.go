// SPDX-License-Identifier: MIT

package web_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/spiderweb/web"
)

func TestWithLogger_StructuralEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w, err := web.New[int](web.WithMaxPerLevel(Cap2), web.WithLogger(zap.New(core)))
	require.NoError(t, err)

	for _, v := range seq(5) {
		w.Add(v)
	}
	added := logs.FilterMessage("level added").All()
	require.Len(t, added, 2, "levels 1 and 2 are opened")
	assert.Equal(t, int64(2), added[1].ContextMap()["level"])

	_, err = w.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("level dropped").Len())

	w.Clear()
	cleared := logs.FilterMessage("web cleared").All()
	require.Len(t, cleared, 1)
	assert.Equal(t, int64(4), cleared[0].ContextMap()["released"])
}

// TestAdd_LogsBrokenLinks checks that Add and AddFirst report link damage
// they cannot return to the caller.
func TestAdd_LogsBrokenLinks(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w, err := web.New[int](web.WithMaxPerLevel(Cap2), web.WithLogger(zap.New(core)))
	require.NoError(t, err)
	for _, v := range seq(4) {
		w.Add(v)
	}
	require.Equal(t, 0, logs.FilterLevelExact(zapcore.ErrorLevel).Len())

	head, err := w.FirstNode()
	require.NoError(t, err)
	n, ok := w.Node(head)
	require.True(t, ok)
	n.SetNextLevel(web.NilNode)

	w.Add(4)
	failed := logs.FilterMessage("add failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.ErrorIs(t, w.Validate(), web.ErrInconsistent)

	w2, err := web.New[int](web.WithMaxPerLevel(Cap2), web.WithLogger(zap.New(core)))
	require.NoError(t, err)
	for _, v := range seq(4) {
		w2.Add(v)
	}
	id, err := w2.GetNode(1)
	require.NoError(t, err)
	n, ok = w2.Node(id)
	require.True(t, ok)
	n.SetNext(web.NilNode)

	w2.AddFirst(-1)
	assert.Equal(t, 1, logs.FilterMessage("add first failed").Len())
}
