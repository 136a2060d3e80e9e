// SPDX-License-Identifier: MIT
// Package web_test contains shared fixtures for the web package tests.

package web_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiderweb/web"
)

// Common capacities used across tests.
const (
	Cap1 = 1
	Cap2 = 2
	Cap3 = 3
)

// newInts builds a Web[int] of capacity perLevel holding values in order.
func newInts(t testing.TB, perLevel int, values ...int) *web.Web[int] {
	t.Helper()
	w, err := web.New[int](web.WithMaxPerLevel(perLevel))
	require.NoError(t, err)
	for _, v := range values {
		w.Add(v)
	}
	requireValid(t, w)

	return w
}

// seq returns 0..n-1.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// requireValid fails the test when the link structure is broken.
func requireValid[T any](t testing.TB, w *web.Web[T]) {
	t.Helper()
	require.NoError(t, w.Validate())
}

// levelsOf collects every level's values.
func levelsOf[T any](t testing.TB, w *web.Web[T]) [][]T {
	t.Helper()
	out := make([][]T, 0, w.Levels())
	for l := 0; l < w.Levels(); l++ {
		row, err := w.Level(l)
		require.NoError(t, err)
		out = append(out, row)
	}

	return out
}

// valueOf dereferences a handle through the owning Web.
func valueOf[T any](t testing.TB, w *web.Web[T], id web.NodeID) T {
	t.Helper()
	n, ok := w.Node(id)
	require.True(t, ok, "node %d must be live", id)

	return n.Value()
}
