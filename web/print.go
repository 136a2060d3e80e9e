// SPDX-License-Identifier: MIT
// File: print.go
// Role: human-readable, level-by-level rendering for debugging.

package web

import (
	"fmt"
	"io"
	"strings"
)

// Print writes one line per level, e.g.
//
//	level 0: [1 2 3]
//	level 1: [4]
//
// An empty Web renders as "(empty)". Only the write error is reported.
func (w *Web[T]) Print(out io.Writer) error {
	if w.size == 0 {
		_, err := fmt.Fprintln(out, "(empty)")
		return err
	}
	row := make([]T, 0, min(w.maxPerLevel, w.size))
	level := 0
	for i, v := range w.All() {
		row = append(row, v)
		if (i+1)%w.maxPerLevel != 0 && i != w.size-1 {
			continue
		}
		if _, err := fmt.Fprintf(out, "level %d: %v\n", level, row); err != nil {
			return err
		}
		row = row[:0]
		level++
	}

	return nil
}

// String returns the Print rendering.
func (w *Web[T]) String() string {
	var sb strings.Builder
	_ = w.Print(&sb)

	return sb.String()
}
