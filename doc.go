// Package spiderweb is an in-memory spider web: a hierarchical linked
// container that spreads values over levels of bounded width.
//
// What is a spider web?
//
//	level 0:  a ─ b ─ c
//	          │   │   │
//	level 1:  d ─ e ─ f
//	          │
//	level 2:  g
//
// Each level holds at most MaxPerLevel nodes and is filled left to right.
// Horizontal links chain every node into one flat sequence (c is followed by d);
// vertical links join the nodes at the same position on adjacent levels.
//
// Layout:
//
//	web/           — Web[T] container and Node[T] record
//	cmd/spiderweb/ — CLI: `demo` renders a web, `run` applies line commands
//
// Quick start:
//
//	w, _ := web.New[int](web.WithMaxPerLevel(3))
//	w.Add(1)
//	w.AddFirst(0)
//	v, _ := w.Get(1) // 1
//
// A Web is single-threaded; callers serialise access themselves.
//
//	go get github.com/katalvlaran/spiderweb
package spiderweb
