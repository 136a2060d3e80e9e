// Package web implements the spider web: a hierarchical linked container that
// spreads its elements over levels of bounded width.
//
// What:
//
//   - Web[T] stores values in levels of at most MaxPerLevel() nodes, filled left to right.
//   - A flat index linearises the structure: index = level*MaxPerLevel() + position.
//   - Every node links to its neighbours in the flat sequence (Next/Prev) and to the
//     node at the same position on the adjacent levels (NextLevel/PrevLevel).
//   - Nodes live in an arena and reference each other through NodeID handles.
//
// Operations:
//
//   - Insertion: Add, AddLast, AddFirst, Insert.
//   - Access:    Get, GetNode, Set, First, Last, FirstNode, LastNode, Node.
//   - Levels:    Level, LevelNodes, PrevLevel, MaxIndexForLevel, Levels, LastLevel, LastPosition.
//   - Search:    IndexOf, LastIndexOf, IndexFunc (NotFound = -1 when absent).
//   - Removal:   RemoveFirst, RemoveLast, RemoveAt, Clear.
//   - Other:     Copy, Size, Values, All, Print, String, Validate.
//
// Complexity:
//
//   - Size, First, Last, MaxIndexForLevel: O(1).
//   - Get/Set/Insert/RemoveAt at index i: O(i/max + max), or O(size-i) near the tail.
//   - Add, AddFirst, RemoveFirst, RemoveLast: O(max).
//   - IndexOf, LastIndexOf, Copy, Validate: O(size).
//
// Errors:
//
//   - ErrInvalidArgument: bad construction option.
//   - ErrOutOfRange:      flat index or level outside current bounds.
//   - ErrEmpty:           First/Last/Remove* on an empty Web.
//   - ErrInconsistent:    broken links detected; a bug, not caller misuse.
//
// Rejected calls leave the Web untouched. A Web is not safe for concurrent use.
package web
