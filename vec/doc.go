// Package vec provides a growable contiguous buffer with an explicit
// size/capacity split and two statically selected element paths: a trivial
// path for plain values that move with bulk copies, and a managed path for
// element types whose copies and teardown are meaningful operations.
// Buffers are not safe for concurrent use.
package vec
