package quickdirective

import (
	"errors"
	"fmt"
)

// DefaultMaxRecursionDepth is the path length used when ValidationLimits leaves
// MaxRecursionDepth unset. Real schemas stay far below it.
const DefaultMaxRecursionDepth = 500

// ErrAlreadyOnPath is returned by RecursionStack.Push when the item is already
// part of the current path.
var ErrAlreadyOnPath = errors.New("item is already on the recursion path")

// RecursionLimitError is returned when a path would grow past its limit.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("recursion limit of %d exceeded", e.Limit)
}

// RecursionStack tracks the path of a depth-first search. The ordered path and
// the membership index always change together: an item is in the index iff it
// is on the path.
type RecursionStack[T comparable] struct {
	path  []T
	index map[T]struct{}
	limit int
}

// NewRecursionStack creates a stack holding only root. A limit <= 0 selects
// DefaultMaxRecursionDepth.
func NewRecursionStack[T comparable](root T, limit int) *RecursionStack[T] {
	if limit <= 0 {
		limit = DefaultMaxRecursionDepth
	}
	return &RecursionStack[T]{
		path:  []T{root},
		index: map[T]struct{}{root: {}},
		limit: limit,
	}
}

// RecursionGuard is the handle returned by Push. Release pops the pushed item;
// callers defer it right after a successful Push.
type RecursionGuard[T comparable] struct {
	stack    *RecursionStack[T]
	item     T
	released bool
}

// Push extends the path with item. It fails with *RecursionLimitError when the
// path is already at its limit.
func (s *RecursionStack[T]) Push(item T) (*RecursionGuard[T], error) {
	if _, ok := s.index[item]; ok {
		return nil, ErrAlreadyOnPath
	}
	if len(s.path) >= s.limit {
		return nil, &RecursionLimitError{Limit: s.limit}
	}
	s.path = append(s.path, item)
	s.index[item] = struct{}{}
	return &RecursionGuard[T]{stack: s, item: item}, nil
}

// Release pops the guarded item. Releasing twice is a no-op. Guards must be
// released in reverse push order.
func (g *RecursionGuard[T]) Release() {
	if g == nil || g.released {
		return
	}
	s := g.stack
	last := len(s.path) - 1
	if last < 0 || s.path[last] != g.item {
		panic(fmt.Sprintf("recursion guard for %v released out of order", g.item))
	}
	s.path = s.path[:last]
	delete(s.index, g.item)
	g.released = true
}

// Contains reports whether item is on the current path.
func (s *RecursionStack[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// First returns the root of the path.
func (s *RecursionStack[T]) First() (T, bool) {
	if len(s.path) == 0 {
		var zero T
		return zero, false
	}
	return s.path[0], true
}

// Depth is the current path length, root included.
func (s *RecursionStack[T]) Depth() int {
	return len(s.path)
}

// Limit returns the maximum path length.
func (s *RecursionStack[T]) Limit() int {
	return s.limit
}

// Path returns a copy of the current path, root first.
func (s *RecursionStack[T]) Path() []T {
	out := make([]T, len(s.path))
	copy(out, s.path)
	return out
}
