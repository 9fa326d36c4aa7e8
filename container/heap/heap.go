// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an array-backed binary heap whose ordering is
// supplied as a comparison function at construction time. A single
// implementation therefore serves as both a min-heap and a max-heap;
// NewMin and NewMax are conveniences for the common numeric/string
// orderings. A heap exclusively owns its backing storage and is not
// safe for concurrent use.
package heap

import "errors"

// ErrEmpty is returned by Peek, Pop and Replace when the heap contains
// no elements.
var ErrEmpty = errors.New("empty heap")

// Ordered represents the set of types that support the < and >
// operators and hence have a natural total order.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Arithmetic represents the subset of Ordered types that support
// arithmetic and can be converted to a float64, as is required when
// averaging two heap values.
type Arithmetic interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// T represents a binary heap of values of type V stored as a dense,
// zero-indexed array. The value that orders first under the configured
// comparison function is always at the root.
type T[V any] struct {
	less   func(a, b V) bool
	values []V
}

// New creates a heap ordered by the supplied comparison function,
// which must describe a strict ordering (ie. a orders before b).
// New panics if less is nil. The WithData option provides initial
// contents which are copied and then heapified in O(n) by sifting
// down from the last internal node, rather than n sequential pushes.
func New[V any](less func(a, b V) bool, opts ...Option[V]) *T[V] {
	if less == nil {
		panic("comparison function must not be nil")
	}
	var o options[V]
	for _, fn := range opts {
		fn(&o)
	}
	sc := o.sliceCap
	if sc < len(o.data) {
		sc = len(o.data)
	}
	h := &T[V]{
		less:   less,
		values: make([]V, len(o.data), sc),
	}
	copy(h.values, o.data)
	h.heapify()
	return h
}

// NewMin creates a heap whose root is the smallest value.
func NewMin[V Ordered](opts ...Option[V]) *T[V] {
	return New(func(a, b V) bool { return a < b }, opts...)
}

// NewMax creates a heap whose root is the largest value.
func NewMax[V Ordered](opts ...Option[V]) *T[V] {
	return New(func(a, b V) bool { return a > b }, opts...)
}

// Len returns the number of values in the heap.
func (h *T[V]) Len() int {
	return len(h.values)
}

// Empty returns true if the heap contains no values.
func (h *T[V]) Empty() bool {
	return len(h.values) == 0
}

// Push adds v to the heap.
func (h *T[V]) Push(v V) {
	h.values = append(h.values, v)
	h.up(len(h.values) - 1)
}

// Peek returns the root without removing it.
func (h *T[V]) Peek() (V, error) {
	if len(h.values) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	return h.values[0], nil
}

// Pop removes and returns the root, ie. the minimum for a heap
// created by NewMin and the maximum for one created by NewMax.
func (h *T[V]) Pop() (V, error) {
	if len(h.values) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	n := len(h.values) - 1
	h.swap(0, n)
	h.down(0, n)
	v := h.values[n]
	h.values = h.values[:n]
	return v, nil
}

// Replace removes the root and adds v in a single sift-down pass,
// returning the removed root. It is equivalent to, but cheaper than,
// a Pop followed by a Push.
func (h *T[V]) Replace(v V) (V, error) {
	if len(h.values) == 0 {
		var zero V
		return zero, ErrEmpty
	}
	old := h.values[0]
	h.values[0] = v
	h.down(0, len(h.values))
	return old, nil
}

// heapify establishes heap order over the entire backing array by
// sifting down every internal node, from the last to the root.
func (h *T[V]) heapify() {
	n := len(h.values)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

func (h *T[V]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(h.values[j], h.values[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *T[V]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.values[j2], h.values[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(h.values[j], h.values[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

func (h *T[V]) swap(i, j int) {
	h.values[i], h.values[j] = h.values[j], h.values[i]
}
