// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package stream provides order statistics over streams of values,
// built on cloudeng.io/orderstat/container/heap: the k largest values
// seen so far, the running median, and related one-shot conveniences.
// As with the underlying heaps, instances are exclusively owned by
// their callers and are not safe for concurrent use.
package stream

import (
	"errors"

	"cloudeng.io/orderstat/container/heap"
)

var (
	// ErrInvalidBound is returned when a requested bound or rank is
	// not positive.
	ErrInvalidBound = errors.New("bound must be positive")
	// ErrInsufficientValues is returned when fewer values have been
	// seen than the requested rank.
	ErrInsufficientValues = errors.New("fewer values than the requested rank")
)

// TopK tracks the k largest values observed in a stream without
// retaining the stream itself. It is backed by a min-heap of at most
// k values whose root, once k values have been observed, is the k'th
// largest value seen so far (duplicates count by multiplicity).
type TopK[V heap.Ordered] struct {
	k int
	h *heap.T[V]
}

// NewTopK creates a TopK tracker for the k largest values. The
// initial values, if any, are heapified in O(n) and then trimmed to
// the k largest. NewTopK returns ErrInvalidBound if k <= 0.
func NewTopK[V heap.Ordered](k int, initial []V) (*TopK[V], error) {
	if k <= 0 {
		return nil, ErrInvalidBound
	}
	h := heap.NewMin(heap.WithData(initial))
	for h.Len() > k {
		h.Pop() //nolint:errcheck
	}
	return &TopK[V]{k: k, h: h}, nil
}

// Observe records v and returns the root of the heap. Once k values
// have been observed the returned value is exactly the k'th largest
// value seen so far, v included. Before that point the heap is only
// partially filled and the returned value is its current minimum; use
// Kth to distinguish the two cases.
func (t *TopK[V]) Observe(v V) V {
	if t.h.Len() < t.k {
		t.h.Push(v)
	} else if root, _ := t.h.Peek(); root < v {
		// v displaces the current k'th largest; reuse the root slot.
		t.h.Replace(v) //nolint:errcheck
	}
	root, _ := t.h.Peek()
	return root
}

// Kth returns the k'th largest value observed so far, or
// ErrInsufficientValues if fewer than k values have been observed.
func (t *TopK[V]) Kth() (V, error) {
	if t.h.Len() < t.k {
		var zero V
		return zero, ErrInsufficientValues
	}
	return t.h.Peek()
}

// Len returns the number of values currently retained, at most k.
func (t *TopK[V]) Len() int {
	return t.h.Len()
}

// KthLargest returns the k'th largest value in values. It runs in
// O(n log k) using a bounded min-heap rather than a full sort. It
// returns ErrInvalidBound if k <= 0 and ErrInsufficientValues if
// k > len(values).
func KthLargest[V heap.Ordered](values []V, k int) (V, error) {
	var zero V
	if k <= 0 {
		return zero, ErrInvalidBound
	}
	if k > len(values) {
		return zero, ErrInsufficientValues
	}
	t, err := NewTopK(k, values)
	if err != nil {
		return zero, err
	}
	return t.Kth()
}
