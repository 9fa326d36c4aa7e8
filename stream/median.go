// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package stream

import (
	"errors"

	"cloudeng.io/orderstat/container/heap"
)

// ErrNoSamples is returned by Median.Median before any value has been
// pushed.
var ErrNoSamples = errors.New("no samples")

// Median maintains the running median of a stream in O(log n) per
// value and O(1) per query. It splits the values seen so far between
// a max-ordered heap holding the lower half and a min-ordered heap
// holding the upper half; between calls the two roots bracket the
// median and the heap sizes never differ by more than one.
type Median[V heap.Arithmetic] struct {
	lower *heap.T[V] // max-ordered, values <= median
	upper *heap.T[V] // min-ordered, values >= median
}

// NewMedian creates an empty running median.
func NewMedian[V heap.Arithmetic]() *Median[V] {
	return &Median[V]{
		lower: heap.NewMax[V](),
		upper: heap.NewMin[V](),
	}
}

// Push records v.
func (m *Median[V]) Push(v V) {
	m.lower.Push(v)

	// v may belong in the upper half: the lower half's max must not
	// exceed the upper half's min.
	if !m.upper.Empty() {
		lo, _ := m.lower.Peek()
		hi, _ := m.upper.Peek()
		if lo > hi {
			moved, _ := m.lower.Pop()
			m.upper.Push(moved)
		}
	}

	// Rebalance so that the halves never differ in size by more than
	// one. At most one of these fires per push.
	switch {
	case m.lower.Len() > m.upper.Len()+1:
		moved, _ := m.lower.Pop()
		m.upper.Push(moved)
	case m.upper.Len() > m.lower.Len()+1:
		moved, _ := m.upper.Pop()
		m.lower.Push(moved)
	}
}

// Len returns the number of values pushed so far.
func (m *Median[V]) Len() int {
	return m.lower.Len() + m.upper.Len()
}

// Median returns the current median: the root of the larger half, or
// the mean of the two roots when the halves are of equal size. It
// returns ErrNoSamples before any value has been pushed.
func (m *Median[V]) Median() (float64, error) {
	switch {
	case m.Len() == 0:
		return 0, ErrNoSamples
	case m.lower.Len() > m.upper.Len():
		v, _ := m.lower.Peek()
		return float64(v), nil
	case m.upper.Len() > m.lower.Len():
		v, _ := m.upper.Peek()
		return float64(v), nil
	default:
		lo, _ := m.lower.Peek()
		hi, _ := m.upper.Peek()
		// Halve before summing to avoid overflowing V.
		return float64(lo)/2 + float64(hi)/2, nil
	}
}
