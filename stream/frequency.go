// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package stream

import "cloudeng.io/orderstat/container/heap"

type frequency[V comparable] struct {
	value V
	count int
}

// TopFrequent returns the k most frequently occurring values, most
// frequent first, in O(n log k) using a bounded min-heap over the
// distinct values' counts. If fewer than k distinct values occur all
// of them are returned. The relative order of values with equal
// counts is unspecified. TopFrequent returns ErrInvalidBound if
// k <= 0.
func TopFrequent[V comparable](values []V, k int) ([]V, error) {
	if k <= 0 {
		return nil, ErrInvalidBound
	}
	counts := make(map[V]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	h := heap.New(func(a, b frequency[V]) bool { return a.count < b.count })
	for v, c := range counts {
		if h.Len() < k {
			h.Push(frequency[V]{value: v, count: c})
			continue
		}
		if least, _ := h.Peek(); least.count < c {
			h.Replace(frequency[V]{value: v, count: c}) //nolint:errcheck
		}
	}
	out := make([]V, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		f, _ := h.Pop()
		out[i] = f.value
	}
	return out, nil
}
