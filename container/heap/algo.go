// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// Sort returns the values in ascending order by heapifying them in
// O(n) and then draining the heap. The input slice is not modified.
func Sort[V Ordered](values []V) []V {
	h := NewMin(WithData(values))
	out := make([]V, 0, len(values))
	for !h.Empty() {
		v, _ := h.Pop()
		out = append(out, v)
	}
	return out
}

// cursor tracks the next unconsumed position in one of the lists
// being merged.
type cursor[V any] struct {
	value V
	list  int
	index int
}

// Merge merges the supplied sorted (ascending) lists into a single
// sorted list in O(n log k) for n total values across k lists. The
// heap holds one cursor per list; advancing a cursor reuses the root
// slot via Replace rather than a pop and a push.
func Merge[V Ordered](lists ...[]V) []V {
	h := New(func(a, b cursor[V]) bool { return a.value < b.value })
	total := 0
	for i, l := range lists {
		total += len(l)
		if len(l) > 0 {
			h.Push(cursor[V]{value: l[0], list: i})
		}
	}
	out := make([]V, 0, total)
	for !h.Empty() {
		c, _ := h.Peek()
		out = append(out, c.value)
		if next := c.index + 1; next < len(lists[c.list]) {
			h.Replace(cursor[V]{value: lists[c.list][next], list: c.list, index: next}) //nolint:errcheck
			continue
		}
		h.Pop() //nolint:errcheck
	}
	return out
}
