// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"cloudeng.io/orderstat/container/heap"
)

func ExampleNewMin() {
	h := heap.NewMin(heap.WithData([]int{4, 10, 3, 5, 1, 6, 9, 2, 8, 7}))
	for !h.Empty() {
		v, _ := h.Pop()
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 1 2 3 4 5 6 7 8 9 10
}

func ExampleNew() {
	type task struct {
		name     string
		priority int
	}
	h := heap.New(func(a, b task) bool { return a.priority < b.priority })
	h.Push(task{"email", 3})
	h.Push(task{"call client", 1})
	h.Push(task{"report", 5})
	h.Push(task{"meeting", 2})
	for !h.Empty() {
		t, _ := h.Pop()
		fmt.Printf("%v ", t.name)
	}
	fmt.Println()
	// Output:
	// call client meeting report email
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func ascending(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

func descending(n int) []int {
	r := make([]int, n)
	for i := range r {
		r[i] = n - 1 - i
	}
	return r
}

func drain[V heap.Ordered](t *testing.T, h *heap.T[V]) []V {
	t.Helper()
	out := make([]V, 0, h.Len())
	for !h.Empty() {
		v, err := h.Pop()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if err := h.Verify(); err != nil {
			t.Fatal(err)
		}
		out = append(out, v)
	}
	return out
}

func TestPushPop(t *testing.T) {
	h := heap.NewMin[int]()
	for i, v := range []int{4, 10, 3, 5, 1, 6, 9, 2, 8, 7} {
		h.Push(v)
		if err := h.Verify(); err != nil {
			t.Fatal(err)
		}
		if got, want := h.Len(), i+1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := drain(t, h), ascending(11)[1:]; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortViaDrain(t *testing.T) {
	for _, input := range [][]int{
		nil,
		{3},
		ascending(33),
		descending(33),
		{7, 7, 7, 7, 7, 7},
		uniformRand(1, 500),
	} {
		want := make([]int, len(input))
		copy(want, input)
		sort.Ints(want)

		minh := heap.NewMin(heap.WithData(input))
		if err := minh.Verify(); err != nil {
			t.Fatal(err)
		}
		if got := drain(t, minh); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}

		maxh := heap.NewMax(heap.WithData(input))
		if err := maxh.Verify(); err != nil {
			t.Fatal(err)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(want)))
		if got := drain(t, maxh); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestBuildMatchesIncremental(t *testing.T) {
	for i := 0; i < 33; i++ {
		input := uniformRand(int64(i), i)
		bulk := heap.NewMin(heap.WithData(input))
		incremental := heap.NewMin[int](heap.WithSliceCap[int](i))
		for _, v := range input {
			incremental.Push(v)
		}
		if got, want := drain(t, bulk), drain(t, incremental); !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestEmpty(t *testing.T) {
	h := heap.NewMin[int]()
	if _, err := h.Peek(); !errors.Is(err, heap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, heap.ErrEmpty)
	}
	if _, err := h.Pop(); !errors.Is(err, heap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, heap.ErrEmpty)
	}
	if _, err := h.Replace(3); !errors.Is(err, heap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, heap.ErrEmpty)
	}
	if got, want := h.Empty(), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSingleElement(t *testing.T) {
	h := heap.NewMax[string]()
	h.Push("only")
	if got, want := h.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	v, err := h.Pop()
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if got, want := v, "only"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := h.Peek(); !errors.Is(err, heap.ErrEmpty) {
		t.Errorf("got %v, want %v", err, heap.ErrEmpty)
	}
}

func TestReplace(t *testing.T) {
	h := heap.NewMin(heap.WithData([]int{2, 4, 6, 8, 10}))
	old, err := h.Replace(7)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := old, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := h.Verify(); err != nil {
		t.Fatal(err)
	}
	if got, want := h.Len(), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Replacing with a value that belongs at the root leaves it there.
	old, err = h.Replace(1)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := old, 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := drain(t, h), []int{1, 6, 7, 8, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOwnership(t *testing.T) {
	input := []int{5, 3, 1}
	h := heap.NewMin(heap.WithData(input))
	input[0], input[1], input[2] = 0, 0, 0
	if got, want := drain(t, h), []int{1, 3, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSort(t *testing.T) {
	input := uniformRand(3, 200)
	want := make([]int, len(input))
	copy(want, input)
	sort.Ints(want)
	if got := heap.Sort(input); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	for _, tc := range []struct {
		lists [][]int
		want  []int
	}{
		{nil, []int{}},
		{[][]int{{}, {}}, []int{}},
		{[][]int{{1, 4, 5}, {1, 3, 4}, {2, 6}}, []int{1, 1, 2, 3, 4, 4, 5, 6}},
		{[][]int{{1, 2, 3}}, []int{1, 2, 3}},
		{[][]int{{}, {9}, {1, 10}}, []int{1, 9, 10}},
	} {
		if got := heap.Merge(tc.lists...); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("merge %v: got %v, want %v", tc.lists, got, tc.want)
		}
	}
}
