// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[V any] struct {
	sliceCap int
	data     []V
}

// Option represents the options that can be passed to New, NewMin and
// NewMax.
type Option[V any] func(*options[V])

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's values.
func WithSliceCap[V any](n int) Option[V] {
	return func(o *options[V]) {
		o.sliceCap = n
	}
}

// WithData sets the initial contents of the heap. The supplied slice
// is copied; the heap never aliases its caller's storage.
func WithData[V any](data []V) Option[V] {
	return func(o *options[V]) {
		o.data = data
	}
}
