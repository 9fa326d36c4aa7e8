// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"cloudeng.io/errors"
)

// Verify checks the parent/child ordering of every node and returns
// an error describing all of the violations found, or nil if the heap
// is well formed. It is intended for use in tests and assertions
// rather than on hot paths.
func (h *T[V]) Verify() error {
	errs := errors.M{}
	n := len(h.values)
	for i := 0; i < n; i++ {
		if l := 2*i + 1; l < n && h.less(h.values[l], h.values[i]) {
			errs.Append(fmt.Errorf("heap inconsistent: left subtree of %v ([%v] %v orders before %v)", i, l, h.values[l], h.values[i]))
		}
		if r := 2*i + 2; r < n && h.less(h.values[r], h.values[i]) {
			errs.Append(fmt.Errorf("heap inconsistent: right subtree of %v ([%v] %v orders before %v)", i, r, h.values[r], h.values[i]))
		}
	}
	return errs.Err()
}
