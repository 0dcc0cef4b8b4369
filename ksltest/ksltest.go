// Package ksltest
//
// (C) Copyright ordskl contributors
//
// Licensed under the Mozilla Public License, v. 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ksltest packages up the randomized model-check idiom shared
// by every property test in the ordskl suite: build a large dataset,
// drive it through a real Container, and check the result against
// what was expected. It offers a map-backed reference Oracle and
// CheckInvariants, which wraps ordskl.Container.CheckInvariants with a
// *testing.T failure.
package ksltest

import (
	"bytes"
	"testing"

	"github.com/ordskl/ordskl"
)

// CheckInvariants fails t with every structural violation
// ordskl.Container reports against itself. Call it after every
// mutation in a randomized soak test, or once at the end of a
// deterministic scenario test.
func CheckInvariants(t *testing.T, c *ordskl.Container) {
	t.Helper()
	for _, msg := range c.CheckInvariants() {
		t.Errorf("invariant violation: %s", msg)
	}
}

// Oracle is a map-backed reference model of a Container driven
// alongside it: every Insert/Remove is mirrored here, and Diff reports
// the first place the container's iteration order disagrees with the
// oracle's sorted key set.
type Oracle struct {
	keys   [][]byte
	data   map[string]interface{}
	compar ordskl.Comparator
}

// NewOracle returns an empty Oracle that orders keys with compar, the
// same comparator the Container under test was configured with.
func NewOracle(compar ordskl.Comparator) *Oracle {
	return &Oracle{data: make(map[string]interface{}), compar: compar}
}

// Insert mirrors a Container.Insert call against the oracle's sorted
// key set.
func (o *Oracle) Insert(key []byte, data interface{}) {
	k := append([]byte(nil), key...)
	i := o.search(k)
	o.keys = append(o.keys, nil)
	copy(o.keys[i+1:], o.keys[i:])
	o.keys[i] = k
	o.data[string(k)] = data
}

// Remove mirrors a Container.Remove call.
func (o *Oracle) Remove(key []byte) {
	i := o.search(key)
	if i >= len(o.keys) || !bytes.Equal(o.keys[i], key) {
		panic("ksltest: Oracle.Remove called with a key not present")
	}
	delete(o.data, string(o.keys[i]))
	o.keys = append(o.keys[:i], o.keys[i+1:]...)
}

// Len returns the oracle's current key count.
func (o *Oracle) Len() int { return len(o.keys) }

func (o *Oracle) search(key []byte) int {
	lo, hi := 0, len(o.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if o.compar(o.keys[mid], key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Diff walks c from Begin to End and compares it, position by
// position, against the oracle's sorted key/data pairs. It fails t
// and stops at the first disagreement, or reports a length mismatch
// if iteration ends early or late.
func Diff(t *testing.T, c *ordskl.Container, o *Oracle) {
	t.Helper()

	if c.Len() != o.Len() {
		t.Fatalf("length mismatch: container has %d, oracle has %d", c.Len(), o.Len())
	}

	it := c.Begin()
	for i, wantKey := range o.keys {
		if it.AtEnd() {
			t.Fatalf("container iteration ended early at position %d", i)
		}
		gotKey, gotData, ok := it.Peek()
		if !ok {
			t.Fatalf("iterator invalid at position %d", i)
		}
		if !bytes.Equal(gotKey, wantKey) {
			t.Fatalf("position %d: got key %x, want %x", i, gotKey, wantKey)
		}
		wantData := o.data[string(wantKey)]
		if gotData != wantData {
			t.Fatalf("position %d: got data %v, want %v", i, gotData, wantData)
		}
		if i+1 < len(o.keys) {
			it = it.Next()
		}
	}
	if len(o.keys) > 0 {
		it = it.Next()
	}
	if !it.AtEnd() {
		t.Fatalf("container iteration continued past the oracle's %d keys", len(o.keys))
	}
}
