// Package ordskl
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
package ordskl

import "testing"

func TestUpdateKeyInPlace(t *testing.T) {
	c := newIntContainer(t)
	for i := uint64(1); i <= 200; i++ {
		if _, err := c.Insert(intKey(i*10), i); err != nil {
			t.Fatalf("Insert(%d): %v", i*10, err)
		}
	}

	// 1005 lies strictly between the neighbours 1000 and 1010, so the
	// update preserves order as UpdateKey requires.
	c.UpdateKey(intKey(1000), intKey(1005))
	if contains(c, intKey(1000)) {
		t.Fatalf("old key 1000 still present after UpdateKey")
	}
	it := c.LowerBound(intKey(1005))
	if it.AtEnd() || !keyEqual(c.compar, it.Key(), intKey(1005)) {
		t.Fatalf("new key 1005 not found after UpdateKey")
	}
	if got := it.Get().(uint64); got != 100 {
		t.Fatalf("UpdateKey changed the associated data: got %d, want 100", got)
	}
	if c.Len() != 200 {
		t.Fatalf("Len after UpdateKey = %d, want 200", c.Len())
	}
	if errs := c.CheckInvariants(); len(errs) != 0 {
		t.Fatalf("invariant violations after UpdateKey: %v", errs)
	}
}

// TestUpdateKeyExtendsSeparatorOnRightSpine renames the current
// maximum key to a larger one, which must rewrite every separator on
// the right spine to the new maximum.
func TestUpdateKeyExtendsSeparatorOnRightSpine(t *testing.T) {
	c := newIntContainer(t)
	for i := uint64(1); i <= 200; i++ {
		if _, err := c.Insert(intKey(i), i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}

	c.UpdateKey(intKey(200), intKey(500))
	if contains(c, intKey(200)) {
		t.Fatalf("old key 200 still present after UpdateKey")
	}
	it := c.LowerBound(intKey(500))
	if it.AtEnd() || it.Get().(uint64) != 200 {
		t.Fatalf("UpdateKey did not rename key 200 to the new maximum 500")
	}
	if !keyEqual(c.compar, maxKey(c.back), intKey(500)) {
		t.Fatalf("right-spine separators were not refreshed after UpdateKey past the old maximum")
	}
	if errs := c.CheckInvariants(); len(errs) != 0 {
		t.Fatalf("invariant violations after UpdateKey: %v", errs)
	}
}

func TestUpdateKeyDoesNotInvalidateUnrelatedIterator(t *testing.T) {
	c := newIntContainer(t)
	for i := uint64(1); i <= 50; i++ {
		if _, err := c.Insert(intKey(i), i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}

	it := c.LowerBound(intKey(10))
	c.UpdateKey(intKey(40), intKey(41))

	if got := it.Get().(uint64); got != 10 {
		t.Fatalf("unrelated iterator changed after UpdateKey: got %d, want 10", got)
	}
}

func TestUpdateKeyAbsentKeyPanics(t *testing.T) {
	c := newIntContainer(t)
	if _, err := c.Insert(intKey(1), uint64(1)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("UpdateKey of an absent key did not panic")
		}
	}()
	c.UpdateKey(intKey(2), intKey(3))
}
