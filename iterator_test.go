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

func TestIteratorForwardAndBackwardTraversal(t *testing.T) {
	c := newIntContainer(t)
	for i := uint64(1); i <= 500; i++ {
		if _, err := c.Insert(intKey(i), i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}

	it := c.Begin()
	for i := uint64(1); i <= 500; i++ {
		if got := it.Get().(uint64); got != i {
			t.Fatalf("forward position %d: got %d", i, got)
		}
		if i < 500 {
			it = it.Next()
		}
	}
	if !it.AtEnd() {
		if n := it.Next(); !n.AtEnd() {
			t.Fatalf("one past the last element is not End()")
		}
	}

	it = c.End()
	if !it.AtEnd() {
		t.Fatalf("End() is not AtEnd()")
	}
	it = it.Prev()
	for i := uint64(500); i >= 1; i-- {
		if got := it.Get().(uint64); got != i {
			t.Fatalf("backward position %d: got %d", i, got)
		}
		if i > 1 {
			it = it.Prev()
		}
	}
	if !it.AtBegin() {
		t.Fatalf("the first element is not AtBegin()")
	}
}

func TestIteratorBeginEndOnEmptyContainer(t *testing.T) {
	c := newIntContainer(t)
	if b, e := c.Begin(), c.End(); b.blk != e.blk || b.i != e.i {
		t.Fatalf("Begin() != End() on an empty container")
	}
	if !c.Begin().AtBegin() || !c.Begin().AtEnd() {
		t.Fatalf("empty container's single position is not both AtBegin and AtEnd")
	}
}

func TestIteratorGetPastEndPanics(t *testing.T) {
	c := newIntContainer(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("Get on End() did not panic")
		}
	}()
	c.End().Get()
}

func TestIteratorPeek(t *testing.T) {
	c := newIntContainer(t)
	if _, _, ok := c.Begin().Peek(); ok {
		t.Fatalf("Peek on an empty container reported ok")
	}
	if _, err := c.Insert(intKey(7), uint64(7)); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	key, data, ok := c.Begin().Peek()
	if !ok {
		t.Fatalf("Peek reported !ok on a non-empty container")
	}
	if data.(uint64) != 7 {
		t.Fatalf("Peek data = %v, want 7", data)
	}
	if !keyEqual(lessBytes, key, intKey(7)) {
		t.Fatalf("Peek key mismatch")
	}
}

func TestIteratorCrossesBlockBoundaries(t *testing.T) {
	c := newIntContainer(t)
	n := uint64(5000)
	for i := uint64(0); i < n; i++ {
		if _, err := c.Insert(intKey(i), i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	if c.front == c.back {
		t.Fatalf("test assumption broken: expected more than one leaf block")
	}

	count := uint64(0)
	for it := c.Begin(); !it.AtEnd(); it = it.Next() {
		if got := it.Get().(uint64); got != count {
			t.Fatalf("position %d: got %d", count, got)
		}
		count++
	}
	if count != n {
		t.Fatalf("iterated %d elements, want %d", count, n)
	}
}
