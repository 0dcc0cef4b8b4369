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

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// intKey encodes n as an 8-byte big-endian key, the fixed-size integer
// key most scenario tests in this package use.
func intKey(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

func lessBytes(a, b []byte) bool { return bytes.Compare(a, b) < 0 }

func newIntContainer(t *testing.T) *Container {
	t.Helper()
	c, err := New(Config{Compar: lessBytes, KeyLen: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func collect(c *Container) []uint64 {
	var out []uint64
	for it := c.Begin(); !it.AtEnd(); it = it.Next() {
		out = append(out, binary.BigEndian.Uint64(it.Key()))
	}
	return out
}

func TestNewEmptyContainer(t *testing.T) {
	c := newIntContainer(t)
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	if !c.head.leaf {
		t.Fatalf("fresh container's root is not a leaf")
	}
	if !c.Begin().AtEnd() {
		t.Fatalf("Begin() of an empty container is not End()")
	}
	if errs := c.CheckInvariants(); len(errs) != 0 {
		t.Fatalf("invariant violations on empty container: %v", errs)
	}
}

func TestClearResetsToEmptyLeafRoot(t *testing.T) {
	c := newIntContainer(t)
	for i := uint64(0); i < 200; i++ {
		if _, err := c.Insert(intKey(i), i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len after Clear = %d, want 0", c.Len())
	}
	if !c.head.leaf || c.head.n != 0 {
		t.Fatalf("root after Clear is not an empty leaf")
	}
	if c.front != c.head || c.back != c.head {
		t.Fatalf("front/back after Clear do not point at the root")
	}
	if errs := c.CheckInvariants(); len(errs) != 0 {
		t.Fatalf("invariant violations after Clear: %v", errs)
	}

	if _, err := c.Insert(intKey(1), 1); err != nil {
		t.Fatalf("Insert after Clear: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len after post-Clear Insert = %d, want 1", c.Len())
	}
}

func TestFreeReleasesEveryBlock(t *testing.T) {
	pool := &countingAllocator{}
	c, err := New(Config{Compar: lessBytes, KeyLen: 8, Allocator: pool})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := uint64(0); i < 500; i++ {
		if _, err := c.Insert(intKey(i), i); err != nil {
			t.Fatalf("Insert(%d): %v", i, err)
		}
	}
	if pool.live == 0 {
		t.Fatalf("expected some live blocks before Free")
	}
	c.Free()
	if pool.live != 0 {
		t.Fatalf("live blocks after Free = %d, want 0", pool.live)
	}
}

// countingAllocator is a minimal Allocator used to check that Free
// returns every block it owns, without depending on package blockpool
// (which itself imports ordskl).
type countingAllocator struct{ live int }

func (a *countingAllocator) Alloc() (*Block, error) {
	a.live++
	return &Block{}, nil
}

func (a *countingAllocator) Free(b *Block) { a.live-- }
