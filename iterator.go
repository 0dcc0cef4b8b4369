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

// Iterator is a (block, index) cursor into a Container's leaf level.
// It always points either at a real leaf node or at the one-past-end
// position of the last leaf (the End() sentinel). All operations are
// O(1) amortized; crossing a block boundary is a single-step hop along
// the leaf sibling chain.
//
// Any structural mutation of the Container (Insert or Remove)
// invalidates every outstanding Iterator except the one the mutating
// call itself returns. UpdateKey does not invalidate iterators -- an
// iterator pointing at the updated node keeps pointing at the same
// node, which now holds the new key.
type Iterator struct {
	blk *Block
	i   int
}

// Begin returns an iterator at the first key in the container, or
// equal to End() if the container is empty.
func (c *Container) Begin() Iterator {
	return Iterator{blk: c.front, i: 0}
}

// End returns the one-past-end iterator.
func (c *Container) End() Iterator {
	return Iterator{blk: c.back, i: c.back.n}
}

// Valid reports whether it currently points at a real node, i.e. is
// not the End() sentinel.
func (it Iterator) Valid() bool {
	return it.i < it.blk.n
}

// AtBegin reports whether it is positioned at the very first key.
func (it Iterator) AtBegin() bool {
	return it.i == 0 && it.blk.prev == nil
}

// AtEnd reports whether it is the one-past-end sentinel: index equal
// to the block's occupancy with no following leaf.
func (it Iterator) AtEnd() bool {
	return it.i == it.blk.n && it.blk.next == nil
}

// Get returns the data stored at it. Precondition: it.Valid().
func (it Iterator) Get() interface{} {
	if !it.Valid() {
		panic("ordskl: Iterator.Get called on an invalid (end) iterator")
	}
	return it.blk.nodes[it.i].data
}

// Key returns the key bytes stored at it. Precondition: it.Valid().
// The returned slice must not be mutated by the caller.
func (it Iterator) Key() []byte {
	if !it.Valid() {
		panic("ordskl: Iterator.Key called on an invalid (end) iterator")
	}
	return it.blk.nodes[it.i].key
}

// Next advances it by one position, hopping to the next leaf when it
// crosses a block boundary. Precondition: !it.AtEnd().
func (it Iterator) Next() Iterator {
	if it.AtEnd() {
		panic("ordskl: Iterator.Next called on the end iterator")
	}
	i := it.i + 1
	blk := it.blk
	if i == blk.n && blk.next != nil {
		blk = blk.next
		i = 0
	}
	return Iterator{blk: blk, i: i}
}

// Prev moves it back by one position, hopping to the previous leaf
// when it crosses a block boundary. Precondition: !it.AtBegin().
func (it Iterator) Prev() Iterator {
	if it.AtBegin() {
		panic("ordskl: Iterator.Prev called on the begin iterator")
	}
	if it.i == 0 {
		blk := it.blk.prev
		return Iterator{blk: blk, i: blk.n - 1}
	}
	return Iterator{blk: it.blk, i: it.i - 1}
}

// Peek returns the key and data at it without requiring the caller to
// separately check Valid() -- ok is false at the end sentinel.
func (it Iterator) Peek() (key []byte, data interface{}, ok bool) {
	if !it.Valid() {
		return nil, nil, false
	}
	n := it.blk.nodes[it.i]
	return n.key, n.data, true
}
