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

// MaxBlockNodes is the fixed capacity of every block: the maximum
// number of node slots a block can hold.
const MaxBlockNodes = 16

// MinBlockNodes is the minimum occupancy of every non-root block.
// 2*MinBlockNodes <= MaxBlockNodes is required so two minimum-occupancy
// siblings can always be merged into a single block without overflow.
const MinBlockNodes = MaxBlockNodes / 2

// node is a single slot inside a Block. In a leaf block it holds a
// (key, data) pair; in an internal block it holds a separator key and
// a pointer to the child subtree whose maximum key equals that
// separator. Which fields are meaningful is determined entirely by the
// owning Block's leaf flag, so a single slot shape serves both roles
// without a tag byte.
type node struct {
	key   []byte
	data  interface{}
	child *Block
}

// Block is a fixed-capacity array of node slots plus sibling links. A
// Block is the unit of allocation: it is handed out whole by an
// Allocator and returned whole on merge or teardown.
//
// Blocks form two structures at once: a tree rooted at the
// container's head, and -- only at the leaf level -- a doubly linked
// list threaded through prev/next that visits every key in order.
type Block struct {
	n     int
	leaf  bool
	prev  *Block
	next  *Block
	nodes [MaxBlockNodes]node
}

// Len returns the block's current occupancy.
func (b *Block) Len() int { return b.n }

// Leaf reports whether the block is a leaf block.
func (b *Block) Leaf() bool { return b.leaf }

// bsearch returns the smallest index i in [0, b.n] such that
// !compar(b.nodes[i].key, key), i.e. the first key in b that is not
// less than key. A return value of b.n means key is greater than every
// key currently in b. It performs a half-open binary search using only
// the one-sided compar predicate: equality is never asked for
// directly.
func bsearch(b *Block, key []byte, compar Comparator) int {
	left, right := -1, b.n
	for right-left > 1 {
		mid := (left + right) / 2
		if compar(b.nodes[mid].key, key) {
			left = mid
		} else {
			right = mid
		}
	}
	return right
}

// insertNode shifts the tail of b right by one slot and writes a new
// node at index i. The caller must ensure b.n < MaxBlockNodes.
func insertNode(b *Block, i int, key []byte, data interface{}, child *Block) {
	copy(b.nodes[i+1:b.n+1], b.nodes[i:b.n])
	b.nodes[i] = node{key: key, data: data, child: child}
	b.n++
}

// removeNode shifts the tail of b left by one slot, dropping the node
// at index i.
func removeNode(b *Block, i int) {
	copy(b.nodes[i:b.n-1], b.nodes[i+1:b.n])
	b.nodes[b.n-1] = node{}
	b.n--
}

// maxKey returns the key of the last node in b -- for a leaf, the
// block's maximum key; for an internal block, the separator of its
// rightmost child subtree, which by invariant 3 is also that
// subtree's maximum key.
func maxKey(b *Block) []byte {
	return b.nodes[b.n-1].key
}
