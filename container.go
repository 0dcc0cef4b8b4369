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

import "fmt"

// Comparator is a strict weak order predicate over key bytes: it
// reports whether a < b. Equality is never asked for directly -- it is
// inferred, where needed, as !compar(a,b) && !compar(b,a). Comparators
// must be total over keys of the configured KeyLen and must not report
// two distinct keys as equal (duplicate keys are unsupported; behavior
// is undefined if a caller inserts one).
type Comparator func(a, b []byte) bool

// Allocator is the block storage collaborator. A Container never
// constructs or destroys a *Block itself -- it asks its Allocator, so
// that callers can plug in pooling, bounded-capacity, or
// failure-injecting strategies without the container knowing the
// difference. See package blockpool for reference implementations.
type Allocator interface {
	// Alloc returns a fresh, zeroed *Block, or ErrOutOfMemory if none
	// is available.
	Alloc() (*Block, error)
	// Free returns a block to the allocator. The container never
	// touches b again after calling Free.
	Free(b *Block)
}

// Config configures a new Container.
type Config struct {
	// Compar is the strict weak order used to keep keys sorted within
	// a block and to choose search direction. Required.
	Compar Comparator
	// KeyLen is the fixed byte length of every key stored in the
	// container. Required, must be > 0.
	KeyLen int
	// Allocator supplies and reclaims blocks. If nil, a simple
	// allocator that never fails is used.
	Allocator Allocator
}

// Container is an ordered associative container of fixed-size keys to
// arbitrary data, implemented as a B+-tree-shaped keyed skip list. See
// the package doc for the shape of the structure; see New to construct
// one.
type Container struct {
	head   *Block
	front  *Block
	back   *Block
	n      int
	compar Comparator
	keylen int
	alloc  Allocator
}

// New creates an empty Container per Config. This is the container's
// init entry point: it allocates the single empty leaf block that
// always exists as the root, even for an empty container.
func New(cfg Config) (*Container, error) {
	if cfg.Compar == nil {
		panic("ordskl: Config.Compar must not be nil")
	}
	if cfg.KeyLen <= 0 {
		panic("ordskl: Config.KeyLen must be > 0")
	}

	alloc := cfg.Allocator
	if alloc == nil {
		alloc = defaultAllocator{}
	}

	head, err := alloc.Alloc()
	if err != nil {
		return nil, err
	}
	head.leaf = true

	return &Container{
		head:   head,
		front:  head,
		back:   head,
		compar: cfg.Compar,
		keylen: cfg.KeyLen,
		alloc:  alloc,
	}, nil
}

// Len returns the total number of keys currently stored.
func (c *Container) Len() int { return c.n }

// KeyLen returns the fixed key length the container was configured
// with.
func (c *Container) KeyLen() int { return c.keylen }

// freeBlk recursively returns blk and, if it is internal, every block
// in its subtree to the allocator.
func (c *Container) freeBlk(blk *Block) {
	if !blk.leaf {
		for i := 0; i < blk.n; i++ {
			c.freeBlk(blk.nodes[i].child)
		}
	}
	c.alloc.Free(blk)
}

// Free releases every block owned by the container back to its
// Allocator. The container must not be used after calling Free.
func (c *Container) Free() {
	c.freeBlk(c.head)
	c.head, c.front, c.back = nil, nil, nil
}

// Clear drops every entry and resets the container to a single empty
// leaf root, exactly as a freshly constructed Container would be.
func (c *Container) Clear() {
	if !c.head.leaf {
		for i := 0; i < c.head.n; i++ {
			c.freeBlk(c.head.nodes[i].child)
		}
	}

	*c.head = Block{leaf: true}
	c.front, c.back = c.head, c.head
	c.n = 0
}

// cloneKey copies key into a new slice of the container's configured
// length -- the container never retains a caller-owned slice.
func (c *Container) cloneKey(key []byte) []byte {
	if len(key) != c.keylen {
		panic(fmt.Sprintf("ordskl: key length %d does not match configured KeyLen %d", len(key), c.keylen))
	}
	out := make([]byte, c.keylen)
	copy(out, key)
	return out
}

// keyEqual reports whether a and b are equal under compar, derived
// from the one-sided comparator as !compar(a,b) && !compar(b,a).
func keyEqual(compar Comparator, a, b []byte) bool {
	return !compar(a, b) && !compar(b, a)
}

// defaultAllocator is used when Config.Allocator is nil. It never
// fails: Go's runtime allocator is the backing store, so there is no
// bounded pool to exhaust. Callers who want to exercise the
// out-of-memory contract should supply a package blockpool allocator
// instead.
type defaultAllocator struct{}

func (defaultAllocator) Alloc() (*Block, error) { return &Block{}, nil }
func (defaultAllocator) Free(*Block)            {}
