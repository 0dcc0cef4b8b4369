// Package blockpool
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

// Package blockpool supplies reference implementations of
// ordskl.Allocator: a free-list pool that recycles freed blocks and
// can be configured with a bounded capacity, and an unbounded variant
// that never fails. Blocks handed out by Alloc are returned through
// Free for reuse rather than left for the garbage collector, so a
// long-lived container under steady churn settles into a fixed working
// set of blocks instead of growing one on every split.
package blockpool

import "github.com/ordskl/ordskl"

// Pool is a free-list-backed ordskl.Allocator. A zero-value Pool is a
// valid unbounded pool; use New for a pool with a capacity limit.
type Pool struct {
	cap  int // 0 means unbounded
	live int
	free []*ordskl.Block
}

// New returns a Pool bounded to cap live blocks at once. Once cap
// blocks are outstanding, Alloc returns ordskl.ErrOutOfMemory until
// one is freed.
func New(cap int) *Pool {
	return &Pool{cap: cap}
}

// NewUnbounded returns a Pool with no capacity limit; Alloc never
// fails.
func NewUnbounded() *Pool {
	return &Pool{}
}

// Alloc implements ordskl.Allocator.
func (p *Pool) Alloc() (*ordskl.Block, error) {
	if p.cap > 0 && p.live >= p.cap {
		return nil, ordskl.ErrOutOfMemory
	}
	p.live++
	if n := len(p.free); n > 0 {
		b := p.free[n-1]
		p.free = p.free[:n-1]
		return b, nil
	}
	return &ordskl.Block{}, nil
}

// Free implements ordskl.Allocator, returning b to the free list for
// reuse by a later Alloc.
func (p *Pool) Free(b *ordskl.Block) {
	*b = ordskl.Block{}
	p.free = append(p.free, b)
	p.live--
}

// Live reports the number of blocks currently allocated and not yet
// freed.
func (p *Pool) Live() int { return p.live }
