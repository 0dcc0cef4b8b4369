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
package blockpool

import "github.com/ordskl/ordskl"

// Failing is an ordskl.Allocator that fails its n'th call to Alloc
// (1-indexed) and every call thereafter, succeeding on every call
// before that. It exists to deterministically exercise Insert's
// out-of-memory handling -- a real pool allocator rarely fails
// predictably enough to drive that path in a test.
type Failing struct {
	n     int
	calls int
	pool  Pool
}

// NewFailing returns a Failing allocator whose n'th Alloc call (and
// every subsequent one) returns ordskl.ErrOutOfMemory.
func NewFailing(n int) *Failing {
	return &Failing{n: n}
}

// Alloc implements ordskl.Allocator.
func (f *Failing) Alloc() (*ordskl.Block, error) {
	f.calls++
	if f.calls >= f.n {
		return nil, ordskl.ErrOutOfMemory
	}
	return f.pool.Alloc()
}

// Free implements ordskl.Allocator.
func (f *Failing) Free(b *ordskl.Block) { f.pool.Free(b) }

// Calls reports how many times Alloc has been called so far.
func (f *Failing) Calls() int { return f.calls }
