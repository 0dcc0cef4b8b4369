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

// CheckInvariants walks the block tree and reports every violation of
// the container's structural invariants it finds: block occupancy
// bounds, uniform leaf depth, separator-equals-subtree-max, strictly
// increasing keys within a block, and leaf sibling-chain consistency.
// It exists for the property-based test suite (see ordskl/ksltest) --
// nothing in the container's own operations calls it, since walking
// the whole tree to audit it has no business running on a hot path.
// It is exported rather than living behind a build tag so that tests
// outside this package can drive it directly.
func (c *Container) CheckInvariants() []string {
	var errs []string
	note := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	depth := -1
	leafCount := 0
	var walk func(b *Block, isRoot bool, d int)
	walk = func(b *Block, isRoot bool, d int) {
		if b.leaf {
			leafCount++
			if depth == -1 {
				depth = d
			} else if depth != d {
				note("invariant 2 violated: leaf at depth %d, expected %d", d, depth)
			}
		}
		if !isRoot {
			if b.n < MinBlockNodes || b.n > MaxBlockNodes {
				note("invariant 1 violated: non-root block has n=%d, want [%d,%d]", b.n, MinBlockNodes, MaxBlockNodes)
			}
		} else if !b.leaf && b.n < 2 {
			note("invariant 7 violated: internal root has n=%d, want >= 2", b.n)
		}

		for i := 0; i < b.n; i++ {
			if i > 0 && !c.compar(b.nodes[i-1].key, b.nodes[i].key) {
				note("invariant 4 violated: keys at %d,%d not strictly increasing", i-1, i)
			}
			if !b.leaf {
				child := b.nodes[i].child
				if child == nil {
					note("invariant 3 violated: internal node %d has nil child", i)
					continue
				}
				if !keyEqual(c.compar, maxKey(child), b.nodes[i].key) {
					note("invariant 3 violated: separator %d does not equal child subtree max", i)
				}
				walk(child, false, d+1)
			}
		}
	}
	walk(c.head, true, 0)

	if c.head.leaf && depth != 0 {
		note("invariant 7 violated: leaf root not at depth 0")
	}

	total, seen := 0, 0
	for b := c.front; b != nil; b = b.next {
		if b.prev != nil && b.prev.next != b {
			note("invariant 6 violated: sibling chain broken around a leaf")
		}
		total += b.n
		seen++
		if seen > leafCount {
			note("invariant 6 violated: sibling chain visits more blocks than the tree has leaves, possible cycle")
			break
		}
	}
	if total != c.n {
		note("invariant 6 violated: sum of leaf occupancy %d != container n %d", total, c.n)
	}
	if seen != leafCount {
		note("invariant 6 violated: sibling chain visited %d leaves, tree has %d", seen, leafCount)
	}

	if c.back != nil {
		b := c.back
		for b.next != nil {
			b = b.next
		}
		if b != c.back {
			note("invariant 6 violated: back is not reachable to the tail via next")
		}
	}
	if c.front != nil {
		b := c.front
		for b.prev != nil {
			b = b.prev
		}
		if b != c.front {
			note("invariant 6 violated: front is not reachable to the head via prev")
		}
	}

	return errs
}
