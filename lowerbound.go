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

// LowerBound returns an iterator at the first key not less than key,
// or End() if every key in the container is less than key. It runs in
// O(log n) by following, at each level, the first separator whose
// subtree maximum is not less than key -- by invariant 3 that subtree
// is the only place the answer can live.
func (c *Container) LowerBound(key []byte) Iterator {
	return c.lowerBound(c.compar, key)
}

// LowerBoundFunc is LowerBound generalized to a caller-supplied
// comparator rather than the container's own. This is what lets a
// caller look up a key-space position using a different notion of
// order than strict key equality -- for example locating where a
// Range begins or ends among the stored keys, via xrange.Compare or
// xrange.ExclusiveCompare, without the container needing to know
// anything about ranges itself. compar must still agree with the
// container's own ordering on the keys actually stored, or the result
// is meaningless.
func (c *Container) LowerBoundFunc(compar Comparator, key []byte) Iterator {
	return c.lowerBound(compar, key)
}

func (c *Container) lowerBound(compar Comparator, key []byte) Iterator {
	blk := c.head
	for !blk.leaf {
		i := bsearch(blk, key, compar)
		if i == blk.n {
			return Iterator{blk: c.back, i: c.back.n}
		}
		blk = blk.nodes[i].child
	}

	i := bsearch(blk, key, compar)
	if i == blk.n {
		return Iterator{blk: c.back, i: c.back.n}
	}
	return Iterator{blk: blk, i: i}
}
