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

// UpdateKey changes the key of an existing entry in place without
// moving it to a new position in the container. oldKey must be
// present; newKey must preserve the container's ordering relative to
// the entry's current neighbors -- UpdateKey does not check this,
// since doing so would cost as much as the update itself, and a
// caller that violates it has broken the container's sortedness for
// itself.
//
// The walk from root to leaf reuses the same search that would locate
// oldKey, and at every internal level along the way rewrites that
// level's separator whenever it currently equals oldKey (the node
// found was this subtree's maximum) or newKey exceeds it (the update
// extends this subtree's maximum outward). Both conditions are tested
// with the one-sided Comparator on the way down, so no second, upward
// pass over the path is needed.
//
// Unlike Insert and Remove, UpdateKey never invalidates outstanding
// iterators: every block on the path keeps its identity and position,
// only key bytes change.
func (c *Container) UpdateKey(oldKey, newKey []byte) {
	newK := c.cloneKey(newKey)

	blk := c.head
	for {
		i := bsearch(blk, oldKey, c.compar)

		if blk.leaf {
			if i == blk.n || !keyEqual(c.compar, blk.nodes[i].key, oldKey) {
				panic("ordskl: UpdateKey called with a key not present in the container")
			}
			blk.nodes[i].key = newK
			return
		}

		if i == blk.n {
			panic("ordskl: UpdateKey called with a key not present in the container")
		}

		cur := blk.nodes[i].key
		if keyEqual(c.compar, cur, oldKey) || c.compar(cur, newK) {
			blk.nodes[i].key = newK
		}
		blk = blk.nodes[i].child
	}
}
