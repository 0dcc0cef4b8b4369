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

// splitBlk splits blk into two blocks, moving the upper half of blk's
// nodes into a freshly allocated right sibling. The new block is
// spliced into the prev/next chain at blk's position and back is
// updated if blk was the tail. Both resulting blocks end up with
// occupancy >= MinBlockNodes by construction, since splitBlk is only
// ever called on a full (MaxBlockNodes) block.
func (c *Container) splitBlk(blk *Block) (*Block, error) {
	rblk, err := c.alloc.Alloc()
	if err != nil {
		return nil, err
	}

	rblk.leaf = blk.leaf
	rblk.next = blk.next
	blk.next = rblk
	if rblk.next != nil {
		rblk.next.prev = rblk
	} else if c.back == blk {
		c.back = rblk
	}
	rblk.prev = blk

	rblk.n = blk.n / 2
	copy(rblk.nodes[:rblk.n], blk.nodes[blk.n-rblk.n:blk.n])
	for i := blk.n - rblk.n; i < blk.n; i++ {
		blk.nodes[i] = node{}
	}
	blk.n -= rblk.n

	return rblk, nil
}

// splitNode splits the child referenced by the node at index i of
// blk into two adjacent children. The new right child is always
// inserted at i+1; the separators at i and i+1 are refreshed to the
// new maxima of the left and right halves.
func (c *Container) splitNode(blk *Block, i int) error {
	lblk := blk.nodes[i].child

	rblk, err := c.splitBlk(lblk)
	if err != nil {
		return err
	}

	copy(blk.nodes[i+2:blk.n+1], blk.nodes[i+1:blk.n])
	blk.n++

	blk.nodes[i+1] = node{key: maxKey(rblk), child: rblk}
	blk.nodes[i].key = maxKey(lblk)

	return nil
}

// splitHead splits the root block in place and installs a fresh
// two-child internal root above it, increasing the container's height
// by one. The new root is allocated before the split is attempted, so
// that a failing allocation leaves the container completely
// unmodified rather than requiring the split itself to be unwound.
func (c *Container) splitHead() error {
	nhead, err := c.alloc.Alloc()
	if err != nil {
		return err
	}

	rblk, err := c.splitBlk(c.head)
	if err != nil {
		c.alloc.Free(nhead)
		return err
	}

	lblk := c.head
	nhead.leaf = false
	nhead.n = 2
	nhead.nodes[0] = node{key: maxKey(lblk), child: lblk}
	nhead.nodes[1] = node{key: maxKey(rblk), child: rblk}
	c.head = nhead

	return nil
}

// Insert places a new (key, data) pair into the container. key must
// not already be present -- the comparator defines a strict weak
// order and duplicate keys are unsupported, so inserting one yields
// undefined placement rather than an error. On success the returned
// Iterator points at the inserted element; on ErrOutOfMemory the key
// is not added, Len is unchanged, and every invariant still holds --
// a split higher up the path that had already succeeded before a
// deeper one failed is not unwound, since it left the tree in a
// perfectly valid, merely roomier state, and unwinding it would cost
// another allocation that might fail too.
//
// Insert proactively splits any full block it is about to descend
// into, on the way down, so that by the time the leaf is reached every
// ancestor already has a free slot and no upward propagation is ever
// needed.
func (c *Container) Insert(key []byte, data interface{}) (Iterator, error) {
	k := c.cloneKey(key)

	blk := c.head
	if blk.n == MaxBlockNodes {
		if err := c.splitHead(); err != nil {
			return Iterator{}, err
		}
		blk = c.head
	}

	for {
		i := bsearch(blk, k, c.compar)

		if blk.leaf {
			insertNode(blk, i, k, data, nil)
			c.n++
			return Iterator{blk: blk, i: i}, nil
		}

		if i == blk.n {
			// The new key exceeds every separator in blk: it extends
			// the maximum of this entire subtree. Walk the rightmost
			// spine down to the leaf, splitting as we go; the
			// separators along it are bumped to the new key only once
			// every split has succeeded, so a failed split leaves them
			// unchanged.
			var spine []*node
			for !blk.leaf {
				ci := blk.n - 1
				if blk.nodes[ci].child.n == MaxBlockNodes {
					if err := c.splitNode(blk, ci); err != nil {
						return Iterator{}, err
					}
					ci = blk.n - 1
				}
				spine = append(spine, &blk.nodes[ci])
				blk = blk.nodes[ci].child
			}
			for _, nd := range spine {
				nd.key = k
			}
			insertNode(blk, blk.n, k, data, nil)
			c.n++
			return Iterator{blk: blk, i: blk.n - 1}, nil
		}

		if blk.nodes[i].child.n == MaxBlockNodes {
			if err := c.splitNode(blk, i); err != nil {
				return Iterator{}, err
			}
			if c.compar(blk.nodes[i].key, k) {
				i++
				if c.compar(blk.nodes[i].key, k) {
					blk.nodes[i].key = k
				}
			}
		}

		blk = blk.nodes[i].child
	}
}
