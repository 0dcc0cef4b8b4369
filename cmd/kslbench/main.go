// Package main
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

// Command kslbench drives an ordskl.Container with a synthetic
// QUIC/HTTP3-shaped workload -- a churn of stream-byte-range keys --
// and reports how long insertion, lookup and removal took. It is a
// reference driver, not a benchmarking framework: it exists to give
// the container a realistic caller the way a production repo in this
// space would, not to replace `go test -bench`.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/ordskl/ordskl"
	"github.com/ordskl/ordskl/blockpool"
	"github.com/ordskl/ordskl/xrange"
)

func main() {
	count := flag.Int("n", 100000, "number of stream ranges to insert")
	span := flag.Uint64("span", 1400, "byte span of each synthetic range")
	seed := flag.Int64("seed", 1, "PRNG seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	pool := blockpool.NewUnbounded()
	c, err := ordskl.New(ordskl.Config{
		Compar:    xrange.Compare,
		KeyLen:    xrange.Len,
		Allocator: pool,
	})
	if err != nil {
		log.Fatalf("kslbench: creating container: %v", err)
	}

	begins := make([]uint64, *count)
	for i := range begins {
		begins[i] = uint64(i) * *span
	}
	rng.Shuffle(len(begins), func(i, j int) { begins[i], begins[j] = begins[j], begins[i] })

	start := time.Now()
	for _, b := range begins {
		r := xrange.Range{Begin: b, End: b + *span}
		if _, err := c.Insert(xrange.Encode(r), r); err != nil {
			log.Fatalf("kslbench: insert: %v", err)
		}
	}
	insertDur := time.Since(start)

	start = time.Now()
	hits := 0
	for _, b := range begins {
		probe := xrange.Encode(xrange.Range{Begin: b, End: b})
		it := c.LowerBound(probe)
		if !it.AtEnd() {
			hits++
		}
	}
	lookupDur := time.Since(start)

	start = time.Now()
	for _, b := range begins {
		c.Remove(xrange.Encode(xrange.Range{Begin: b, End: b + *span}))
	}
	removeDur := time.Since(start)

	log.Printf("inserted %d ranges in %v (%v/op)", *count, insertDur, insertDur/time.Duration(*count))
	log.Printf("looked up %d ranges in %v, %d hits (%v/op)", *count, lookupDur, hits, lookupDur/time.Duration(*count))
	log.Printf("removed %d ranges in %v (%v/op)", *count, removeDur, removeDur/time.Duration(*count))
	log.Printf("final container length: %d, live blocks: %d", c.Len(), pool.Live())
}
