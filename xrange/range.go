// Package xrange
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

// Package xrange provides the Range key type and two reference
// comparators a caller plugs into ordskl.Container when its keys are
// half-open [Begin, End) ranges rather than bare scalars, such as
// stream byte ranges or packet number ranges. Both comparators are
// reference implementations: ordskl.Container has no notion of ranges
// itself, only of whatever Comparator it is configured with.
package xrange

import "encoding/binary"

// Len is the fixed encoded byte length of a Range key, suitable for
// ordskl.Config.KeyLen.
const Len = 16

// Range is a half-open interval [Begin, End) over a uint64 key space,
// such as stream byte offsets or packet numbers.
type Range struct {
	Begin uint64
	End   uint64
}

// Encode writes r into a freshly allocated Len-byte slice, the form
// ordskl.Container stores and compares.
func Encode(r Range) []byte {
	b := make([]byte, Len)
	binary.BigEndian.PutUint64(b[0:8], r.Begin)
	binary.BigEndian.PutUint64(b[8:16], r.End)
	return b
}

// Decode reads a Range back out of its Len-byte encoding. Panics if b
// is not exactly Len bytes long.
func Decode(b []byte) Range {
	if len(b) != Len {
		panic("xrange: key is not a valid encoded Range")
	}
	return Range{
		Begin: binary.BigEndian.Uint64(b[0:8]),
		End:   binary.BigEndian.Uint64(b[8:16]),
	}
}

func max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// Compare orders ranges strictly by Begin, treating any two ranges
// that share a Begin as equivalent under the container's one-sided
// comparator.
func Compare(a, b []byte) bool {
	ra, rb := Decode(a), Decode(b)
	return ra.Begin < rb.Begin
}

// ExclusiveCompare orders ranges by Begin like Compare, but
// additionally treats any two ranges that overlap as equivalent, so
// that looking a point range up against a set of covering ranges
// resolves to whichever stored range covers it. Two ranges overlap
// when max(a.Begin, b.Begin) < min(a.End, b.End).
func ExclusiveCompare(a, b []byte) bool {
	ra, rb := Decode(a), Decode(b)
	return ra.Begin < rb.Begin && !(max(ra.Begin, rb.Begin) < min(ra.End, rb.End))
}
