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

// Package ordskl implements an ordered associative container shaped for
// QUIC/HTTP3-style workloads: small-to-medium collections of fixed-size
// keys (stream IDs, byte ranges, packet numbers) that need fast point
// lookup, ordered range iteration, insertion, deletion, and in-place key
// updates.
//
// The container is a B+-tree-shaped "keyed skip list": every key lives
// in a leaf block, leaves are chained bidirectionally for O(1) in-order
// traversal, and internal blocks hold separators equal to the maximum
// key of the subtree they point at. Splitting and merging happen
// proactively on the way down during Insert and Remove, so no second,
// upward-propagating pass is ever required.
//
// The container is single-threaded; callers must serialize their own
// access. It does not support duplicate keys, persistence, or any
// heuristic balancing beyond block occupancy.
package ordskl
