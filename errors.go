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

import "errors"

// ErrOutOfMemory is the single error Insert (and New, which allocates
// the initial root block) can return. Every other mutating or
// read-only operation is infallible given its documented
// preconditions; violating a precondition panics instead of returning
// an error, since it is a programmer error rather than a runtime
// condition a caller can recover from.
var ErrOutOfMemory = errors.New("ordskl: out of memory")
