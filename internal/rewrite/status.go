// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package rewrite

// FixStatus indicates how far a [Candidate] could be rewritten.
type FixStatus uint8

//go:generate go tool stringer -type FixStatus -linecomment
const (
	// FixComplete indicates the condition was inverted, the new then-branch terminates
	// and the former then-branch was unwrapped.
	FixComplete FixStatus = iota // fix

	// FixInvertOnly indicates the branches were swapped, but the new then-branch does not
	// terminate and the function has results, so no return statement can be added.
	FixInvertOnly // inv

	// FixScopeConflict indicates the branches were swapped, but unwrapping the else-branch
	// would redeclare a name or lose access to a name declared in an if-statement initializer.
	FixScopeConflict // scp

	// FixShapeMismatch indicates the if-statement no longer has the expected shape or the
	// source is not available. No edits are produced.
	FixShapeMismatch // shp
)

// Unwrapped reports whether the former then-branch has been moved after the if-statement.
func (i FixStatus) Unwrapped() bool { return i == FixComplete }
