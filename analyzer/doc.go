// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the saneifelse static analysis pass.
//
// # Overview
//
// saneifelse reports an if-else statement at the end of a function when its
// then-branch spans more lines than its else-branch. The long branch is better
// written as the fall-through path of the function, after an early exit.
//
// # Example
//
// Before:
//
//	func process(data []byte) {
//	    if len(data) > 0 {
//	        parse(data)
//	        store(data)
//	    } else {
//	        log.Print("no data")
//	    }
//	}
//
// After applying saneifelse's suggested fix:
//
//	func process(data []byte) {
//	    if len(data) <= 0 {
//	        log.Print("no data")
//	        return
//	    }
//	    parse(data)
//	    store(data)
//	}
//
// # Fix Steps
//
//   - The condition is inverted and the branches are swapped.
//   - A return statement is added to the new then-branch when it does not already end
//     in a return, goto, panic or a call that never returns. Functions with results
//     keep their else-branch in this case.
//   - The else-branch is removed and its statements follow the if-statement. In an
//     else-if chain, earlier branches of a function without results get a return, too.
//
// The last step is skipped when it would redeclare a variable of the function or
// when the moved statements use a variable declared in an if-statement initializer.
package analyzer
