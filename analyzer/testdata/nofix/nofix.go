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

package nofix

func tie(b bool) {
	if b {
		println(1)
	} else {
		println(2)
	}
}

func elseLonger(b bool) {
	if b {
		println(1)
	} else {
		println(2)
		println(3)
	}
}

func notLast(b bool) {
	if b {
		println(1)
		println(2)
	} else {
		println(3)
	}
	println(4)
}

func plainIf(b bool) {
	if b {
		println(1)
		println(2)
	}
}

func elseIf(a, b bool) {
	if a {
		println(1)
		println(2)
		println(3)
	} else if b {
		println(4)
	}
}

func loop(b bool) {
	for range 3 {
		if b {
			println(1)
			println(2)
		} else {
			println(3)
		}
	}
}

func literal() {
	f := func(b bool) {
		if b {
			println(1)
			println(2)
		} else {
			println(3)
		}
	}
	f(true)
}

//nolint:saneifelse
func suppressed(b bool) {
	if b {
		println(1)
		println(2)
	} else {
		println(3)
	}
}

func lineSuppressed(b bool) {
	if b { //nolint:saneifelse
		println(1)
		println(2)
	} else {
		println(3)
	}
}

func sameLine(b bool) {
	if b { println(1); println(2) } else { println(3) }
}
