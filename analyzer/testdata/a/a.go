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

package a

import (
	"errors"
	"log"
	"os"
)

func void(b bool) {
	if b { // want "Then branch should be shorter then else branch"
		println(1)
		println(2)
	} else {
		println(3)
	}
}

func results(n int) int {
	if n > 0 { // want "Then branch should be shorter then else branch"
		n++
		return n
	} else {
		return 0
	}
}

func fatal(err error) {
	if err == nil { // want "Then branch should be shorter then else branch"
		println("ok")
		println("done")
	} else {
		log.Fatal(err)
	}
}

func invertOnly(b bool) int {
	if b { // want "Then branch should be shorter then else branch"
		println(1)
		println(2)
		return 1
	} else {
		for {
		}
	}
}

func chain(a, b bool) {
	if a {
		println(0)
	} else if b || len(os.Args) > 1 { // want "Then branch should be shorter then else branch"
		println(1)
		println(2)
	} else {
		println(3)
	}
}

func redeclared(b bool) {
	err := errors.New("e")
	if b { // want "Then branch should be shorter then else branch"
		err := errors.New("f")
		println(err.Error())
	} else {
		println(err.Error())
	}
}

func initScope() {
	if n := len(os.Args); n > 1 { // want "Then branch should be shorter then else branch"
		println(n)
		println(n)
	} else {
		println()
	}
}

func float(x float64) {
	if x < 1 { // want "Then branch should be shorter then else branch"
		println(1)
		println(2)
	} else {
		println(3)
	}
}

type T struct{ n int }

func (t *T) method() error {
	if t.n != 0 { // want "Then branch should be shorter then else branch"
		t.n--
		return nil
	} else {
		return errors.New("zero")
	}
}

func emptyElse(b bool) {
	if !b { // want "Then branch should be shorter then else branch"
		println(1)
	} else {
	}
}
