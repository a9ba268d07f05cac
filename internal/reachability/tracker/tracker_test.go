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

package tracker_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/saneifelse/internal/reachability/tracker"
	"fillmore-labs.com/saneifelse/internal/testsource"
)

func TestEndsInTerminator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		exits bool
		want  bool
	}{
		{"return", `{ println(); return }`, false, true},
		{"panic", `{ panic("x") }`, false, true},
		{"goto", "{ goto L }\nL:", false, true},
		{"labeled return", `{ goto L; L: return }`, false, true},
		{"expression", `{ println() }`, true, false},
		{"empty", `{}`, true, false},
		{"trailing empty statement", `{ return; ; }`, false, true},
		{"exit", `{ os.Exit(1) }`, true, true},
		{"exit disabled", `{ os.Exit(1) }`, false, false},
		{"nested block", `{ { return } }`, false, false},
		{"for loop", `{ for {} }`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := "package test\n\nimport \"os\"\n\nfunc f() {\n_ = os.Args\n" + tt.src + "\n}\n"
			s := testsource.Load(t, src)
			fn, _ := s.Func(t, "f")

			var block *ast.BlockStmt
			for _, stmt := range fn.Body.List {
				if b, ok := stmt.(*ast.BlockStmt); ok {
					block = b
					break
				}
			}
			require.NotNil(t, block, "block not found")

			assert.Equal(t, tt.want, New(s.Info, tt.exits).EndsInTerminator(block))
		})
	}
}
