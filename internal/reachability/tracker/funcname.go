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

package tracker

import "go/types"

// FuncName identifies a function or method independent of a type checker run.
type FuncName struct {
	Path     string // Package path, empty for universe objects and unnamed receivers
	Receiver string // Receiver type name, empty for functions
	Name     string
}

// FuncNameOf returns the [FuncName] of a function or method.
func FuncNameOf(fun *types.Func) FuncName {
	recv := fun.Signature().Recv()
	if recv == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	typ := types.Unalias(recv.Type())
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}

	switch t := typ.(type) {
	case *types.Named:
		obj := t.Origin().Obj()

		var path string
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

// String formats the name like "(path.Receiver).Name".
func (f FuncName) String() string {
	switch {
	case f.Receiver != "" && f.Path != "":
		return "(" + f.Path + "." + f.Receiver + ")." + f.Name

	case f.Receiver != "":
		return "(" + f.Receiver + ")." + f.Name

	case f.Path != "":
		return f.Path + "." + f.Name

	default:
		return f.Name
	}
}
