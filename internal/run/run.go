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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/saneifelse/internal/astutil"
	"fillmore-labs.com/saneifelse/internal/config"
	"fillmore-labs.com/saneifelse/internal/detect"
	"fillmore-labs.com/saneifelse/internal/reachability/tracker"
	"fillmore-labs.com/saneifelse/internal/report"
	"fillmore-labs.com/saneifelse/internal/rewrite"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the saneifelse analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("saneifelse: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "SaneIfElse")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	t := tracker.New(p.TypesInfo, r.Behavior.Enabled(config.ExitCalls))

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file, readFile(p, file))
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		d := detect.New(currentFile)
		rw := rewrite.New(currentFile, p.TypesInfo, t)

		// Loop over all function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			// Skip functions with nolint comment
			if astutil.DocHasNoLint(fun.Doc) {
				continue
			}

			body := c.ChildAt(edge.FuncDecl_Body, -1)

			// Stage 1: Find the trailing if/else statements with a longer then-branch
			candidates := scan(ctx, d, body)

			// Stage 2: Generate diagnostics with suggested fixes
			report.Candidates(ctx, p, currentFile, candidates, rw)
		}
	}

	return nil, nil
}

// scan detects candidates in a function body.
func scan(ctx context.Context, d detect.Detector, body inspector.Cursor) []detect.Candidate {
	defer trace.StartRegion(ctx, "Detect").End()

	return d.ScanAll(body)
}

// readFile returns the source of file, or nil when it is not available.
func readFile(p *analysis.Pass, file *ast.File) []byte {
	tf := p.Fset.File(file.FileStart)
	if tf == nil {
		return nil
	}

	read := p.ReadFile
	if read == nil {
		read = os.ReadFile
	}

	content, err := read(tf.Name())
	if err != nil {
		return nil
	}

	return content
}
