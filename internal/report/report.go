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

// Package report turns detected candidates into diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/saneifelse/internal/astutil"
	"fillmore-labs.com/saneifelse/internal/detect"
	"fillmore-labs.com/saneifelse/internal/rewrite"
)

// FixMessage describes the suggested fix.
const FixMessage = "Invert if"

// Candidates reports a diagnostic for every candidate.
//
// A suggested fix is attached when the rewriter produced edits. Generated files
// are reported without fixes.
func Candidates(ctx context.Context, p *analysis.Pass, file astutil.CurrentFile, candidates []detect.Candidate, r rewrite.Rewriter) {
	if len(candidates) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, c := range candidates {
		stmt := c.IfStmt()

		diagnostic := analysis.Diagnostic{
			Pos:     stmt.Pos(),
			End:     stmt.End(),
			Message: detect.Message,
		}

		if anchor := c.Anchor.Node(); anchor != stmt {
			diagnostic.Related = []analysis.RelatedInformation{{Pos: anchor.Pos(), Message: "In this if-else chain"}}
		}

		if !file.Generated() {
			result := r.Apply(c)
			trace.Logf(ctx, "fix", "%s %s", file.Name(), result.Status)

			if len(result.Edits) > 0 {
				diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: FixMessage, TextEdits: result.Edits}}
			}
		}

		p.Report(diagnostic)
	}
}
