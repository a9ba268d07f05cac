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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// saneifelse is the name of the linter.
const saneifelse = "saneifelse"

// CurrentFile holds file information and source text for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	content   []byte
	generated bool
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet], an *[ast.File] and its source.
// The content may be nil when the source is not available; detection still works, but no fixes are
// generated.
func NewCurrentFile(fset *token.FileSet, file *ast.File, content []byte) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	if len(content) != handle.Size() {
		content = nil // stale or missing source
	}

	generated := ast.IsGenerated(file)

	return CurrentFile{file, handle, content, generated}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// HasSource returns true if the source text of the file is available.
func (c CurrentFile) HasSource() bool {
	return c.content != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Name returns the file name.
func (c CurrentFile) Name() string {
	return c.handle.Name()
}

// Lines returns the number of lines a node spans, as authored.
func (c CurrentFile) Lines(n ast.Node) int {
	return c.Line(n.End()) - c.Line(n.Pos()) + 1
}

// Line returns the line number of pos.
func (c CurrentFile) Line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// Text returns the source text between pos and end.
func (c CurrentFile) Text(pos, end token.Pos) []byte {
	return c.content[c.handle.Offset(pos):c.handle.Offset(end)]
}

// NodeText returns the source text of a node.
func (c CurrentFile) NodeText(n ast.Node) []byte {
	return c.Text(n.Pos(), n.End())
}

// LineStart returns the position of the first character on the line of pos.
func (c CurrentFile) LineStart(pos token.Pos) token.Pos {
	return c.handle.LineStart(c.Line(pos))
}

// Indent returns the leading white space of the line containing pos.
func (c CurrentFile) Indent(pos token.Pos) []byte {
	line := c.content[c.handle.Offset(c.LineStart(pos)):]
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}

	return line[:n]
}

// StartsLine reports whether only white space precedes pos on its line.
func (c CurrentFile) StartsLine(pos token.Pos) bool {
	return len(strings.TrimLeft(string(c.Text(c.LineStart(pos), pos)), " \t")) == 0
}

// NoLintComment checks if a line is followed by a //nolint:saneifelse comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after the position
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.Line(comment.Pos()) != c.Line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:saneifelse` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == saneifelse || l == "all" {
			return true
		}
	}

	return false
}

// DocHasNoLint checks whether the last line of a doc comment is a nolint directive.
func DocHasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && CommentHasNoLint(doc.List[len(doc.List)-1])
}
