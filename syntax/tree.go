// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"io"
	"iter"
	"strings"

	"github.com/bufbuild/protosyntax/internal/interval"
)

// utf8Bom is the text of a UTF-8 byte order mark.
const utf8Bom = "\xEF\xBB\xBF"

// Tree is the root of a parsed file: its declarations in source order.
//
// A Tree is immutable once built. It does not reference the buffer it was
// parsed from.
type Tree struct {
	path  string
	bom   bool
	decls []Node
	eof   Token

	index interval.Index[int, Node]
}

// Builder constructs a [Tree]. Declarations may only be appended.
type Builder struct {
	tree *Tree
}

// NewBuilder starts a tree for the file at path. bom records whether the file
// began with a byte order mark, which is not part of any token.
func NewBuilder(path string, bom bool) *Builder {
	return &Builder{tree: &Tree{path: path, bom: bom}}
}

// Append adds a declaration to the end of the tree.
func (b *Builder) Append(n Node) {
	b.tree.decls = append(b.tree.decls, n)
	if span := n.Span(); span.Len() > 0 {
		b.tree.index.Insert(span.Start, span.End-1, n)
	}
}

// Finish completes the tree. eof is the terminal end-of-file token, which
// carries any trivia after the last declaration; it is zero if the parse
// ended inside a declaration.
func (b *Builder) Finish(eof Token) *Tree {
	t := b.tree
	t.eof = eof
	b.tree = nil
	return t
}

// Path returns the path the file was parsed under.
func (t *Tree) Path() string {
	return t.path
}

// HasByteOrderMark returns whether the file began with a UTF-8 byte order
// mark.
func (t *Tree) HasByteOrderMark() bool {
	return t.bom
}

// Decls returns the top-level declarations.
func (t *Tree) Decls() []Node {
	return t.decls
}

// EOF returns the terminal end-of-file token. It is zero if the parse ended
// inside a declaration, in which case the end-of-file token is the last
// token of that declaration.
func (t *Tree) EOF() Token {
	return t.eof
}

// Tokens returns every token in the tree, in source order.
func (t *Tree) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, decl := range t.decls {
			for tok := range decl.Tokens() {
				if !yield(tok) {
					return
				}
			}
		}
		if !t.eof.IsZero() {
			yield(t.eof)
		}
	}
}

// WriteSource writes the exact text the tree was parsed from to w.
func (t *Tree) WriteSource(w io.StringWriter) {
	if t.bom {
		_, _ = w.WriteString(utf8Bom)
	}
	for _, decl := range t.decls {
		decl.WriteSource(w)
	}
	t.eof.WriteSource(w)
}

// Source reconstructs the exact text the tree was parsed from.
func (t *Tree) Source() string {
	var b strings.Builder
	t.WriteSource(&b)
	return b.String()
}

// Syntax returns the first syntax declaration, if any.
func (t *Tree) Syntax() *SyntaxDecl {
	return first[*SyntaxDecl](t.decls)
}

// Package returns the first package declaration, if any.
func (t *Tree) Package() *PackageDecl {
	return first[*PackageDecl](t.decls)
}

// Services returns every service declaration.
func (t *Tree) Services() []*ServiceDecl {
	var services []*ServiceDecl
	for _, decl := range t.decls {
		if s, ok := decl.(*ServiceDecl); ok {
			services = append(services, s)
		}
	}
	return services
}

// Level returns the file's syntax level. A file with no syntax declaration
// is proto2.
func (t *Tree) Level() Level {
	if decl := t.Syntax(); decl != nil {
		return decl.Level()
	}
	return LevelProto2
}

// DeclarationAt returns the top-level declaration whose span contains the
// given byte offset, or nil. Leading trivia, such as a comment above a
// declaration, belongs to that declaration.
func (t *Tree) DeclarationAt(offset int) Node {
	e, ok := t.index.Get(offset)
	if !ok {
		return nil
	}
	return e.Value
}

func first[N Node](decls []Node) N {
	for _, decl := range decls {
		if n, ok := decl.(N); ok {
			return n
		}
	}
	var zero N
	return zero
}
