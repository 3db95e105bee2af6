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
	"fmt"
	"io"
	"iter"
	"strings"
)

// Element is a child of a [Node]: either a [Token] or a nested Node.
type Element interface {
	// WriteSource writes the exact source text of the element to w.
	WriteSource(w io.StringWriter)

	element()
}

// NodeKind identifies the production a [Node] was built from.
type NodeKind byte

const (
	NodeSyntax NodeKind = iota + 1
	NodePackage
	NodeService
	NodeMethod
	NodeEmpty
	NodeUnknown
)

// String implements [fmt.Stringer].
func (k NodeKind) String() string {
	switch k {
	case NodeSyntax:
		return "syntax declaration"
	case NodePackage:
		return "package declaration"
	case NodeService:
		return "service declaration"
	case NodeMethod:
		return "method declaration"
	case NodeEmpty:
		return "empty declaration"
	case NodeUnknown:
		return "unknown declaration"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// Node is a completed, possibly error-recovered, grammar production.
type Node interface {
	Element

	// NodeKind returns which production this node came from.
	NodeKind() NodeKind
	// Children returns this node's tokens and nested nodes, in source order.
	Children() []Element
	// Tokens returns every token in this node, descending into nested nodes.
	// Skipped tokens are yielded as a single token.
	Tokens() iter.Seq[Token]
	// Source returns the exact source text of this node.
	Source() string
	// Span returns the byte range this node accounts for, trivia included.
	Span() Span
}

// Span is a half-open range of byte offsets.
type Span struct {
	Start, End int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns whether offset lies within the span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// node holds the state common to every Node implementation.
type node struct {
	children []Element
}

func (n *node) Children() []Element {
	return n.children
}

func (n *node) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, child := range n.children {
			switch child := child.(type) {
			case Token:
				if !yield(child) {
					return
				}
			case Node:
				for tok := range child.Tokens() {
					if !yield(tok) {
						return
					}
				}
			}
		}
	}
}

func (n *node) WriteSource(w io.StringWriter) {
	for _, child := range n.children {
		child.WriteSource(w)
	}
}

func (n *node) Source() string {
	var b strings.Builder
	n.WriteSource(&b)
	return b.String()
}

func (n *node) Span() Span {
	var span Span
	first := true
	for tok := range n.Tokens() {
		if first {
			span.Start = tok.Start()
			span.End = span.Start
			first = false
		}
		span.End += tok.Len()
	}
	return span
}

// tokenAt returns the i-th child if it is a token.
func (n *node) tokenAt(i int) Token {
	if i < 0 || i >= len(n.children) {
		return Token{}
	}
	tok, _ := n.children[i].(Token)
	return tok
}

func (*node) element() {}

// isName returns whether tok can serve as an identifier. Keywords are
// contextual, so they are accepted too.
func isName(tok Token) bool {
	return tok.Kind() == Identifier || tok.Kind().IsKeyword()
}
