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

import "strings"

// SyntaxDecl is a syntax declaration:
//
//	syntax = "proto3";
type SyntaxDecl struct {
	node
	value Token
	level Level
}

// NewSyntaxDecl builds a syntax declaration from its children. The first
// child must be the `syntax` keyword. The syntax level is derived from the
// first string literal child, which may be a missing token.
func NewSyntaxDecl(children []Element) *SyntaxDecl {
	d := &SyntaxDecl{node: node{children: children}}
	for _, child := range children {
		if tok, ok := child.(Token); ok && tok.Kind() == StringLiteral {
			d.value = tok
			break
		}
	}

	switch {
	case d.value.IsZero() || d.value.IsMissing():
		d.level = LevelMissing
	default:
		level, ok := ParseLevel(d.value.Text())
		if !ok {
			level = LevelProto2
		}
		d.level = level
	}
	return d
}

func (*SyntaxDecl) NodeKind() NodeKind { return NodeSyntax }

// Keyword returns the `syntax` keyword.
func (d *SyntaxDecl) Keyword() Token { return d.tokenAt(0) }

// Value returns the string literal naming the syntax level. It is zero if
// the declaration ended before the literal, and missing if the literal was
// absent.
func (d *SyntaxDecl) Value() Token { return d.value }

// Level returns the declared syntax level. Unsupported values are treated
// as proto2.
func (d *SyntaxDecl) Level() Level { return d.level }

// PackageDecl is a package declaration:
//
//	package foo.bar.baz;
type PackageDecl struct {
	node
}

// NewPackageDecl builds a package declaration from its children. The first
// child must be the `package` keyword.
func NewPackageDecl(children []Element) *PackageDecl {
	return &PackageDecl{node: node{children: children}}
}

func (*PackageDecl) NodeKind() NodeKind { return NodePackage }

// Keyword returns the `package` keyword.
func (d *PackageDecl) Keyword() Token { return d.tokenAt(0) }

// Name returns the dotted package name. Missing components are omitted.
func (d *PackageDecl) Name() string {
	if len(d.children) < 2 {
		return ""
	}
	return dottedName(d.children[1:])
}

// ServiceDecl is a service declaration:
//
//	service Foo {
//	  rpc Bar(Baz) returns (Qux);
//	}
type ServiceDecl struct {
	node
}

// NewServiceDecl builds a service declaration from its children. The first
// child must be the `service` keyword; method declarations appear as nested
// nodes.
func NewServiceDecl(children []Element) *ServiceDecl {
	return &ServiceDecl{node: node{children: children}}
}

func (*ServiceDecl) NodeKind() NodeKind { return NodeService }

// Keyword returns the `service` keyword.
func (d *ServiceDecl) Keyword() Token { return d.tokenAt(0) }

// NameToken returns the service's name, which may be a missing token.
func (d *ServiceDecl) NameToken() Token { return d.tokenAt(1) }

// Name returns the service's name, or "" if it is missing.
func (d *ServiceDecl) Name() string {
	if tok := d.NameToken(); tok.IsNatural() && isName(tok) {
		return tok.Text()
	}
	return ""
}

// Methods returns the methods declared in the service body.
func (d *ServiceDecl) Methods() []*MethodDecl {
	var methods []*MethodDecl
	for _, child := range d.children {
		if m, ok := child.(*MethodDecl); ok {
			methods = append(methods, m)
		}
	}
	return methods
}

// MethodDecl is an rpc declaration inside a service body.
type MethodDecl struct {
	node

	input, output                    string
	clientStreaming, serverStreaming bool
}

// NewMethodDecl builds a method declaration from its children. The first
// child must be the `rpc` keyword, followed by the name and the parenthesized
// input and output types.
func NewMethodDecl(children []Element) *MethodDecl {
	d := &MethodDecl{node: node{children: children}}

	var groups [][]Token
	var group []Token
	open := false
	for _, child := range children {
		tok, ok := child.(Token)
		if !ok || tok.IsSkipped() {
			continue
		}
		switch {
		case tok.Kind() == LeftParen && !open:
			open = true
			group = nil
		case tok.Kind() == RightParen && open:
			open = false
			groups = append(groups, group)
		case open:
			group = append(group, tok)
		}
	}
	if open {
		groups = append(groups, group)
	}

	if len(groups) > 0 {
		d.input, d.clientStreaming = typeName(groups[0])
	}
	if len(groups) > 1 {
		d.output, d.serverStreaming = typeName(groups[1])
	}
	return d
}

func (*MethodDecl) NodeKind() NodeKind { return NodeMethod }

// Keyword returns the `rpc` keyword.
func (d *MethodDecl) Keyword() Token { return d.tokenAt(0) }

// NameToken returns the method's name, which may be a missing token.
func (d *MethodDecl) NameToken() Token { return d.tokenAt(1) }

// Name returns the method's name, or "" if it is missing.
func (d *MethodDecl) Name() string {
	if tok := d.NameToken(); tok.IsNatural() && isName(tok) {
		return tok.Text()
	}
	return ""
}

// Input returns the request type name as written.
func (d *MethodDecl) Input() string { return d.input }

// Output returns the response type name as written.
func (d *MethodDecl) Output() string { return d.output }

// ClientStreaming returns whether the request type is marked `stream`.
func (d *MethodDecl) ClientStreaming() bool { return d.clientStreaming }

// ServerStreaming returns whether the response type is marked `stream`.
func (d *MethodDecl) ServerStreaming() bool { return d.serverStreaming }

// EmptyDecl is a lone `;`.
type EmptyDecl struct {
	node
}

// NewEmptyDecl builds an empty declaration.
func NewEmptyDecl(children []Element) *EmptyDecl {
	return &EmptyDecl{node: node{children: children}}
}

func (*EmptyDecl) NodeKind() NodeKind { return NodeEmpty }

// UnknownDecl is a declaration the parser does not support or could not
// recognize, kept verbatim as skipped tokens.
type UnknownDecl struct {
	node
}

// NewUnknownDecl wraps skipped, which must be a skipped token.
func NewUnknownDecl(skipped Token) *UnknownDecl {
	return &UnknownDecl{node: node{children: []Element{skipped}}}
}

func (*UnknownDecl) NodeKind() NodeKind { return NodeUnknown }

// Leader returns the first token of the declaration, which determined how
// it was recovered.
func (d *UnknownDecl) Leader() Token {
	skipped := d.tokenAt(0).Skipped()
	if len(skipped) == 0 {
		return Token{}
	}
	return skipped[0]
}

// dottedName joins the natural name tokens among elems with dots, stopping
// at the first token that cannot be part of a dotted name.
func dottedName(elems []Element) string {
	var parts []string
	for _, child := range elems {
		tok, ok := child.(Token)
		if !ok || tok.IsSkipped() {
			break
		}
		switch {
		case tok.Kind() == Dot:
		case isName(tok):
			if tok.IsNatural() {
				parts = append(parts, tok.Text())
			}
		default:
			return strings.Join(parts, ".")
		}
	}
	return strings.Join(parts, ".")
}

// typeName renders the tokens between the parentheses of a method signature.
func typeName(group []Token) (name string, streaming bool) {
	if len(group) > 1 && group[0].Kind() == Stream && group[0].IsNatural() {
		streaming = true
		group = group[1:]
	}

	var b strings.Builder
	for _, tok := range group {
		if tok.IsNatural() && (tok.Kind() == Dot || isName(tok)) {
			b.WriteString(tok.Text())
		}
	}
	return b.String(), streaming
}
