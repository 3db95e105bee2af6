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

package parser

import (
	"github.com/bufbuild/protosyntax/syntax"
)

// production accumulates the children of the node being parsed.
type production struct {
	p        *parser
	kind     syntax.NodeKind
	children []syntax.Element
}

// start begins a production, consuming its leading keyword.
func (p *parser) start(kind syntax.NodeKind) *production {
	return &production{p: p, kind: kind, children: []syntax.Element{p.consume()}}
}

func (d *production) add(elem syntax.Element) {
	d.children = append(d.children, elem)
}

// expect appends the next token if it is of kind want, or a missing token in
// its place otherwise. It returns false if the file ended instead, in which
// case the production must return at once.
func (d *production) expect(want syntax.Kind) bool {
	tok := d.p.peek()
	switch {
	case d.p.accepts(tok, want):
		d.add(d.p.consume())
	case tok.Kind() == syntax.EndOfFile:
		d.add(d.p.unexpectedEOF(want, d.kind))
		return false
	default:
		d.add(d.p.missing(want, tok, d.kind))
	}
	return true
}

// expectName is like expect for a dotted name, such as foo.bar.baz.
func (d *production) expectName() bool {
	if !d.expect(syntax.Identifier) {
		return false
	}
	for d.p.peek().Kind() == syntax.Dot {
		d.add(d.p.consume())
		if !d.expect(syntax.Identifier) {
			return false
		}
	}
	return true
}

// finish resynchronizes to the end of the line and appends anything skipped.
func (d *production) finish() []syntax.Element {
	if skipped, ok := d.p.resync(); ok {
		d.add(skipped)
	}
	return d.children
}

// parseSyntax parses
//
//	syntax = "proto3";
func (p *parser) parseSyntax() *syntax.SyntaxDecl {
	d := p.start(syntax.NodeSyntax)
	var decl *syntax.SyntaxDecl
	if d.expect(syntax.Equals) && p.stringLiteral(d) && d.expect(syntax.Semicolon) {
		decl = syntax.NewSyntaxDecl(d.finish())
	} else {
		decl = syntax.NewSyntaxDecl(d.children)
	}

	if value := decl.Value(); value.IsNatural() {
		if _, ok := syntax.ParseLevel(value.Text()); !ok {
			p.handler.HandleErrorf(value.Pos(), "invalid syntax level %s; supported values are %q and %q",
				value.Text(), syntax.LevelProto2, syntax.LevelProto3)
		}
	}
	return decl
}

// stringLiteral expects a string literal. Only a quote can start one here,
// so the lexer is asked for one directly.
func (p *parser) stringLiteral(d *production) bool {
	if !p.pending.IsZero() {
		return d.expect(syntax.StringLiteral)
	}

	tok := p.lx.EatStringLiteral()
	switch {
	case tok.Kind() == syntax.EndOfFile:
		p.pending = tok
		d.add(p.unexpectedEOF(syntax.StringLiteral, d.kind))
		return false
	case tok.IsMissing():
		// The missing token owns the trivia consumed looking for the literal.
		d.add(tok)
		found := p.peek()
		if found.Kind() == syntax.EndOfFile {
			return d.expect(syntax.StringLiteral)
		}
		p.missing(syntax.StringLiteral, found, d.kind)
	default:
		p.pending = tok
		d.add(p.consume())
	}
	return true
}

// parsePackage parses
//
//	package foo.bar;
func (p *parser) parsePackage() *syntax.PackageDecl {
	d := p.start(syntax.NodePackage)
	if !d.expectName() || !d.expect(syntax.Semicolon) {
		return syntax.NewPackageDecl(d.children)
	}
	return syntax.NewPackageDecl(d.finish())
}

// parseService parses a service and the methods in its body.
func (p *parser) parseService() *syntax.ServiceDecl {
	d := p.start(syntax.NodeService)
	if !d.expect(syntax.Identifier) {
		return syntax.NewServiceDecl(d.children)
	}

	if p.peek().Kind() != syntax.LeftBrace {
		// Without an opening brace, there is no telling where the body would
		// be; leave it to resynchronization.
		if !d.expect(syntax.LeftBrace) || !d.expect(syntax.RightBrace) {
			return syntax.NewServiceDecl(d.children)
		}
		return syntax.NewServiceDecl(d.finish())
	}
	d.add(p.consume())

body:
	for {
		tok := p.peek()
		switch {
		case tok.Kind() == syntax.RightBrace:
			d.add(p.consume())
			break body
		case tok.Kind() == syntax.EndOfFile:
			d.add(p.unexpectedEOF(syntax.RightBrace, d.kind))
			return syntax.NewServiceDecl(d.children)
		case tok.Kind() == syntax.Rpc:
			d.add(p.parseMethod())
			if p.done {
				return syntax.NewServiceDecl(d.children)
			}
		case tok.Kind() == syntax.Semicolon:
			d.add(p.consume())
		case p.lineEnded && startsDecl(tok.Kind()):
			d.add(p.missing(syntax.RightBrace, tok, d.kind))
			break body
		default:
			p.handler.HandleErrorf(tok.Pos(), "unexpected %s in service body", tok.Kind().Describe())
			d.add(p.skipStatement(false))
		}
	}
	return syntax.NewServiceDecl(d.finish())
}

// parseMethod parses
//
//	rpc Foo(stream Bar) returns (stream Baz);
//
// Methods do not resynchronize; whatever follows on the line is handled by
// the service body.
func (p *parser) parseMethod() *syntax.MethodDecl {
	d := p.start(syntax.NodeMethod)
	ok := d.expect(syntax.Identifier) &&
		p.methodType(d) &&
		d.expect(syntax.Returns) &&
		p.methodType(d)
	if !ok {
		return syntax.NewMethodDecl(d.children)
	}

	switch tok := p.peek(); tok.Kind() {
	case syntax.Semicolon:
		d.add(p.consume())
	case syntax.LeftBrace:
		d.add(p.consume())
		if !p.methodBody(d) {
			return syntax.NewMethodDecl(d.children)
		}
	default:
		d.expect(syntax.Semicolon)
	}
	return syntax.NewMethodDecl(d.children)
}

// methodType parses a parenthesized, possibly streaming, message type.
func (p *parser) methodType(d *production) bool {
	if !d.expect(syntax.LeftParen) {
		return false
	}
	if p.peek().Kind() == syntax.Stream {
		d.add(p.consume())
		// A message may be named stream.
		if p.peek().Kind() == syntax.RightParen {
			d.add(p.consume())
			return true
		}
	}
	if p.peek().Kind() == syntax.Dot {
		d.add(p.consume())
	}
	return d.expectName() && d.expect(syntax.RightParen)
}

// methodBody skips the contents of a method's braces, which may only
// contain options.
func (p *parser) methodBody(d *production) bool {
	var skipped []syntax.Token
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind() == syntax.EndOfFile || (tok.Kind() == syntax.RightBrace && depth == 0) {
			break
		}
		switch tok.Kind() {
		case syntax.LeftBrace:
			depth++
		case syntax.RightBrace:
			depth--
		}
		skipped = append(skipped, p.consume())
	}
	if len(skipped) > 0 {
		skip := syntax.NewSkipped(skipped)
		p.handler.HandleErrorf(skipped[0].Pos(), "method options are not supported")
		d.add(skip)
	}
	return d.expect(syntax.RightBrace)
}

// parseUnknown keeps a declaration that is not understood as an unknown
// declaration.
func (p *parser) parseUnknown() *syntax.UnknownDecl {
	tok := p.peek()
	switch tok.Kind() {
	case syntax.Import, syntax.Option, syntax.Message, syntax.Enum, syntax.Extend:
		p.handler.HandleErrorf(tok.Pos(), "%s declarations are not supported", tok.Kind().Describe())
	default:
		p.handler.HandleErrorf(tok.Pos(), "unexpected %s at top level", tok.Kind().Describe())
	}
	return syntax.NewUnknownDecl(p.skipStatement(true))
}

// startsDecl reports whether a token of kind k at the start of a line
// begins a top-level declaration.
func startsDecl(k syntax.Kind) bool {
	switch k {
	case syntax.Syntax, syntax.Package, syntax.Import, syntax.Service,
		syntax.Message, syntax.Enum, syntax.Extend:
		return true
	default:
		return false
	}
}
