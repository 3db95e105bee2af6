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
	"fmt"

	"github.com/bufbuild/protosyntax/lexer"
	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

// Parse parses the contents of the file at path. Diagnostics are emitted to
// provider; if it is nil, they are printed to stderr.
//
// Parse always returns a tree, whose source is exactly data. The error is
// nil unless the parse was cut short: it is a [*lexer.FaultError] if data
// contains a byte that cannot start a token, or it wraps [ErrUnexpectedEOF]
// if data ends inside a declaration. A nil error does not mean there were no
// diagnostics.
func Parse(path string, data []byte, provider reporter.Provider) (*syntax.Tree, error) {
	if provider == nil {
		provider = reporter.NewConsole(path)
	}
	handler := reporter.NewHandler(provider)
	lx := lexer.New(data, handler)
	bom := lx.DiscardOptionalByteOrderMark()

	p := &parser{
		lx:        lx,
		handler:   handler,
		lineEnded: true,
		missingAt: -1,
	}
	b := syntax.NewBuilder(path, bom)
	eof := p.parseFile(b)
	return b.Finish(eof), handler.Error()
}

// parser holds the state of a single parse.
type parser struct {
	lx      *lexer.Lexer
	handler *reporter.Handler

	// The lookahead token, if it has been lexed but not consumed.
	pending syntax.Token

	// Whether the last natural token consumed ended its line.
	lineEnded bool

	// The offset of the token the last missing token was synthesized in
	// front of, used to avoid cascading diagnostics.
	missingAt int

	// Set once the end of the file has been consumed inside a declaration.
	done bool
}

// parseFile parses top-level declarations until the end of the file, and
// returns the end-of-file token if it was reached at the top level.
func (p *parser) parseFile(b *syntax.Builder) syntax.Token {
	for !p.done {
		tok := p.peek()
		switch tok.Kind() {
		case syntax.EndOfFile:
			p.consume()
			return tok
		case syntax.Syntax:
			b.Append(p.parseSyntax())
		case syntax.Package:
			b.Append(p.parsePackage())
		case syntax.Service:
			b.Append(p.parseService())
		case syntax.Semicolon:
			p.consume()
			b.Append(syntax.NewEmptyDecl([]syntax.Element{tok}))
		default:
			b.Append(p.parseUnknown())
		}
	}
	return syntax.Token{}
}

// peek returns the next token without consuming it.
func (p *parser) peek() syntax.Token {
	if p.pending.IsZero() {
		p.pending = p.lx.Lex()
	}
	return p.pending
}

// consume consumes the token most recently returned by peek.
func (p *parser) consume() syntax.Token {
	tok := p.pending
	p.pending = syntax.Token{}
	p.lineEnded = tok.EndsLine()
	return tok
}

// accepts reports whether tok can stand for a symbol of kind want. Keywords
// are accepted as identifiers, unless they begin a new line.
func (p *parser) accepts(tok syntax.Token, want syntax.Kind) bool {
	if tok.Kind() == want {
		return true
	}
	return want == syntax.Identifier && tok.Kind().IsKeyword() && !p.lineEnded
}

// atEndOfLine reports whether nothing remains on the line of the last token
// consumed.
func (p *parser) atEndOfLine() bool {
	if p.lineEnded {
		return true
	}
	return p.pending.IsZero() && p.lx.AtEndOfLine()
}

// missing synthesizes a missing token of kind want in front of found, which
// is left pending.
func (p *parser) missing(want syntax.Kind, found syntax.Token, in syntax.NodeKind) syntax.Token {
	pos := found.Pos()
	if pos.Offset != p.missingAt {
		p.missingAt = pos.Offset
		p.handler.HandleErrorf(pos, "missing %s in %s; found %s", want.Describe(), in, found.Kind().Describe())
	}
	return syntax.NewMissing(want, pos, nil)
}

// unexpectedEOF consumes the end-of-file token found where a symbol of kind
// want was required, and ends the parse.
func (p *parser) unexpectedEOF(want syntax.Kind, in syntax.NodeKind) syntax.Token {
	eof := p.consume()
	p.done = true
	if p.lx.Err() == nil {
		// A lexer fault has already been reported, and explains the early end.
		err := fmt.Errorf("%w in %s; expected %s", ErrUnexpectedEOF, in, want.Describe())
		_ = p.handler.Fatal(reporter.Error(eof.Pos(), err))
	}
	return eof
}

// resync skips the rest of the current line, if anything is left on it. The
// tokens skipped are returned as a single skipped token.
//
// The end-of-file token is never skipped: it is left pending for the top
// level.
func (p *parser) resync() (syntax.Token, bool) {
	if p.atEndOfLine() {
		return syntax.Token{}, false
	}
	var skipped []syntax.Token
	for {
		tok := p.peek()
		if tok.Kind() == syntax.EndOfFile {
			break
		}
		skipped = append(skipped, p.consume())
		if tok.EndsLine() {
			break
		}
	}
	if len(skipped) == 0 {
		return syntax.Token{}, false
	}
	return syntax.NewSkipped(skipped), true
}

// skipStatement skips one statement: tokens up to and including a `;` or
// the end of a line, balancing braces along the way. A `}` that would close
// the enclosing body, and the end of the file, are left pending.
//
// At the top level, only the end of a line ends the statement.
func (p *parser) skipStatement(topLevel bool) syntax.Token {
	var skipped []syntax.Token
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind() == syntax.EndOfFile {
			break
		}
		if !topLevel && depth == 0 && tok.Kind() == syntax.RightBrace && len(skipped) > 0 {
			break
		}
		skipped = append(skipped, p.consume())

		switch tok.Kind() {
		case syntax.LeftBrace:
			depth++
		case syntax.RightBrace:
			depth--
		}
		if depth <= 0 && (tok.EndsLine() || (!topLevel && tok.Kind() == syntax.Semicolon)) {
			break
		}
	}
	return syntax.NewSkipped(skipped)
}
