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

// Package lexer splits proto source into tokens and trivia.
//
// The lexer is pull based: each call to [Lexer.Lex] returns one significant
// token together with the trivia before it and the trivia after it up to the
// end of its line. Concatenating the source of every token returned, in
// order, reproduces the input exactly.
package lexer

import (
	"github.com/bufbuild/protosyntax/internal/scanner"
	"github.com/bufbuild/protosyntax/internal/width"
	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

// Lexer produces tokens from a byte buffer.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	sc      *scanner.Scanner
	handler *reporter.Handler

	line      int         // The current one-based line.
	lineStart int         // The offset of the first byte of the current line.
	measured  int         // The offset the ruler has measured up to.
	ruler     width.Ruler // Measures columns on the current line.

	// Whether the last token returned ended its line.
	lineEnded bool

	eof      bool
	terminal syntax.Token
	fault    *FaultError
}

// New returns a lexer over data. Diagnostics are reported to handler, which
// may be nil.
func New(data []byte, handler *reporter.Handler) *Lexer {
	return &Lexer{
		sc:        scanner.New(data),
		handler:   handler,
		line:      1,
		lineEnded: true,
	}
}

// DiscardOptionalByteOrderMark skips a UTF-8 byte order mark at the start of
// the input, and reports whether there was one. It must be called before the
// first token is lexed.
func (l *Lexer) DiscardOptionalByteOrderMark() bool {
	if !l.sc.DiscardByteOrderMark() {
		return false
	}
	l.lineStart = l.sc.Offset()
	l.measured = l.lineStart
	return true
}

// Lex returns the next significant token.
//
// Once the input is exhausted, Lex returns an [syntax.EndOfFile] token
// carrying any remaining leading trivia; every later call returns that same
// token.
func (l *Lexer) Lex() syntax.Token {
	if l.eof {
		return l.terminalToken()
	}
	leading := l.leadingTrivia()
	if l.eof {
		return l.finish(leading)
	}
	return l.token(leading)
}

// EatStringLiteral lexes a string literal, for grammar positions where
// nothing else is valid.
//
// If the next significant byte is not a quote, it returns a missing
// [syntax.StringLiteral] token that carries the leading trivia consumed while
// looking; the next byte is left for the following call.
func (l *Lexer) EatStringLiteral() syntax.Token {
	if l.eof {
		return l.terminalToken()
	}
	leading := l.leadingTrivia()
	if l.eof {
		return l.finish(leading)
	}

	if b, _ := l.sc.Peek(1); b != '"' && b != '\'' {
		l.lineEnded = false
		return syntax.NewMissing(syntax.StringLiteral, l.position(l.sc.Offset()), leading)
	}
	return l.token(leading)
}

// AtEndOfLine reports whether the rest of the current line holds no more
// tokens: the last token returned consumed the end of its line, the next
// byte is a newline, or the input is exhausted.
func (l *Lexer) AtEndOfLine() bool {
	if l.eof || l.lineEnded {
		return true
	}
	b, ok := l.sc.Peek(1)
	return !ok || b == '\n'
}

// AtEOF reports whether the input has been exhausted.
func (l *Lexer) AtEOF() bool {
	return l.eof
}

// Err returns the lexer fault that ended lexing early, if any.
func (l *Lexer) Err() error {
	if l.fault == nil {
		return nil
	}
	return l.fault
}

// position returns the position of offset, which must not precede the last
// position measured.
func (l *Lexer) position(offset int) syntax.Position {
	if offset < l.measured {
		l.ruler.Reset()
		l.measured = l.lineStart
	}
	if offset > l.measured {
		l.ruler.Advance(l.sc.Text(l.measured, offset))
		l.measured = offset
	}
	return syntax.Position{
		Offset: offset,
		Line:   l.line,
		Column: l.ruler.Column() + 1,
		UTF16:  l.ruler.UTF16(),
	}
}

// newline records that a line ended just before offset next.
func (l *Lexer) newline(next int) {
	l.line++
	l.lineStart = next
	l.measured = next
	l.ruler.Reset()
}

// finish builds the terminal end-of-file token. leading must end in an
// end-of-file trivia.
func (l *Lexer) finish(leading []syntax.Trivia) syntax.Token {
	pos := leading[len(leading)-1].Pos
	l.terminal = syntax.NewToken(syntax.EndOfFile, "", pos, leading, nil)
	l.lineEnded = true
	return l.terminal
}

func (l *Lexer) terminalToken() syntax.Token {
	if l.terminal.IsZero() {
		l.terminal = syntax.NewToken(syntax.EndOfFile, "", l.position(l.sc.Offset()), nil, nil)
	}
	l.lineEnded = true
	return l.terminal
}
