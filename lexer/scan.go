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

package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bufbuild/protosyntax/syntax"
)

// token lexes one significant token, followed by its trailing trivia.
func (l *Lexer) token(leading []syntax.Trivia) syntax.Token {
	start := l.sc.Offset()
	pos := l.position(start)
	b, _ := l.sc.Peek(1)
	next, _ := l.sc.Peek(2)

	var kind syntax.Kind
	switch {
	case isIdentStart(b):
		kind = syntax.Identifier
		for {
			b, ok := l.sc.Peek(1)
			if !ok || !isIdentPart(b) {
				break
			}
			l.sc.Advance()
		}

	case b == '"' || b == '\'':
		kind = syntax.StringLiteral
		l.stringLiteral(pos)

	case isDigit(b) || (b == '.' && isDigit(next)):
		l.number()

	default:
		punct, ok := syntax.LookupPunctuation(b)
		if !ok {
			return l.fail(b, pos, leading)
		}
		kind = punct
		l.sc.Advance()
	}

	text := l.sc.Text(start, l.sc.Offset())
	switch {
	case kind == syntax.Identifier:
		if kw, ok := syntax.LookupKeyword(text); ok {
			kind = kw
		}
	case kind == syntax.Unknown:
		var valid bool
		kind, valid = classifyNumber(text)
		if !valid {
			l.handler.HandleErrorf(pos, "invalid %s %s", kind, text)
		}
	}

	trailing := l.trailingTrivia()
	l.lineEnded = len(trailing) > 0 && trailing[len(trailing)-1].EndsLine()
	return syntax.NewToken(kind, text, pos, leading, trailing)
}

// stringLiteral consumes a quoted string. A backslash escapes the byte after
// it, so an escaped quote does not end the literal. A newline or the end of
// the input before the closing quote leaves the literal unterminated; the
// newline is not consumed.
func (l *Lexer) stringLiteral(start syntax.Position) {
	quote := l.sc.Advance()
	for {
		b, ok := l.sc.Peek(1)
		switch {
		case !ok || b == '\n':
			l.handler.HandleErrorf(start, "unterminated string literal")
			return
		case b == quote:
			l.sc.Advance()
			return
		case b == '\\':
			l.sc.Advance()
			if next, ok := l.sc.Peek(1); ok && next != '\n' {
				l.sc.Advance()
			}
		case b == 0:
			l.handler.HandleErrorf(l.position(l.sc.Offset()), "string literal contains a null character")
			l.sc.Advance()
		default:
			l.sc.Advance()
		}
	}
}

// number consumes a run of bytes that looks like a numeric literal. It is
// deliberately greedy, so that 123abc is one malformed literal rather than a
// number followed by an identifier.
func (l *Lexer) number() {
	hex := l.sc.HasPrefix("0x") || l.sc.HasPrefix("0X")
	if hex {
		l.sc.Discard(2)
	}
	for {
		b, ok := l.sc.Peek(1)
		if !ok {
			return
		}
		switch {
		case isIdentPart(b) || b == '.':
		case (b == '+' || b == '-') && !hex && (l.sc.Current() == 'e' || l.sc.Current() == 'E'):
		default:
			return
		}
		l.sc.Advance()
	}
}

// classifyNumber determines the kind of a numeric literal, and whether it is
// well-formed.
func classifyNumber(text string) (syntax.Kind, bool) {
	switch {
	case len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X'):
		digits := text[2:]
		return syntax.HexLiteral, digits != "" && strings.IndexFunc(digits, func(r rune) bool {
			return !isHexDigit(r)
		}) == -1

	case strings.ContainsAny(text, ".eE"):
		_, err := strconv.ParseFloat(text, 64)
		return syntax.FloatLiteral, err == nil || errors.Is(err, strconv.ErrRange)

	case text == "0":
		return syntax.IntLiteral, true

	case text[0] == '0':
		return syntax.OctalLiteral, strings.IndexFunc(text, func(r rune) bool {
			return r < '0' || r > '7'
		}) == -1

	default:
		return syntax.DecimalLiteral, strings.IndexFunc(text, func(r rune) bool {
			return r < '0' || r > '9'
		}) == -1
	}
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
