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
	"github.com/bufbuild/protosyntax/syntax"
)

// singleSpace is shared by every one-byte whitespace trivia, which is by far
// the most common kind.
const singleSpace = " "

// leadingTrivia collects trivia until the next significant byte or the end
// of the input.
func (l *Lexer) leadingTrivia() []syntax.Trivia {
	var out []syntax.Trivia
	for !l.eof {
		var ok bool
		if out, ok = l.trivia(out); !ok {
			break
		}
	}
	return out
}

// trailingTrivia collects trivia up to and including the end of the current
// line, stopping early at a significant byte.
func (l *Lexer) trailingTrivia() []syntax.Trivia {
	var out []syntax.Trivia
	for !l.eof {
		var ok bool
		if out, ok = l.trivia(out); !ok {
			break
		}
		if out[len(out)-1].EndsLine() {
			break
		}
	}
	return out
}

// trivia lexes one piece of trivia and appends it to out. It returns false,
// consuming nothing, if the next byte does not start trivia.
//
// At the end of the input, it appends an end-of-file trivia and puts the
// lexer into its end-of-file state.
func (l *Lexer) trivia(out []syntax.Trivia) ([]syntax.Trivia, bool) {
	start := l.sc.Offset()
	b, ok := l.sc.Peek(1)
	if !ok {
		l.eof = true
		return append(out, syntax.Trivia{Kind: syntax.EndOfFile, Pos: l.position(start)}), true
	}

	next, _ := l.sc.Peek(2)
	switch {
	case b == '\n':
		pos := l.position(start)
		l.sc.Advance()
		l.newline(l.sc.Offset())
		return append(out, syntax.Trivia{Kind: syntax.EndOfLine, Text: "\n", Pos: pos}), true

	case b == ' ' && !isSpace(next):
		pos := l.position(start)
		l.sc.Advance()
		return append(out, syntax.Trivia{Kind: syntax.Whitespace, Text: singleSpace, Pos: pos}), true

	case isSpace(b):
		pos := l.position(start)
		for {
			b, ok := l.sc.Peek(1)
			if !ok || !isSpace(b) {
				break
			}
			l.sc.Advance()
		}
		return append(out, syntax.Trivia{Kind: syntax.Whitespace, Text: l.sc.Text(start, l.sc.Offset()), Pos: pos}), true

	case b == '/' && next == '/':
		pos := l.position(start)
		l.lineComment()
		return append(out, syntax.Trivia{Kind: syntax.LineComment, Text: l.sc.Text(start, l.sc.Offset()), Pos: pos}), true

	case b == '/' && next == '*':
		pos := l.position(start)
		l.blockComment(pos)
		return append(out, syntax.Trivia{Kind: syntax.BlockComment, Text: l.sc.Text(start, l.sc.Offset()), Pos: pos}), true

	default:
		return out, false
	}
}

// lineComment consumes a // comment, up to but not including the newline.
func (l *Lexer) lineComment() {
	l.sc.Discard(2)
	for {
		b, ok := l.sc.Peek(1)
		if !ok || b == '\n' {
			return
		}
		if b == 0 {
			l.handler.HandleErrorf(l.position(l.sc.Offset()), "comment contains a null character")
		}
		l.sc.Advance()
	}
}

// blockComment consumes a /* */ comment. Block comments do not nest: the
// first */ ends the comment. An unterminated comment runs to the end of the
// input.
func (l *Lexer) blockComment(start syntax.Position) {
	l.sc.Discard(2)
	for {
		b, ok := l.sc.Peek(1)
		switch {
		case !ok:
			l.handler.HandleErrorf(start, "unterminated block comment")
			return
		case b == '*':
			if next, _ := l.sc.Peek(2); next == '/' {
				l.sc.Discard(2)
				return
			}
		case b == '\n':
			l.sc.Advance()
			l.newline(l.sc.Offset())
			continue
		case b == 0:
			l.handler.HandleErrorf(l.position(l.sc.Offset()), "comment contains a null character")
		}
		l.sc.Advance()
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
