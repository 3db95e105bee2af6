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
	"fmt"
	"strings"

	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

// FaultError is returned when the input contains a byte that cannot start
// any token. Lexing stops there: the rest of the input is kept as skipped
// trivia on the end-of-file token.
//
// FaultError wraps [reporter.ErrInvalidSource].
type FaultError struct {
	Pos  syntax.Position
	Byte byte
	// An optional suggestion for fixing the input.
	Hint string
}

var _ reporter.ErrorWithPos = (*FaultError)(nil)

// Message returns the error text without location information.
func (e *FaultError) Message() string {
	msg := describeByte(e.Byte) + " cannot start a token"
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

// Error implements [error].
func (e *FaultError) Error() string {
	return fmt.Sprintf("%v: %s", e.Pos, e.Message())
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *FaultError) GetPosition() syntax.Position {
	return e.Pos
}

// Unwrap implements [reporter.ErrorWithPos].
func (e *FaultError) Unwrap() error {
	return reporter.ErrInvalidSource
}

// fail records a fault at the next byte, b, and ends lexing. The remainder of
// the input becomes a skipped trivia on the returned end-of-file token.
func (l *Lexer) fail(b byte, pos syntax.Position, leading []syntax.Trivia) syntax.Token {
	err := &FaultError{Pos: pos, Byte: b}
	if b == '*' && l.sc.HasPrefix("*/") {
		err.Hint = "Protobuf does not permit nested block comments"
	}
	l.fault = err
	_ = l.handler.Fatal(err)

	start := l.sc.Offset()
	rest := l.sc.Rest()
	leading = append(leading, syntax.Trivia{Kind: syntax.Skipped, Text: rest, Pos: pos})

	// Keep line numbers right for the end-of-file position.
	for i := strings.IndexByte(rest, '\n'); i >= 0; {
		l.newline(start + i + 1)
		next := strings.IndexByte(rest[i+1:], '\n')
		if next < 0 {
			break
		}
		i += next + 1
	}

	l.eof = true
	leading = append(leading, syntax.Trivia{Kind: syntax.EndOfFile, Pos: l.position(l.sc.Offset())})
	return l.finish(leading)
}

// describeByte renders b for a diagnostic, such as "byte 0x40 ('@')".
func describeByte(b byte) string {
	if b >= 0x20 && b < 0x7f {
		return fmt.Sprintf("byte 0x%02x (%q)", b, rune(b))
	}
	return fmt.Sprintf("byte 0x%02x", b)
}
