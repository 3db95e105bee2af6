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
	"strings"
)

// Trivia is a piece of source text with no grammatical meaning, such as
// whitespace or a comment, attached to the token before or after it.
type Trivia struct {
	Kind Kind
	// The exact source text, including comment delimiters and newlines.
	Text string
	Pos  Position
}

// EndsLine returns whether this trivia terminates a line.
func (t Trivia) EndsLine() bool {
	return t.Kind == EndOfLine || t.Kind == EndOfFile
}

// String implements [fmt.Stringer].
func (t Trivia) String() string {
	return fmt.Sprintf("%v %q", t.Kind.GoString(), t.Text)
}

// Variant distinguishes tokens read from the source from tokens synthesized
// by the parser during error recovery.
type Variant byte

const (
	// VariantNatural is a token lexed from the source.
	VariantNatural Variant = iota
	// VariantMissing is a zero-width token standing in for a required symbol
	// that was not found. Its kind is the kind that was expected.
	VariantMissing
	// VariantSkipped wraps a run of natural tokens that were discarded while
	// resynchronizing. Its kind is always [Skipped].
	VariantSkipped
)

// String implements [fmt.Stringer].
func (v Variant) String() string {
	switch v {
	case VariantNatural:
		return "natural"
	case VariantMissing:
		return "missing"
	case VariantSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Token is the terminal unit of a syntax tree.
//
// Tokens are values. The trivia and skipped-token slices a token returns are
// shared with the tree and must not be modified.
type Token struct {
	kind     Kind
	variant  Variant
	text     string
	pos      Position
	leading  []Trivia
	trailing []Trivia
	skipped  []Token
}

// NewToken returns a natural token.
func NewToken(kind Kind, text string, pos Position, leading, trailing []Trivia) Token {
	return Token{
		kind:     kind,
		text:     text,
		pos:      pos,
		leading:  leading,
		trailing: trailing,
	}
}

// NewMissing returns a synthesized token of the expected kind, positioned
// where the parser looked for it.
//
// leading is normally empty; it is set when trivia had already been consumed
// while looking for the token, so that the trivia is not lost.
func NewMissing(expected Kind, pos Position, leading []Trivia) Token {
	return Token{
		kind:    expected,
		variant: VariantMissing,
		pos:     pos,
		leading: leading,
	}
}

// NewSkipped wraps a run of tokens discarded during resynchronization.
func NewSkipped(tokens []Token) Token {
	tok := Token{
		kind:    Skipped,
		variant: VariantSkipped,
		skipped: tokens,
	}
	if len(tokens) > 0 {
		tok.pos = tokens[0].pos
	}
	return tok
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.kind == Unknown
}

// Kind returns this token's kind. For a missing token, this is the kind that
// was expected.
func (t Token) Kind() Kind {
	return t.kind
}

// Variant returns whether this token is natural or synthesized.
func (t Token) Variant() Variant {
	return t.variant
}

// IsMissing returns whether this token was synthesized for an absent symbol.
func (t Token) IsMissing() bool {
	return t.variant == VariantMissing
}

// IsSkipped returns whether this token wraps skipped tokens.
func (t Token) IsSkipped() bool {
	return t.variant == VariantSkipped
}

// IsNatural returns whether this token was read from the source.
func (t Token) IsNatural() bool {
	return t.variant == VariantNatural && t.kind != Unknown
}

// Text returns the source text of the token itself, without trivia. This is
// empty for synthesized tokens and for the end-of-file token.
func (t Token) Text() string {
	return t.text
}

// Pos returns the position of the token's text.
func (t Token) Pos() Position {
	return t.pos
}

// Leading returns the trivia preceding this token.
func (t Token) Leading() []Trivia {
	return t.leading
}

// Trailing returns the trivia following this token, up to and including the
// end of its line.
func (t Token) Trailing() []Trivia {
	return t.trailing
}

// Skipped returns the tokens wrapped by a skipped token.
func (t Token) Skipped() []Token {
	return t.skipped
}

// EndsLine returns whether this token's trailing trivia reaches the end of
// its line or of the file.
func (t Token) EndsLine() bool {
	if t.variant == VariantSkipped {
		return len(t.skipped) > 0 && t.skipped[len(t.skipped)-1].EndsLine()
	}
	if t.kind == EndOfFile && t.variant == VariantNatural {
		return true
	}
	if len(t.trailing) == 0 {
		return false
	}
	return t.trailing[len(t.trailing)-1].EndsLine()
}

// Start returns the offset of the first byte this token accounts for,
// including its leading trivia.
func (t Token) Start() int {
	switch {
	case t.variant == VariantSkipped && len(t.skipped) > 0:
		return t.skipped[0].Start()
	case len(t.leading) > 0:
		return t.leading[0].Pos.Offset
	default:
		return t.pos.Offset
	}
}

// Len returns the number of source bytes this token accounts for, including
// all of its trivia.
func (t Token) Len() int {
	n := len(t.text)
	for _, tr := range t.leading {
		n += len(tr.Text)
	}
	for _, tr := range t.trailing {
		n += len(tr.Text)
	}
	for _, tok := range t.skipped {
		n += tok.Len()
	}
	return n
}

// WriteSource writes the exact source text of this token, including its
// trivia, to w.
func (t Token) WriteSource(w io.StringWriter) {
	for _, tr := range t.leading {
		_, _ = w.WriteString(tr.Text)
	}
	for _, tok := range t.skipped {
		tok.WriteSource(w)
	}
	_, _ = w.WriteString(t.text)
	for _, tr := range t.trailing {
		_, _ = w.WriteString(tr.Text)
	}
}

// Source returns the exact source text of this token, including its trivia.
func (t Token) Source() string {
	var b strings.Builder
	b.Grow(t.Len())
	t.WriteSource(&b)
	return b.String()
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	switch t.variant {
	case VariantMissing:
		return fmt.Sprintf("missing %v", t.kind.GoString())
	case VariantSkipped:
		return fmt.Sprintf("skipped %q", t.Source())
	default:
		return fmt.Sprintf("%v %q", t.kind.GoString(), t.text)
	}
}

func (Token) element() {}
