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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

// lexAll lexes input to the end-of-file token, returning the tokens and the
// diagnostics reported along the way.
func lexAll(t *testing.T, input string) ([]syntax.Token, *reporter.Collector) {
	t.Helper()

	var diags reporter.Collector
	l := New([]byte(input), reporter.NewHandler(&diags))
	l.DiscardOptionalByteOrderMark()

	var toks []syntax.Token
	for range len(input) + 2 {
		tok := l.Lex()
		toks = append(toks, tok)
		if tok.Kind() == syntax.EndOfFile {
			break
		}
	}
	require.Equal(t, syntax.EndOfFile, toks[len(toks)-1].Kind(), "lexer did not reach EOF")
	return toks, &diags
}

func source(toks []syntax.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		tok.WriteSource(&b)
	}
	return b.String()
}

// describe renders tokens as "Kind text" strings, for comparisons.
func describe(toks []syntax.Token) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, fmt.Sprintf("%#v %s", tok.Kind(), tok.Text()))
	}
	return out
}

func TestLexer(t *testing.T) {
	t.Parallel()

	input := `
	// comment

	/*
	 * block comment
	 */ /* inline comment */

	int32  "\032\x16\n\rfoobar\"zap"		'another\tstring\'s\t'
foo

	service rpc message returns stream
	.type
	.f.q.n
	Random_identifier_with_numbers_0123456789_and_letters
	syntax = "proto2";

	0 .01 .01e12 .01e+5 .033e-1
	12345 123.1234 0.123 012345 0x2134abcdef30 3.1234e+12

	{ } + - , ; : / ( ) [ ] < >

	// a trailing comment for last element
`
	toks, diags := lexAll(t, input)
	assert.Zero(t, diags.Len(), diags.String())
	assert.Equal(t, input, source(toks))

	want := []string{
		"Int32 int32",
		`StringLiteral "\032\x16\n\rfoobar\"zap"`,
		`StringLiteral 'another\tstring\'s\t'`,
		"Identifier foo",
		"Service service",
		"Rpc rpc",
		"Message message",
		"Returns returns",
		"Stream stream",
		"Dot .",
		"Identifier type",
		"Dot .",
		"Identifier f",
		"Dot .",
		"Identifier q",
		"Dot .",
		"Identifier n",
		"Identifier Random_identifier_with_numbers_0123456789_and_letters",
		"Syntax syntax",
		"Equals =",
		`StringLiteral "proto2"`,
		"Semicolon ;",
		"IntLiteral 0",
		"FloatLiteral .01",
		"FloatLiteral .01e12",
		"FloatLiteral .01e+5",
		"FloatLiteral .033e-1",
		"DecimalLiteral 12345",
		"FloatLiteral 123.1234",
		"FloatLiteral 0.123",
		"OctalLiteral 012345",
		"HexLiteral 0x2134abcdef30",
		"FloatLiteral 3.1234e+12",
		"LeftBrace {",
		"RightBrace }",
		"Plus +",
		"Minus -",
		"Comma ,",
		"Semicolon ;",
		"Colon :",
		"Slash /",
		"LeftParen (",
		"RightParen )",
		"LeftBracket [",
		"RightBracket ]",
		"LeftAngle <",
		"RightAngle >",
		"EndOfFile ",
	}
	if diff := cmp.Diff(want, describe(toks)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTriviaAttachment(t *testing.T) {
	t.Parallel()

	input := "// leading\n\n  syntax /* c */ = // trailing\n  \"proto3\";"
	toks, _ := lexAll(t, input)
	require.Len(t, toks, 5)

	kinds := func(trivia []syntax.Trivia) []syntax.Kind {
		var out []syntax.Kind
		for _, tr := range trivia {
			out = append(out, tr.Kind)
		}
		return out
	}

	syn := toks[0]
	assert.Equal(t, []syntax.Kind{syntax.LineComment, syntax.EndOfLine, syntax.EndOfLine, syntax.Whitespace}, kinds(syn.Leading()))
	assert.Equal(t, []syntax.Kind{syntax.Whitespace, syntax.BlockComment, syntax.Whitespace}, kinds(syn.Trailing()))
	assert.False(t, syn.EndsLine())
	assert.Equal(t, syntax.Position{Offset: 14, Line: 3, Column: 3, UTF16: 2}, syn.Pos())

	eq := toks[1]
	assert.Empty(t, eq.Leading())
	assert.Equal(t, []syntax.Kind{syntax.Whitespace, syntax.LineComment, syntax.EndOfLine}, kinds(eq.Trailing()))
	assert.True(t, eq.EndsLine())

	str := toks[2]
	assert.Equal(t, []syntax.Kind{syntax.Whitespace}, kinds(str.Leading()))
	assert.Equal(t, 4, str.Pos().Line)

	// Trailing trivia ends at EOF.
	semi := toks[3]
	assert.Equal(t, []syntax.Kind{syntax.EndOfFile}, kinds(semi.Trailing()))
	assert.True(t, semi.EndsLine())

	assert.Equal(t, syntax.EndOfFile, toks[4].Kind())
	assert.Empty(t, toks[4].Leading())
}

func TestEndOfFileIsSticky(t *testing.T) {
	t.Parallel()

	l := New([]byte("foo\n  // done\n"), nil)
	assert.Equal(t, syntax.Identifier, l.Lex().Kind())
	assert.True(t, l.AtEndOfLine())

	eof := l.Lex()
	require.Equal(t, syntax.EndOfFile, eof.Kind())
	assert.Equal(t, "  // done\n", eof.Source())
	require.Len(t, eof.Leading(), 4)
	assert.Equal(t, syntax.EndOfFile, eof.Leading()[3].Kind)
	assert.True(t, l.AtEOF())

	for range 3 {
		again := l.Lex()
		assert.Equal(t, eof.Source(), again.Source())
		assert.Equal(t, eof.Pos(), again.Pos())
	}
	assert.Equal(t, syntax.EndOfFile, l.EatStringLiteral().Kind())
}

func TestEatStringLiteral(t *testing.T) {
	t.Parallel()

	l := New([]byte(`  "proto3" ;`), nil)
	tok := l.EatStringLiteral()
	assert.Equal(t, syntax.StringLiteral, tok.Kind())
	assert.Equal(t, `"proto3"`, tok.Text())
	assert.Equal(t, "  ", tok.Leading()[0].Text)

	l = New([]byte(" ;\n"), nil)
	tok = l.EatStringLiteral()
	assert.True(t, tok.IsMissing())
	assert.Equal(t, syntax.StringLiteral, tok.Kind())
	assert.Equal(t, " ", tok.Source())
	assert.Equal(t, 1, tok.Pos().Offset)
	assert.False(t, l.AtEndOfLine())

	semi := l.Lex()
	assert.Equal(t, syntax.Semicolon, semi.Kind())
	assert.Empty(t, semi.Leading())
	assert.True(t, l.AtEndOfLine())
}

func TestStringLiterals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		text  string
		diags int
	}{
		{input: `"abc"`, text: `"abc"`},
		{input: `'a"b'`, text: `'a"b'`},
		{input: `"a\"b"`, text: `"a\"b"`},
		{input: `"a\\" x`, text: `"a\\"`},
		{input: `"abc`, text: `"abc`, diags: 1},
		{input: "\"abc\nfoo", text: `"abc`, diags: 1},
		{input: "\"a\x00b\"", text: "\"a\x00b\"", diags: 1},
		{input: `"日本"`, text: `"日本"`},
	}
	for _, tt := range tests {
		toks, diags := lexAll(t, tt.input)
		assert.Equal(t, tt.input, source(toks), "%q", tt.input)
		assert.Equal(t, syntax.StringLiteral, toks[0].Kind(), "%q", tt.input)
		assert.Equal(t, tt.text, toks[0].Text(), "%q", tt.input)
		assert.Equal(t, tt.diags, diags.Len(), "%q: %s", tt.input, diags)
	}
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  syntax.Kind
		valid bool
	}{
		{"0", syntax.IntLiteral, true},
		{"42", syntax.DecimalLiteral, true},
		{"0755", syntax.OctalLiteral, true},
		{"0789", syntax.OctalLiteral, false},
		{"0xFF", syntax.HexLiteral, true},
		{"0x", syntax.HexLiteral, false},
		{"0xfg", syntax.HexLiteral, false},
		{"1.5", syntax.FloatLiteral, true},
		{"1e10", syntax.FloatLiteral, true},
		{"1e", syntax.FloatLiteral, false},
		{"1.2.3", syntax.FloatLiteral, false},
		{"1e999", syntax.FloatLiteral, true},
		{"123abc", syntax.DecimalLiteral, false},
	}
	for _, tt := range tests {
		toks, diags := lexAll(t, tt.input)
		require.Len(t, toks, 2, "%q", tt.input)
		assert.Equal(t, tt.kind, toks[0].Kind(), "%q", tt.input)
		assert.Equal(t, tt.input, toks[0].Text(), "%q", tt.input)
		if tt.valid {
			assert.Zero(t, diags.Len(), "%q: %s", tt.input, diags)
		} else {
			assert.Equal(t, 1, diags.Len(), "%q", tt.input)
		}
	}

	// An exponent sign is part of the literal; any other sign is not.
	toks, _ := lexAll(t, "1.23e+20+20")
	assert.Equal(t, []string{"FloatLiteral 1.23e+20", "Plus +", "DecimalLiteral 20", "EndOfFile "}, describe(toks))
}

func TestBlockComments(t *testing.T) {
	t.Parallel()

	toks, diags := lexAll(t, "/* a /* b */ foo")
	assert.Zero(t, diags.Len())
	require.Len(t, toks, 2)
	assert.Equal(t, "/* a /* b */", toks[0].Leading()[0].Text)
	assert.Equal(t, syntax.Identifier, toks[0].Kind())

	toks, diags = lexAll(t, "foo /* never\nends")
	assert.Equal(t, "foo /* never\nends", source(toks))
	require.Len(t, diags.Diagnostics(), 1)
	assert.Equal(t, "unterminated block comment", diags.Diagnostics()[0].Message)
	assert.Equal(t, syntax.Position{Offset: 4, Line: 1, Column: 5, UTF16: 4}, diags.Diagnostics()[0].Pos)

	toks, _ = lexAll(t, "/*\n\n*/ foo")
	assert.Equal(t, 3, toks[0].Pos().Line)
	assert.Equal(t, 4, toks[0].Pos().Column)
}

func TestNullInComment(t *testing.T) {
	t.Parallel()

	input := "// a\x00b\nfoo"
	toks, diags := lexAll(t, input)
	assert.Equal(t, input, source(toks))
	assert.Equal(t, 1, diags.Len())
}

func TestFault(t *testing.T) {
	t.Parallel()

	input := "package foo;\nmessage @ Bar {\n}\n"
	var diags reporter.Collector
	handler := reporter.NewHandler(&diags)
	l := New([]byte(input), handler)

	var toks []syntax.Token
	for {
		tok := l.Lex()
		toks = append(toks, tok)
		if tok.Kind() == syntax.EndOfFile {
			break
		}
	}
	assert.Equal(t, input, source(toks))
	require.Len(t, toks, 5)

	eof := toks[4]
	leading := eof.Leading()
	require.Len(t, leading, 2)
	assert.Equal(t, syntax.Skipped, leading[0].Kind)
	assert.Equal(t, "@ Bar {\n}\n", leading[0].Text)
	assert.Equal(t, syntax.Position{Offset: len(input), Line: 4, Column: 1}, leading[1].Pos)

	var fault *FaultError
	require.ErrorAs(t, l.Err(), &fault)
	require.ErrorIs(t, l.Err(), reporter.ErrInvalidSource)
	assert.Equal(t, byte('@'), fault.Byte)
	assert.Equal(t, syntax.Position{Offset: 21, Line: 2, Column: 9, UTF16: 8}, fault.Pos)
	assert.Equal(t, fault, handler.Error())

	require.Len(t, diags.Diagnostics(), 1)
	assert.Equal(t, "byte 0x40 ('@') cannot start a token", diags.Diagnostics()[0].Message)
}

func TestFaultOnStrayCommentEnd(t *testing.T) {
	t.Parallel()

	toks, diags := lexAll(t, "foo */")
	assert.Equal(t, "foo */", source(toks))
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.Diagnostics()[0].Message, "nested block comments")
}

func TestByteOrderMark(t *testing.T) {
	t.Parallel()

	l := New([]byte("\xEF\xBB\xBFsyntax"), nil)
	assert.True(t, l.DiscardOptionalByteOrderMark())
	tok := l.Lex()
	assert.Equal(t, syntax.Syntax, tok.Kind())
	assert.Equal(t, syntax.Position{Offset: 3, Line: 1, Column: 1}, tok.Pos())
	assert.Equal(t, "syntax", tok.Source()[:6])
}

func TestColumns(t *testing.T) {
	t.Parallel()

	toks, _ := lexAll(t, "\tfoo \"日本\" bar\r\nbaz")
	assert.Equal(t, syntax.Position{Offset: 1, Line: 1, Column: 5, UTF16: 1}, toks[0].Pos())
	assert.Equal(t, syntax.Position{Offset: 5, Line: 1, Column: 9, UTF16: 5}, toks[1].Pos())
	assert.Equal(t, syntax.Position{Offset: 14, Line: 1, Column: 16, UTF16: 10}, toks[2].Pos())
	assert.Equal(t, syntax.Position{Offset: 19, Line: 2, Column: 1}, toks[3].Pos())

	// CRLF is whitespace followed by a newline.
	trailing := toks[2].Trailing()
	require.Len(t, trailing, 2)
	assert.Equal(t, syntax.Whitespace, trailing[0].Kind)
	assert.Equal(t, "\r", trailing[0].Text)
	assert.Equal(t, syntax.EndOfLine, trailing[1].Kind)
}
