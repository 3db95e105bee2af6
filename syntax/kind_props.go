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

import "fmt"

// IsKeyword returns whether this is one of the reserved words of the
// language. Keywords are contextual: the parser accepts most of them where
// an identifier is expected.
func (v Kind) IsKeyword() bool {
	return v >= Syntax && v <= Returns
}

// IsLiteral returns whether this is a numeric or string literal.
func (v Kind) IsLiteral() bool {
	return v >= IntLiteral && v <= StringLiteral
}

// IsNumber returns whether this is a numeric literal.
func (v Kind) IsNumber() bool {
	return v >= IntLiteral && v <= FloatLiteral
}

// IsPunctuation returns whether this is a single-byte punctuation kind.
func (v Kind) IsPunctuation() bool {
	return v >= Semicolon && v <= RightAngle
}

// IsTrivia returns whether this kind only appears as trivia or as the
// kind of a synthesized token.
func (v Kind) IsTrivia() bool {
	return v >= EndOfLine && v <= Skipped
}

// Describe renders this kind for use in a diagnostic, such as "`syntax`",
// "`;`" or "string literal".
func (v Kind) Describe() string {
	if v.IsKeyword() || v.IsPunctuation() {
		return fmt.Sprintf("`%s`", v)
	}
	return v.String()
}

// LookupKeyword returns the keyword kind spelled by text, if there is one.
// The comparison is case-sensitive.
func LookupKeyword(text string) (Kind, bool) {
	return lookupKeyword(text)
}

// LookupPunctuation returns the punctuation kind for b, if there is one.
func LookupPunctuation(b byte) (Kind, bool) {
	return lookupPunctuation(string(b))
}
