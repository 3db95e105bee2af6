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

// Package width measures the number of terminal cells a line of source text
// occupies, which is what diagnostics report as a column.
//
// Widths of individual grapheme clusters come from github.com/rivo/uniseg,
// which treats characters in the Ambiguous category as one column wide,
// consistent with non-CJK contexts.
package width

import (
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the default tabstop used when none is configured.
const TabstopWidth = 4

// Width makes a best-effort guess at the width of s when displayed on a
// terminal. Tabstops justify text to the next column that is a multiple of
// tabstop.
func Width(s string, tabstop int) int {
	r := Ruler{Tabstop: tabstop}
	r.Advance(s)
	return r.Column()
}

// Ruler tracks the state of an ongoing measurement of a single line.
//
// Being able to stop in the middle of a line and continue later lets the
// lexer measure each token once, rather than re-measuring the line from its
// start.
//
// A zero Ruler is ready to use.
type Ruler struct {
	// The width of a tabstop in columns. If zero, TabstopWidth is used.
	Tabstop int

	column int
	utf16  int
}

// Reset moves the ruler back to the start of a line.
func (r *Ruler) Reset() {
	r.column = 0
	r.utf16 = 0
}

// Advance measures text, which must not contain a newline.
func (r *Ruler) Advance(text string) {
	tabstop := r.Tabstop
	if tabstop <= 0 {
		tabstop = TabstopWidth
	}

	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			r.column += tabstop - r.column%tabstop
			r.utf16++
		}
		r.column += uniseg.StringWidth(chunk)
		for _, c := range chunk {
			if n := utf16.RuneLen(c); n > 0 {
				r.utf16 += n
			} else {
				// Invalid UTF-8 decodes to U+FFFD.
				r.utf16++
			}
		}
	}
}

// Column returns the zero-based display column measured so far.
func (r *Ruler) Column() int {
	return r.column
}

// UTF16 returns the number of UTF-16 code units measured so far.
func (r *Ruler) UTF16() int {
	return r.utf16
}
