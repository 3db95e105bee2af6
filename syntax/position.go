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

// Position is a location in a source file.
//
// The zero value is not a valid position: Line is always at least one for
// positions produced by the lexer.
type Position struct {
	// The byte offset from the start of the file, including any byte order
	// mark.
	Offset int
	// The one-based line number.
	Line int
	// The one-based column, measured in terminal cells. Tabs advance to the
	// next tabstop.
	Column int
	// The zero-based offset within the line in UTF-16 code units, as used by
	// editors that speak the language server protocol.
	UTF16 int
}

// At returns a position built from an explicit line and column, for callers
// that have no token to point at.
func At(line, column int) Position {
	return Position{Line: line, Column: column}
}

// IsValid returns whether this position refers to a line in a file.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	if !p.IsValid() {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
