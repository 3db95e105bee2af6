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

// Package scanner provides a byte cursor over an immutable input buffer.
//
// The scanner never decodes UTF-8; callers extract text with [Scanner.Text]
// once they know where a token ends.
package scanner

// utf8Bom is the byte sequence of a UTF-8 byte order mark.
var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Scanner is a cursor over a byte buffer. The buffer is borrowed for the
// lifetime of the scanner and is never written to.
type Scanner struct {
	data []byte
	pos  int // Index of the next unread byte.
}

// New returns a scanner positioned at the start of data.
func New(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Peek returns the byte lookahead positions ahead of the cursor, where 1 is
// the next unread byte. It returns false if that position is past the end of
// the buffer.
func (s *Scanner) Peek(lookahead int) (byte, bool) {
	i := s.pos + lookahead - 1
	if lookahead < 1 || i >= len(s.data) {
		return 0, false
	}
	return s.data[i], true
}

// Advance consumes and returns the next byte. The caller must ensure the
// scanner is not at the end of the buffer.
func (s *Scanner) Advance() byte {
	b := s.data[s.pos]
	s.pos++
	return b
}

// Discard consumes n bytes without inspecting them. It stops at the end of
// the buffer.
func (s *Scanner) Discard(n int) {
	s.pos = min(s.pos+n, len(s.data))
}

// Current returns the most recently consumed byte, or zero if nothing has
// been consumed yet.
func (s *Scanner) Current() byte {
	if s.pos == 0 {
		return 0
	}
	return s.data[s.pos-1]
}

// Offset returns the offset of the next unread byte.
func (s *Scanner) Offset() int {
	return s.pos
}

// Len returns the length of the underlying buffer.
func (s *Scanner) Len() int {
	return len(s.data)
}

// AtEOF returns whether every byte has been consumed.
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.data)
}

// HasPrefix returns whether the unread bytes begin with prefix.
func (s *Scanner) HasPrefix(prefix string) bool {
	rest := s.data[s.pos:]
	if len(rest) < len(prefix) {
		return false
	}
	return string(rest[:len(prefix)]) == prefix
}

// Text copies data[start:end] out of the buffer.
func (s *Scanner) Text(start, end int) string {
	return string(s.data[start:end])
}

// Rest copies every unread byte out of the buffer and consumes them.
func (s *Scanner) Rest() string {
	text := string(s.data[s.pos:])
	s.pos = len(s.data)
	return text
}

// DiscardByteOrderMark consumes a UTF-8 byte order mark if the scanner is
// at the very start of a buffer that begins with one.
func (s *Scanner) DiscardByteOrderMark() bool {
	if s.pos != 0 || !s.HasPrefix(string(utf8Bom)) {
		return false
	}
	s.Discard(len(utf8Bom))
	return true
}
