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

package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekAndAdvance(t *testing.T) {
	t.Parallel()

	s := New([]byte("ab"))
	b, ok := s.Peek(1)
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)
	b, ok = s.Peek(2)
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)
	_, ok = s.Peek(3)
	assert.False(t, ok)
	_, ok = s.Peek(0)
	assert.False(t, ok)

	assert.Equal(t, byte(0), s.Current())
	assert.Equal(t, byte('a'), s.Advance())
	assert.Equal(t, byte('a'), s.Current())
	assert.Equal(t, 1, s.Offset())
	assert.False(t, s.AtEOF())

	s.Discard(10)
	assert.True(t, s.AtEOF())
	assert.Equal(t, 2, s.Offset())
	_, ok = s.Peek(1)
	assert.False(t, ok)
}

func TestByteOrderMark(t *testing.T) {
	t.Parallel()

	s := New([]byte("\xEF\xBB\xBFsyntax"))
	assert.True(t, s.DiscardByteOrderMark())
	assert.Equal(t, 3, s.Offset())
	assert.False(t, s.DiscardByteOrderMark())
	assert.True(t, s.HasPrefix("syntax"))

	s = New([]byte("\xEF\xBB"))
	assert.False(t, s.DiscardByteOrderMark())
	assert.Equal(t, 0, s.Offset())

	s = New(nil)
	assert.False(t, s.DiscardByteOrderMark())
	assert.True(t, s.AtEOF())
}

func TestTextIsCopied(t *testing.T) {
	t.Parallel()

	buf := []byte("hello world")
	s := New(buf)
	s.Discard(5)
	text := s.Text(0, s.Offset())
	buf[0] = 'j'
	assert.Equal(t, "hello", text)
	assert.Equal(t, " world", s.Rest())
	assert.True(t, s.AtEOF())
}
