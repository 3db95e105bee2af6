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

package interval

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	var m Index[int, string]
	require.True(t, m.Insert(0, 9, "syntax"))
	require.True(t, m.Insert(20, 29, "service"))
	require.True(t, m.Insert(10, 19, "package"))
	assert.Equal(t, 3, m.Len())

	tests := []struct {
		point int
		want  string
		ok    bool
	}{
		{point: 0, want: "syntax", ok: true},
		{point: 9, want: "syntax", ok: true},
		{point: 10, want: "package", ok: true},
		{point: 25, want: "service", ok: true},
		{point: 30},
		{point: -1},
	}
	for _, tt := range tests {
		e, ok := m.Get(tt.point)
		assert.Equal(t, tt.ok, ok, "point %d", tt.point)
		assert.Equal(t, tt.want, e.Value, "point %d", tt.point)
		if ok {
			assert.True(t, e.Contains(tt.point))
		}
	}

	var starts []int
	for e := range m.Entries() {
		starts = append(starts, e.Start)
	}
	assert.Equal(t, []int{0, 10, 20}, starts)
}

func TestIndexRejectsOverlap(t *testing.T) {
	t.Parallel()

	var m Index[int, int]
	require.True(t, m.Insert(10, 20, 1))

	for _, iv := range [][2]int{{5, 10}, {20, 25}, {12, 14}, {0, 30}} {
		assert.False(t, m.Insert(iv[0], iv[1], 2), "%v", iv)
	}
	assert.True(t, m.Insert(21, 21, 3))
	assert.True(t, m.Insert(0, 9, 4))

	var values []int
	for e := range m.Entries() {
		values = append(values, e.Value)
	}
	assert.True(t, slices.Equal([]int{4, 1, 3}, values))
}

func TestIndexGap(t *testing.T) {
	t.Parallel()

	var m Index[uint32, string]
	m.Insert(5, 7, "a")
	_, ok := m.Get(4)
	assert.False(t, ok)
	_, ok = m.Get(8)
	assert.False(t, ok)
}
