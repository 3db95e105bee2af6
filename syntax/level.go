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

// Level is the Protobuf dialect declared by a file's syntax declaration.
type Level byte

const (
	// LevelMissing means a syntax declaration was present but its value was
	// not.
	LevelMissing Level = iota
	LevelProto2
	LevelProto3
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case LevelMissing:
		return "missing"
	case LevelProto2:
		return "proto2"
	case LevelProto3:
		return "proto3"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel interprets the text of a string literal token, quotes included,
// as a syntax level. Either quote style is accepted. It returns false if the
// literal does not name a supported level.
func ParseLevel(literal string) (Level, bool) {
	if len(literal) < 2 {
		return LevelMissing, false
	}
	quote := literal[0]
	if (quote != '"' && quote != '\'') || literal[len(literal)-1] != quote {
		return LevelMissing, false
	}

	switch literal[1 : len(literal)-1] {
	case "proto2":
		return LevelProto2, true
	case "proto3":
		return LevelProto3, true
	default:
		return LevelMissing, false
	}
}
