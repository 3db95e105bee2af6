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

package reporter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bufbuild/protosyntax/syntax"
)

// Diagnostic is a single reported error.
type Diagnostic struct {
	Message string
	Pos     syntax.Position
}

// String implements [fmt.Stringer].
func (d Diagnostic) String() string {
	return fmt.Sprintf("%v: %s", d.Pos, d.Message)
}

// Collector is a [Provider] that records diagnostics in memory.
//
// A zero Collector is ready to use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// EmitError implements [Provider].
func (c *Collector) EmitError(message string, pos syntax.Position) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diags = append(c.diags, Diagnostic{Message: message, Pos: pos})
}

// Diagnostics returns a copy of everything collected so far, in the order it
// was reported.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of diagnostics collected.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.diags)
}

// String renders every diagnostic on its own line.
func (c *Collector) String() string {
	var b strings.Builder
	for _, d := range c.Diagnostics() {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
