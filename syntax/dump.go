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

// Dump writes a listing of t to w: one line per declaration, token and
// trivia, indented to show nesting. It is meant for debugging and for golden
// tests, and its format is not stable.
func (t *Tree) Dump(w io.Writer) error {
	d := &dumper{w: w}
	if t.bom {
		d.printf(0, "byte order mark")
	}
	for _, decl := range t.decls {
		d.node(0, decl)
	}
	if !t.eof.IsZero() {
		d.token(0, t.eof)
	}
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (d *dumper) node(depth int, n Node) {
	d.printf(depth, "%s", n.NodeKind())
	for _, child := range n.Children() {
		switch child := child.(type) {
		case Token:
			d.token(depth+1, child)
		case Node:
			d.node(depth+1, child)
		}
	}
}

func (d *dumper) token(depth int, tok Token) {
	switch tok.Variant() {
	case VariantMissing:
		d.printf(depth, "missing %#v @ %v", tok.Kind(), tok.Pos())
	case VariantSkipped:
		d.printf(depth, "skipped")
		for _, inner := range tok.Skipped() {
			d.token(depth+1, inner)
		}
		return
	default:
		d.printf(depth, "%#v %q @ %v", tok.Kind(), tok.Text(), tok.Pos())
	}
	for _, tr := range tok.Leading() {
		d.printf(depth+1, "leading %#v %q", tr.Kind, tr.Text)
	}
	for _, tr := range tok.Trailing() {
		d.printf(depth+1, "trailing %#v %q", tr.Kind, tr.Text)
	}
}
