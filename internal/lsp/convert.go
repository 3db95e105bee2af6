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

package lsp

import (
	"fmt"
	"iter"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

// position converts a position measured by the lexer. Lines are zero-based
// in the protocol, and characters count UTF-16 code units.
func position(pos syntax.Position) protocol.Position {
	return protocol.Position{Line: uinteger(pos.Line - 1), Character: uinteger(pos.UTF16)}
}

// tokenRange returns the range covering tok's text.
func tokenRange(tok syntax.Token) protocol.Range {
	return textRange(tok.Pos(), tok.Text())
}

// textRange returns the range of text starting at pos, cut off at the end
// of its line.
func textRange(pos syntax.Position, text string) protocol.Range {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	var units int
	for _, r := range text {
		units += utf16.RuneLen(r)
	}
	end := pos
	end.UTF16 += units
	return protocol.Range{Start: position(pos), End: position(end)}
}

// uinteger converts a non-negative int for the protocol, saturating rather
// than wrapping on overflow.
func uinteger(n int) protocol.UInteger {
	v, err := safecast.Conv[protocol.UInteger](n)
	if err != nil {
		if n < 0 {
			return 0
		}
		return protocol.UInteger(^uint32(0))
	}
	return v
}

// diagnostics converts the diagnostics reported for a document. Each one
// covers the token it was reported at.
func diagnostics(tree *syntax.Tree, diags []reporter.Diagnostic) []protocol.Diagnostic {
	starts := make(map[int]syntax.Token)
	for tok := range naturalTokens(tree.Tokens()) {
		if tok.Text() != "" {
			starts[tok.Pos().Offset] = tok
		}
	}

	severity := protocol.DiagnosticSeverity(protocol.DiagnosticSeverityError)
	source := serverName
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		var text string
		if tok, ok := starts[d.Pos.Offset]; ok && d.Pos.IsValid() {
			text = tok.Text()
		}
		out = append(out, protocol.Diagnostic{
			Range:    textRange(d.Pos, text),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return out
}

// naturalTokens yields the natural tokens in seq, including those wrapped
// in skipped runs.
func naturalTokens(seq iter.Seq[syntax.Token]) iter.Seq[syntax.Token] {
	return func(yield func(syntax.Token) bool) {
		var visit func(syntax.Token) bool
		visit = func(tok syntax.Token) bool {
			if tok.IsSkipped() {
				for _, inner := range tok.Skipped() {
					if !visit(inner) {
						return false
					}
				}
				return true
			}
			if tok.IsNatural() {
				return yield(tok)
			}
			return true
		}
		for tok := range seq {
			if !visit(tok) {
				return
			}
		}
	}
}

// symbols lists the package, services and methods declared in tree.
func symbols(tree *syntax.Tree) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	if pkg := tree.Package(); pkg != nil && pkg.Name() != "" {
		out = append(out, symbol(pkg, pkg.Name(), protocol.SymbolKindPackage, pkg.Keyword()))
	}
	for _, service := range tree.Services() {
		if service.Name() == "" {
			continue
		}
		sym := symbol(service, service.Name(), protocol.SymbolKindInterface, service.NameToken())
		for _, method := range service.Methods() {
			if method.Name() == "" {
				continue
			}
			child := symbol(method, method.Name(), protocol.SymbolKindMethod, method.NameToken())
			detail := signature(method)
			child.Detail = &detail
			sym.Children = append(sym.Children, child)
		}
		out = append(out, sym)
	}
	return out
}

func symbol(n syntax.Node, name string, kind protocol.SymbolKind, selection syntax.Token) protocol.DocumentSymbol {
	// The range runs from the node's first token to the end of its last,
	// leaving out trivia.
	var first, last syntax.Token
	for tok := range naturalTokens(n.Tokens()) {
		if first.IsZero() {
			first = tok
		}
		last = tok
	}
	return protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          protocol.Range{Start: position(first.Pos()), End: tokenRange(last).End},
		SelectionRange: tokenRange(selection),
	}
}

// signature renders a method's types the way they are declared.
func signature(m *syntax.MethodDecl) string {
	stream := func(on bool) string {
		if on {
			return "stream "
		}
		return ""
	}
	return fmt.Sprintf("(%s%s) returns (%s%s)",
		stream(m.ClientStreaming()), m.Input(), stream(m.ServerStreaming()), m.Output())
}

// uriToPath returns the file path for a file: URI, or the URI itself for
// any other scheme.
func uriToPath(uri string) string {
	if !strings.HasPrefix(uri, "file://") {
		return uri
	}
	parsed, err := url.Parse(uri)
	if err != nil {
		return uri
	}
	return filepath.Clean(filepath.FromSlash(parsed.Path))
}
