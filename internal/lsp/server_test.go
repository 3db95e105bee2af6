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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/bufbuild/protosyntax/syntax"
)

func pos(line, char int) protocol.Position {
	return protocol.Position{Line: uinteger(line), Character: uinteger(char)}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	s := New("test")
	uri := "file:///tmp/wide.proto"
	s.update(uri, "// 日本\n\t/* 😀 */ service Wide {}\n")
	doc, ok := s.document(uri)
	require.True(t, ok)

	// The tab counts as one unit and the emoji as two.
	service := doc.tree.Services()[0]
	assert.Equal(t, pos(1, 10), position(service.Keyword().Pos()))
	assert.Equal(t, protocol.Range{Start: pos(1, 10), End: pos(1, 17)}, tokenRange(service.Keyword()))
	assert.Equal(t, protocol.Range{Start: pos(1, 18), End: pos(1, 22)}, tokenRange(service.NameToken()))

	syms := symbols(doc.tree)
	require.Len(t, syms, 1)
	assert.Equal(t, protocol.Range{Start: pos(1, 10), End: pos(1, 25)}, syms[0].Range)

	// Positions that refer to no line clamp to the start of the document.
	assert.Equal(t, protocol.Range{}, textRange(syntax.Position{}, ""))
}

func TestUInteger(t *testing.T) {
	t.Parallel()

	assert.Equal(t, protocol.UInteger(7), uinteger(7))
	assert.Equal(t, protocol.UInteger(0), uinteger(-7))
	assert.Equal(t, protocol.UInteger(^uint32(0)), uinteger(1<<40))
}

// notifications records what a server sends its client.
type notifications struct {
	methods []string
	params  []any
}

func (n *notifications) context() *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			n.methods = append(n.methods, method)
			n.params = append(n.params, params)
		},
	}
}

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	s := New("test")
	var sent notifications
	uri := "file:///tmp/foo.proto"

	err := s.didOpen(sent.context(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:  uri,
			Text: "syntax = \"proto3\";\npackage foo bar;\n",
		},
	})
	require.NoError(t, err)
	require.Equal(t, []string{protocol.ServerTextDocumentPublishDiagnostics}, sent.methods)

	params, ok := sent.params[0].(protocol.PublishDiagnosticsParams)
	require.True(t, ok)
	assert.Equal(t, uri, params.URI)
	require.Len(t, params.Diagnostics, 1)

	diag := params.Diagnostics[0]
	assert.Equal(t, "missing `;` in package declaration; found identifier", diag.Message)
	assert.Equal(t, protocol.Range{Start: pos(1, 12), End: pos(1, 15)}, diag.Range)
	require.NotNil(t, diag.Severity)
	assert.Equal(t, protocol.DiagnosticSeverity(protocol.DiagnosticSeverityError), *diag.Severity)

	// Fixing the file clears the diagnostics.
	err = s.didChange(sent.context(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "syntax = \"proto3\";\npackage foo;\n"},
		},
	})
	require.NoError(t, err)
	require.Len(t, sent.params, 2)
	params, ok = sent.params[1].(protocol.PublishDiagnosticsParams)
	require.True(t, ok)
	assert.Empty(t, params.Diagnostics)

	err = s.didClose(sent.context(), &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	_, ok = s.document(uri)
	assert.False(t, ok)
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	s := New("test")
	uri := "file:///tmp/greeter.proto"
	s.update(uri, `syntax = "proto3";
package greet.v1;

service Greeter {
  rpc SayHello(HelloRequest) returns (stream HelloResponse);
}
`)

	result, err := s.documentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	syms, ok := result.([]protocol.DocumentSymbol)
	require.True(t, ok)
	require.Len(t, syms, 2)

	assert.Equal(t, "greet.v1", syms[0].Name)
	assert.Equal(t, protocol.SymbolKindPackage, syms[0].Kind)
	assert.Equal(t, pos(1, 0), syms[0].Range.Start)

	service := syms[1]
	assert.Equal(t, "Greeter", service.Name)
	assert.Equal(t, protocol.SymbolKindInterface, service.Kind)
	assert.Equal(t, protocol.Range{Start: pos(3, 8), End: pos(3, 15)}, service.SelectionRange)
	assert.Equal(t, pos(3, 0), service.Range.Start)
	assert.Equal(t, pos(5, 1), service.Range.End)

	require.Len(t, service.Children, 1)
	method := service.Children[0]
	assert.Equal(t, "SayHello", method.Name)
	assert.Equal(t, protocol.SymbolKindMethod, method.Kind)
	require.NotNil(t, method.Detail)
	assert.Equal(t, "(HelloRequest) returns (stream HelloResponse)", *method.Detail)
	assert.Equal(t, pos(4, 2), method.Range.Start)

	result, err = s.documentSymbol(nil, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///tmp/unknown.proto"},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestURIToPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/tmp/foo.proto", uriToPath("file:///tmp/foo.proto"))
	assert.Equal(t, "/tmp/a b.proto", uriToPath("file:///tmp/a%20b.proto"))
	assert.Equal(t, "untitled:1", uriToPath("untitled:1"))
}
