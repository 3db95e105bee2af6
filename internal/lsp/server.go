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

// Package lsp is a language server that reports parse diagnostics and
// outlines for open .proto files.
package lsp

import (
	"sync"

	"github.com/tidwall/btree"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/bufbuild/protosyntax/parser"
	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

const serverName = "protosyntax"

// Server is a language server over stdio.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	log     commonlog.Logger

	mu   sync.Mutex
	docs btree.Map[protocol.DocumentUri, *document]
}

// document is the last parse of an open file.
type document struct {
	tree  *syntax.Tree
	diags []reporter.Diagnostic
}

// New returns a server that reports version to clients.
func New(version string) *Server {
	s := &Server{
		version: version,
		log:     commonlog.GetLogger("protosyntax.lsp"),
	}
	s.handler = protocol.Handler{
		Initialize:                 s.initialize,
		Initialized:                s.initialized,
		Shutdown:                   s.shutdown,
		SetTrace:                   s.setTrace,
		TextDocumentDidOpen:        s.didOpen,
		TextDocumentDidChange:      s.didChange,
		TextDocumentDidClose:       s.didClose,
		TextDocumentDocumentSymbol: s.documentSymbol,
	}
	s.server = server.NewServer(&s.handler, serverName, false)
	return s
}

// RunStdio serves a single client on stdin and stdout until it exits.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.ClientInfo != nil {
		s.log.Infof("initializing for %s", params.ClientInfo.Name)
	}

	capabilities := s.handler.CreateServerCapabilities()
	openClose := true
	change := protocol.TextDocumentSyncKind(protocol.TextDocumentSyncKindFull)
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &openClose,
		Change:    &change,
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(*glsp.Context, *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(*glsp.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Infof("shutting down with %d open documents", s.docs.Len())
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.update(params.TextDocument.URI, params.TextDocument.Text)
	s.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Only full syncs are advertised, so the last change is the whole text.
	switch change := params.ContentChanges[len(params.ContentChanges)-1].(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		doc := s.update(params.TextDocument.URI, change.Text)
		s.publish(ctx, params.TextDocument.URI, doc)
	default:
		s.log.Warningf("ignoring incremental change to %s", params.TextDocument.URI)
	}
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	s.docs.Delete(params.TextDocument.URI)
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) documentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, ok := s.document(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	return symbols(doc.tree), nil
}

// update parses a new version of a document.
func (s *Server) update(uri protocol.DocumentUri, text string) *document {
	var diags reporter.Collector
	tree, err := parser.Parse(uriToPath(uri), []byte(text), &diags)
	if err != nil {
		s.log.Debugf("%s: %v", uri, err)
	}
	doc := &document{
		tree:  tree,
		diags: diags.Diagnostics(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs.Set(uri, doc)
	return doc
}

func (s *Server) document(uri protocol.DocumentUri) (*document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs.Get(uri)
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *document) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc.tree, doc.diags),
	})
}
