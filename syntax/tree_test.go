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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// buildTree assembles a tree for
//
//	syntax = "proto3";
//	service S {}
//
// by hand, offset by the byte order mark.
func buildTree(t *testing.T) *Tree {
	t.Helper()

	b := NewBuilder("test.proto", true)
	b.Append(NewSyntaxDecl([]Element{
		tok(Syntax, "syntax", 3, space(9, " ")),
		tok(Equals, "=", 10, space(11, " ")),
		tok(StringLiteral, `"proto3"`, 12),
		tok(Semicolon, ";", 20, eol(21)),
	}))
	b.Append(NewServiceDecl([]Element{
		tok(Service, "service", 22, space(29, " ")),
		tok(Identifier, "S", 30, space(31, " ")),
		tok(LeftBrace, "{", 32),
		tok(RightBrace, "}", 33, eol(34)),
	}))
	return b.Finish(NewToken(EndOfFile, "", Position{Offset: 35, Line: 3, Column: 1}, nil, nil))
}

func TestTreeSource(t *testing.T) {
	t.Parallel()

	tree := buildTree(t)
	want := "\xEF\xBB\xBFsyntax = \"proto3\";\nservice S {}\n"
	assert.Equal(t, want, tree.Source())
	assert.Equal(t, want, tree.Source())
	assert.True(t, tree.HasByteOrderMark())
	assert.Equal(t, "test.proto", tree.Path())

	n := 0
	for range tree.Tokens() {
		n++
	}
	assert.Equal(t, 9, n)
}

func TestTreeAccessors(t *testing.T) {
	t.Parallel()

	tree := buildTree(t)
	require.NotNil(t, tree.Syntax())
	assert.Equal(t, LevelProto3, tree.Level())
	assert.Equal(t, `"proto3"`, tree.Syntax().Value().Text())
	assert.Nil(t, tree.Package())
	require.Len(t, tree.Services(), 1)
	assert.Equal(t, "S", tree.Services()[0].Name())
	assert.Empty(t, tree.Services()[0].Methods())

	assert.Equal(t, Span{Start: 3, End: 22}, tree.Decls()[0].Span())
	assert.Equal(t, Span{Start: 22, End: 35}, tree.Decls()[1].Span())
}

func TestDeclarationAt(t *testing.T) {
	t.Parallel()

	tree := buildTree(t)
	assert.Nil(t, tree.DeclarationAt(0))
	assert.Equal(t, NodeSyntax, tree.DeclarationAt(3).NodeKind())
	assert.Equal(t, NodeSyntax, tree.DeclarationAt(21).NodeKind())
	assert.Equal(t, NodeService, tree.DeclarationAt(22).NodeKind())
	assert.Equal(t, NodeService, tree.DeclarationAt(34).NodeKind())
	assert.Nil(t, tree.DeclarationAt(35))
}

func TestEmptyTreeIsProto2(t *testing.T) {
	t.Parallel()

	tree := NewBuilder("empty.proto", false).Finish(NewToken(EndOfFile, "", Position{Line: 1, Column: 1}, nil, nil))
	assert.Equal(t, LevelProto2, tree.Level())
	assert.Empty(t, tree.Source())
	assert.Nil(t, tree.Syntax())
}

func TestSyntaxDeclLevel(t *testing.T) {
	t.Parallel()

	kw := tok(Syntax, "syntax", 0)
	tests := []struct {
		name  string
		value Element
		want  Level
	}{
		{name: "proto2", value: tok(StringLiteral, `"proto2"`, 7), want: LevelProto2},
		{name: "invalid", value: tok(StringLiteral, `"proto4"`, 7), want: LevelProto2},
		{name: "missing", value: NewMissing(StringLiteral, Position{Offset: 7, Line: 1}, nil), want: LevelMissing},
		{name: "absent", value: tok(EndOfFile, "", 7), want: LevelMissing},
	}
	for _, tt := range tests {
		decl := NewSyntaxDecl([]Element{kw, tt.value})
		assert.Equal(t, tt.want, decl.Level(), tt.name)
	}
}

func TestPackageName(t *testing.T) {
	t.Parallel()

	decl := NewPackageDecl([]Element{
		tok(Package, "package", 0),
		tok(Identifier, "foo", 8),
		tok(Dot, ".", 11),
		tok(Service, "service", 12),
		tok(Dot, ".", 19),
		NewMissing(Identifier, Position{Offset: 20, Line: 1}, nil),
		tok(Semicolon, ";", 20),
		NewSkipped([]Token{tok(Identifier, "junk", 21)}),
	})
	assert.Equal(t, "foo.service", decl.Name())
	assert.Empty(t, NewPackageDecl([]Element{tok(Package, "package", 0)}).Name())
}

func TestMethodDecl(t *testing.T) {
	t.Parallel()

	method := NewMethodDecl([]Element{
		tok(Rpc, "rpc", 0),
		tok(Identifier, "Watch", 4),
		tok(LeftParen, "(", 9),
		tok(Dot, ".", 10),
		tok(Identifier, "pkg", 11),
		tok(Dot, ".", 14),
		tok(Identifier, "Req", 15),
		tok(RightParen, ")", 18),
		tok(Returns, "returns", 20),
		tok(LeftParen, "(", 28),
		tok(Stream, "stream", 29),
		tok(Identifier, "Resp", 36),
		tok(RightParen, ")", 40),
		tok(Semicolon, ";", 41),
	})
	assert.Equal(t, "Watch", method.Name())
	assert.Equal(t, ".pkg.Req", method.Input())
	assert.Equal(t, "Resp", method.Output())
	assert.False(t, method.ClientStreaming())
	assert.True(t, method.ServerStreaming())

	// A lone `stream` is a type name.
	method = NewMethodDecl([]Element{
		tok(Rpc, "rpc", 0),
		tok(Identifier, "M", 4),
		tok(LeftParen, "(", 5),
		tok(Stream, "stream", 6),
		tok(RightParen, ")", 12),
	})
	assert.Equal(t, "stream", method.Input())
	assert.False(t, method.ClientStreaming())
}

func TestToFileDescriptorProto(t *testing.T) {
	t.Parallel()

	b := NewBuilder("svc.proto", false)
	b.Append(NewPackageDecl([]Element{
		tok(Package, "package", 0),
		tok(Identifier, "acme", 8),
		tok(Semicolon, ";", 12, eol(13)),
	}))
	b.Append(NewServiceDecl([]Element{
		tok(Service, "service", 14),
		tok(Identifier, "Greeter", 22),
		tok(LeftBrace, "{", 30),
		NewMethodDecl([]Element{
			tok(Rpc, "rpc", 31),
			tok(Identifier, "Hello", 35),
			tok(LeftParen, "(", 40),
			tok(Stream, "stream", 41),
			tok(Identifier, "Req", 48),
			tok(RightParen, ")", 51),
			tok(Returns, "returns", 53),
			tok(LeftParen, "(", 61),
			tok(Identifier, "Resp", 62),
			tok(RightParen, ")", 66),
			tok(Semicolon, ";", 67),
		}),
		tok(RightBrace, "}", 68, eol(69)),
	}))
	tree := b.Finish(Token{})

	want := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("svc.proto"),
		Package: proto.String("acme"),
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("Greeter"),
			Method: []*descriptorpb.MethodDescriptorProto{{
				Name:            proto.String("Hello"),
				InputType:       proto.String("Req"),
				OutputType:      proto.String("Resp"),
				ClientStreaming: proto.Bool(true),
			}},
		}},
	}
	got := tree.ToFileDescriptorProto("svc.proto")
	assert.True(t, proto.Equal(want, got), "got %v", got)
}
