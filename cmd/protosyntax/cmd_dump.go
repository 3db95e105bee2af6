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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/protosyntax/syntax"
)

func newDumpCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump file",
		Short: "Print the syntax tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := a.parse(args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return dump(cmd.OutOrStdout(), tree, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|yaml|json|msgpack)")
	return cmd
}

func dump(w io.Writer, tree *syntax.Tree, format string) error {
	switch format {
	case "text":
		return tree.Dump(w)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newFileDump(tree)); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newFileDump(tree))
	case "msgpack":
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(newFileDump(tree))
	default:
		return fmt.Errorf("unknown format %q; want text, yaml, json or msgpack", format)
	}
}

// fileDump and friends are the structured form of a tree, for the
// machine-readable dump formats.
type fileDump struct {
	Path          string     `json:"path" yaml:"path"`
	ByteOrderMark bool       `json:"byte_order_mark,omitempty" yaml:"byte_order_mark,omitempty"`
	Decls         []nodeDump `json:"decls" yaml:"decls"`
	EOF           *tokenDump `json:"eof,omitempty" yaml:"eof,omitempty"`
}

type nodeDump struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Children []elemDump `json:"children" yaml:"children"`
}

// elemDump holds either a token or a nested node.
type elemDump struct {
	Token *tokenDump `json:"token,omitempty" yaml:"token,omitempty"`
	Node  *nodeDump  `json:"node,omitempty" yaml:"node,omitempty"`
}

type tokenDump struct {
	Kind     string       `json:"kind" yaml:"kind"`
	Variant  string       `json:"variant" yaml:"variant"`
	Text     sourceText   `json:"text,omitempty" yaml:"text,omitempty"`
	Line     int          `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int          `json:"column,omitempty" yaml:"column,omitempty"`
	Leading  []triviaDump `json:"leading,omitempty" yaml:"leading,omitempty"`
	Trailing []triviaDump `json:"trailing,omitempty" yaml:"trailing,omitempty"`
	Skipped  []tokenDump  `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

type triviaDump struct {
	Kind string     `json:"kind" yaml:"kind"`
	Text sourceText `json:"text" yaml:"text"`
}

// sourceText is text copied from a file. YAML writes it double-quoted: a
// block scalar cannot hold text made only of line breaks and spaces.
type sourceText string

// MarshalYAML implements [yaml.Marshaler].
func (s sourceText) MarshalYAML() (any, error) {
	if !utf8.ValidString(string(s)) {
		// Encoded as !!binary.
		return string(s), nil
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: string(s),
	}, nil
}

func newFileDump(tree *syntax.Tree) fileDump {
	out := fileDump{
		Path:          tree.Path(),
		ByteOrderMark: tree.HasByteOrderMark(),
		Decls:         make([]nodeDump, 0, len(tree.Decls())),
	}
	for _, decl := range tree.Decls() {
		out.Decls = append(out.Decls, newNodeDump(decl))
	}
	if eof := tree.EOF(); !eof.IsZero() {
		t := newTokenDump(eof)
		out.EOF = &t
	}
	return out
}

func newNodeDump(n syntax.Node) nodeDump {
	out := nodeDump{Kind: n.NodeKind().String()}
	for _, child := range n.Children() {
		switch child := child.(type) {
		case syntax.Token:
			t := newTokenDump(child)
			out.Children = append(out.Children, elemDump{Token: &t})
		case syntax.Node:
			nested := newNodeDump(child)
			out.Children = append(out.Children, elemDump{Node: &nested})
		}
	}
	return out
}

func newTokenDump(tok syntax.Token) tokenDump {
	out := tokenDump{
		Kind:    tok.Kind().GoString(),
		Variant: tok.Variant().String(),
		Text:    sourceText(tok.Text()),
	}
	if pos := tok.Pos(); pos.IsValid() {
		out.Line, out.Column = pos.Line, pos.Column
	}
	for _, inner := range tok.Skipped() {
		out.Skipped = append(out.Skipped, newTokenDump(inner))
	}
	for _, tr := range tok.Leading() {
		out.Leading = append(out.Leading, triviaDump{Kind: tr.Kind.GoString(), Text: sourceText(tr.Text)})
	}
	for _, tr := range tok.Trailing() {
		out.Trailing = append(out.Trailing, triviaDump{Kind: tr.Kind.GoString(), Text: sourceText(tr.Text)})
	}
	return out
}
