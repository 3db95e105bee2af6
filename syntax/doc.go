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

// Package syntax defines the lossless syntax tree produced by the parser.
//
// Every byte of a parsed file belongs to exactly one [Token] or [Trivia] in
// its [Tree], so the file can be reconstructed exactly with [Tree.Source],
// even when it contained errors. Error recovery is recorded in the tree with
// two kinds of synthesized token: missing tokens, which stand in for
// required symbols that were absent, and skipped tokens, which wrap source
// tokens that played no part in the grammar.
package syntax

//go:generate go run github.com/bufbuild/protosyntax/internal/enum kind.yaml
