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

// Package parser contains the logic for parsing protobuf source code into a
// lossless syntax tree.
//
// The parser is recursive descent over the tokens produced by the lexer
// package, with one token of lookahead. It never gives up on malformed
// input: required symbols that are absent are synthesized as missing tokens,
// and input that cannot be understood is kept as skipped tokens, so that
// the source of the resulting tree is always exactly the input. Problems are
// reported to a [reporter.Provider] as they are found.
//
// Only syntax, package and service declarations (with their rpc methods)
// are understood. Other declarations are kept verbatim as
// [syntax.UnknownDecl] nodes.
package parser
