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

package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bufbuild/protosyntax/internal/corpora"
	"github.com/bufbuild/protosyntax/reporter"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "PROTOSYNTAX_REFRESH",
		Extension: "proto",
		Outputs: []corpora.Output{
			{Extension: "decls"},
			{Extension: "stderr"},
		},
		Test: func(t *testing.T, path, text string) []string {
			var diags reporter.Collector
			tree, _ := Parse(path, []byte(text), &diags)
			if got := tree.Source(); got != text {
				t.Errorf("round trip mismatch:\n%s", corpora.Diff(got, text))
			}

			var decls strings.Builder
			for _, decl := range tree.Decls() {
				fmt.Fprintf(&decls, "%s %q\n", decl.NodeKind(), decl.Source())
			}
			if eof := tree.EOF(); !eof.IsZero() {
				fmt.Fprintf(&decls, "end of file %q\n", eof.Source())
			}
			return []string{decls.String(), diags.String()}
		},
	}
	corpus.Run(t)
}
