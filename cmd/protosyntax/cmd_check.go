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
	"errors"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/bufbuild/protosyntax/parser"
	"github.com/bufbuild/protosyntax/reporter"
)

var errRoundTrip = errors.New("round trip failed")

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files or globs...]",
		Short: "Verify that files print back byte for byte",
		Long: "Parse each file, ignoring syntax errors, and compare the printed tree " +
			"against the original bytes. Any difference is a bug in the parser.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.inputs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed bool
			for _, path := range paths {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				tree, _ := parser.Parse(path, data, reporter.Discard)
				got := tree.Source()
				if got == string(data) {
					a.log.Debugf("%s: ok", path)
					continue
				}

				failed = true
				diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(data)),
					B:        difflib.SplitLines(got),
					FromFile: path,
					ToFile:   path + " (printed)",
					Context:  2,
				})
				if err != nil {
					return err
				}
				fmt.Fprint(out, diff)
			}
			if failed {
				return errRoundTrip
			}
			fmt.Fprintf(out, "%d %s round trip\n", len(paths), plural(len(paths), "file"))
			return nil
		},
	}
}
