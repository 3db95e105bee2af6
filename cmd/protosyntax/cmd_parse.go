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
	"runtime"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/protosyntax/syntax"
)

// errDiagnostics is returned by commands that reported syntax errors. The
// errors themselves have already been printed.
var errDiagnostics = errors.New("syntax errors found")

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [files or globs...]",
		Short: "Parse files and report syntax errors",
		Long: "Parse each file and print a one-line summary of it. With no arguments, " +
			"the files selected by the configuration are parsed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := a.inputs(args)
			if err != nil {
				return err
			}

			summaries := make([]string, len(paths))
			var failed atomic.Bool
			g := new(errgroup.Group)
			g.SetLimit(runtime.GOMAXPROCS(0))
			readErrs := make([]error, len(paths))
			for i, path := range paths {
				g.Go(func() error {
					tree, count, err := a.parse(path, cmd.ErrOrStderr())
					if err != nil {
						readErrs[i] = err
						return nil
					}
					if count > 0 {
						failed.Store(true)
					}
					summaries[i] = summarize(path, tree)
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			for _, line := range summaries {
				if line != "" {
					fmt.Fprintln(out, line)
				}
			}
			if err := errors.Join(readErrs...); err != nil {
				return err
			}
			if failed.Load() {
				return errDiagnostics
			}
			return nil
		},
	}
}

// inputs expands the command line arguments into files. Arguments that are
// glob patterns are matched against the file system; with no arguments, the
// configured sources are used.
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) == 0 {
		paths, err := a.cfg.Sources()
		if err != nil {
			return nil, err
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no files match %s", strings.Join(a.cfg.Files.Include, ", "))
		}
		return paths, nil
	}

	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths, nil
}

// summarize describes a parsed file in one line.
func summarize(path string, tree *syntax.Tree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", path, tree.Level())
	if pkg := tree.Package(); pkg != nil && pkg.Name() != "" {
		fmt.Fprintf(&b, ", package %s", pkg.Name())
	}
	services := tree.Services()
	methods := 0
	for _, s := range services {
		methods += len(s.Methods())
	}
	fmt.Fprintf(&b, ", %d %s, %d %s", len(services), plural(len(services), "service"), methods, plural(methods, "method"))
	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
