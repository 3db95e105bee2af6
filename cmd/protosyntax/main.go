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

// Command protosyntax parses .proto files into lossless syntax trees,
// reporting syntax errors.
package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/bufbuild/protosyntax/internal/config"
	"github.com/bufbuild/protosyntax/parser"
	"github.com/bufbuild/protosyntax/reporter"
	"github.com/bufbuild/protosyntax/syntax"
)

// version is set at link time.
var version = "devel"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the persistent flags shared by every command.
type flags struct {
	color   string
	config  string
	verbose int
	timings bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	cfg     config.Config
	color   bool
	timings bool
	log     commonlog.Logger

	// Guards writes to stderr, which is shared by concurrent parses.
	stderrMu sync.Mutex
}

func newRootCommand() *cobra.Command {
	var f flags
	a := &app{}

	root := &cobra.Command{
		Use:           "protosyntax",
		Short:         "Lossless parser for Protobuf source files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, f)
		},
	}
	root.PersistentFlags().StringVar(&f.color, "color", "", "colorize diagnostics (auto|always|never); overrides the config file")
	root.PersistentFlags().StringVar(&f.config, "config", "", "path to a "+config.FileName+" file; by default one is searched for upward from the working directory")
	root.PersistentFlags().CountVarP(&f.verbose, "verbose", "v", "log more; may be repeated")
	root.PersistentFlags().BoolVar(&f.timings, "timings", false, "show timing information")

	root.AddCommand(
		newParseCommand(a),
		newCheckCommand(a),
		newDumpCommand(a),
		newDescriptorCommand(a),
		newLSPCommand(),
	)
	return root
}

// setup loads the configuration and applies the persistent flags.
func (a *app) setup(cmd *cobra.Command, f flags) error {
	commonlog.Configure(f.verbose, nil)
	a.log = commonlog.GetLogger("protosyntax")

	var err error
	if f.config != "" {
		a.cfg, err = config.Load(f.config)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}
	if a.cfg.Path != "" {
		a.log.Debugf("using configuration from %s", a.cfg.Path)
	}

	mode := a.cfg.Diagnostics.Color
	if f.color != "" {
		if mode, err = config.ParseColorMode(f.color); err != nil {
			return err
		}
	}
	a.color = mode.Enabled(isTerminal(cmd.ErrOrStderr()))
	color.NoColor = !a.color
	a.timings = f.timings
	return nil
}

// parse reads and parses one file, reporting diagnostics to w. It returns
// the number of errors reported.
func (a *app) parse(path string, w io.Writer) (*syntax.Tree, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	console := reporter.NewConsole(path, reporter.WithWriter(w, &a.stderrMu), reporter.WithColor(a.color))
	var count int
	provider := reporter.ProviderFunc(func(message string, pos syntax.Position) {
		count++
		console.EmitError(message, pos)
	})

	start := time.Now()
	tree, err := parser.Parse(path, data, reporter.Limit(provider, a.cfg.Diagnostics.MaxErrors))
	if err != nil {
		a.log.Debugf("%s: parse stopped early: %v", path, err)
	}
	if a.timings {
		a.printTiming(w, path, time.Since(start))
	}
	return tree, count, nil
}

func (a *app) printTiming(w io.Writer, label string, d time.Duration) {
	a.stderrMu.Lock()
	defer a.stderrMu.Unlock()
	fmt.Fprintf(w, "%s: parsed in %.3f ms\n", label, float64(d)/float64(time.Millisecond))
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
