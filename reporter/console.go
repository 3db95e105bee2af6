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

package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"

	"github.com/bufbuild/protosyntax/syntax"
)

// Console is a [Provider] that prints each diagnostic as a line of the form
//
//	path(line,column): error: message
//
// which is the format most editors and build tools know how to link back to
// the source.
type Console struct {
	path  string
	color bool

	mu  *sync.Mutex
	out io.Writer
}

// ConsoleOption configures a [Console].
type ConsoleOption func(*Console)

// WithWriter sets where diagnostics are written. The default is os.Stderr.
//
// mu, if not nil, is held while writing, so that several consoles may share
// one writer.
func WithWriter(w io.Writer, mu *sync.Mutex) ConsoleOption {
	return func(c *Console) {
		c.out = w
		if mu != nil {
			c.mu = mu
		}
	}
}

// WithColor sets whether the severity is highlighted with ANSI colors.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.color = enabled
	}
}

// NewConsole returns a console provider for the file at path. The path is
// resolved to an absolute path once, here.
func NewConsole(path string, opts ...ConsoleOption) *Console {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	c := &Console{
		path: path,
		mu:   new(sync.Mutex),
		out:  os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the absolute path diagnostics are reported against.
func (c *Console) Path() string {
	return c.path
}

// EmitError implements [Provider].
func (c *Console) EmitError(message string, pos syntax.Position) {
	severity := "error"
	if c.color {
		severity = color.New(color.FgRed, color.Bold).Sprint(severity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if pos.IsValid() {
		fmt.Fprintf(c.out, "%s(%d,%d): %s: %s\n", c.path, pos.Line, pos.Column, severity, message)
	} else {
		fmt.Fprintf(c.out, "%s: %s: %s\n", c.path, severity, message)
	}
}
