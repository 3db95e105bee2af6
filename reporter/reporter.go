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

// Package reporter contains the types used for reporting diagnostics from
// the lexer and parser.
//
// Diagnostics flow into a [Provider], which decides how to present them. The
// lexer and parser never format or print diagnostics themselves.
package reporter

import (
	"fmt"
	"sync"

	"github.com/bufbuild/protosyntax/syntax"
)

// Provider receives diagnostics.
//
// Implementations must be safe to call from the goroutine running the parse;
// a Provider shared between concurrent parses must synchronize itself.
type Provider interface {
	// EmitError reports an error at pos. pos may be invalid if the error
	// does not refer to a particular location.
	EmitError(message string, pos syntax.Position)
}

// ProviderFunc adapts a function into a [Provider].
type ProviderFunc func(message string, pos syntax.Position)

// EmitError implements [Provider].
func (f ProviderFunc) EmitError(message string, pos syntax.Position) {
	f(message, pos)
}

// Discard is a Provider that drops every diagnostic.
var Discard Provider = ProviderFunc(func(string, syntax.Position) {})

// Limit returns a Provider that forwards the first n diagnostics to p and
// drops the rest. If n is not positive, p is returned as is.
//
// The returned Provider is meant for a single parse, and is not safe for
// concurrent use.
func Limit(p Provider, n int) Provider {
	if n <= 0 {
		return p
	}
	seen := 0
	return ProviderFunc(func(message string, pos syntax.Position) {
		seen++
		switch {
		case seen <= n:
			p.EmitError(message, pos)
		case seen == n+1:
			p.EmitError(fmt.Sprintf("too many errors; only the first %d are shown", n), syntax.Position{})
		}
	})
}

// Handler forwards diagnostics to a [Provider] and keeps track of what was
// reported during one parse.
//
// A nil *Handler is valid and discards everything.
type Handler struct {
	provider Provider

	mu    sync.Mutex
	count int
	err   error
}

// NewHandler returns a handler that reports to p. If p is nil, diagnostics
// are discarded.
func NewHandler(p Provider) *Handler {
	if p == nil {
		p = Discard
	}
	return &Handler{provider: p}
}

// HandleErrorf reports a recoverable error at pos.
func (h *Handler) HandleErrorf(pos syntax.Position, format string, args ...any) {
	if h == nil {
		return
	}
	h.HandleError(Errorf(pos, format, args...))
}

// HandleError reports a recoverable error.
func (h *Handler) HandleError(err ErrorWithPos) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.count++
	h.provider.EmitError(message(err), err.GetPosition())
}

// message returns the text of err without its position.
func message(err ErrorWithPos) string {
	if m, ok := err.(interface{ Message() string }); ok {
		return m.Message()
	}
	if u := err.Unwrap(); u != nil {
		return u.Error()
	}
	return err.Error()
}

// Fatal reports an error that ends the parse, and returns it. Only the first
// fatal error is remembered by [Handler.Error].
func (h *Handler) Fatal(err ErrorWithPos) error {
	if h == nil {
		return err
	}
	h.HandleError(err)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err == nil {
		h.err = err
	}
	return err
}

// ErrorCount returns the number of errors reported so far, fatal or not.
func (h *Handler) ErrorCount() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.count
}

// Error returns the first fatal error, or nil if the parse was not cut
// short. Recoverable errors do not show up here; see [Handler.ErrorCount].
func (h *Handler) Error() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// Summary returns an error describing how many errors were reported, or nil
// if there were none.
func (h *Handler) Summary() error {
	switch n := h.ErrorCount(); n {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%w: 1 error", ErrInvalidSource)
	default:
		return fmt.Errorf("%w: %d errors", ErrInvalidSource, n)
	}
}
