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

// Package fuzztesting contains helpers for fuzz tests.
package fuzztesting

import (
	"testing"
	"time"
)

// Budget is how long a single fuzz input may take to process. Parsing is
// linear, so anything slower than this is treated as a hang.
func Budget() time.Duration {
	if isRace {
		// The race detector has been observed to slow parsing down by 10x
		// or more.
		return 20 * time.Second
	}
	return 2 * time.Second
}

// WithDeadline calls fn and fails t if it does not return within [Budget].
//
// fn runs on its own goroutine, so that a hang is reported instead of
// stalling the fuzzer. It must not call t.FailNow.
func WithDeadline(t testing.TB, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()

	timer := time.NewTimer(Budget())
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		t.Fatalf("input took too long to process (> %v)", Budget())
	}
}
