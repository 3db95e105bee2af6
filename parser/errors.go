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

import "errors"

// ErrUnexpectedEOF is a sentinel error wrapped by the error [Parse] returns
// when the input ends in the middle of a declaration. The error the
// reporter receives is wrapped with the source position of the end of the
// file, and names the declaration and the symbol that was expected.
var ErrUnexpectedEOF = errors.New("unexpected end of file")
