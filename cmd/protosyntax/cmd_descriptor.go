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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

func newDescriptorCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "descriptor file",
		Short: "Print the file descriptor summarizing a file, as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := a.parse(args[0], cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fd := tree.ToFileDescriptorProto(filepath.ToSlash(args[0]))
			data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(fd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
