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

package syntax

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// ToFileDescriptorProto summarizes the declarations this tree understands as
// a descriptor. Type names are copied as written; nothing is resolved.
// Missing names are left unset.
func (t *Tree) ToFileDescriptorProto(name string) *descriptorpb.FileDescriptorProto {
	fd := &descriptorpb.FileDescriptorProto{Name: proto.String(name)}

	if decl := t.Syntax(); decl != nil && decl.Level() != LevelMissing {
		fd.Syntax = proto.String(decl.Level().String())
	}
	if decl := t.Package(); decl != nil {
		if pkg := decl.Name(); pkg != "" {
			fd.Package = proto.String(pkg)
		}
	}

	for _, service := range t.Services() {
		sd := &descriptorpb.ServiceDescriptorProto{}
		if name := service.Name(); name != "" {
			sd.Name = proto.String(name)
		}
		for _, method := range service.Methods() {
			md := &descriptorpb.MethodDescriptorProto{}
			if name := method.Name(); name != "" {
				md.Name = proto.String(name)
			}
			if in := method.Input(); in != "" {
				md.InputType = proto.String(in)
			}
			if out := method.Output(); out != "" {
				md.OutputType = proto.String(out)
			}
			if method.ClientStreaming() {
				md.ClientStreaming = proto.Bool(true)
			}
			if method.ServerStreaming() {
				md.ServerStreaming = proto.Bool(true)
			}
			sd.Method = append(sd.Method, md)
		}
		fd.Service = append(fd.Service, sd)
	}
	return fd
}
