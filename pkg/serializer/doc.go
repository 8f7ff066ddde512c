// Copyright (c) 2026, The Sous Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer reads and writes the structured documents sous exchanges
// with users: recipe sources, CLI listings, and HTTP responses.
//
// # Formats
//
//	json   encoding/json, indented
//	yaml   gopkg.in/yaml.v3
//	table  flattened FIELD/VALUE columns via text/tabwriter, write-only
//
// FormatFromPath picks a format from a file extension (.json, .yaml/.yml,
// .table/.txt) and falls back to YAML, the native recipe format.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, listing); err != nil {
//	    return err
//	}
//
// Rendered documents are plain text and go through WriteOutput, which
// creates parent directories and writes to stdout when no path is given.
//
// # Reading
//
// ReadSource fetches raw bytes from a local path, an http(s) URL, or "-" for
// stdin. Remote reads go through HTTPReader, which bounds the response size
// and applies the client timeouts in pkg/defaults.
//
//	data, err := serializer.ReadSource(ctx, "https://example.com/pancakes.yaml")
//
// FromFile decodes a JSON or YAML file straight into a value:
//
//	cfg, err := serializer.FromFile[Config]("sous.yaml")
//
// # HTTP
//
// RespondJSON and RespondText write API responses. RespondJSON encodes the
// body before writing headers so an encoding failure becomes a clean 500.
package serializer
