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

package cookbook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sous-cookbook/sous/pkg/defaults"
	"github.com/sous-cookbook/sous/pkg/errors"
)

// Sink receives rendered documents.
type Sink interface {
	// Write stores content rendered from the recipe file name and returns
	// where it was written.
	Write(name, content string) (string, error)
}

// DirSink writes each document to <dir>/<recipe stem><extension>.
type DirSink struct {
	Dir       string
	Extension string
}

// NewDirSink creates dir if needed. An empty dir defaults to
// defaults.RenderOutputDir and an empty ext to defaults.RenderExtension.
func NewDirSink(dir, ext string) (*DirSink, error) {
	if dir == "" {
		dir = defaults.RenderOutputDir
	}
	if ext == "" {
		ext = defaults.RenderExtension
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to create output directory", err,
			map[string]any{"path": dir})
	}
	return &DirSink{Dir: dir, Extension: ext}, nil
}

// Write implements Sink.
func (s *DirSink) Write(name, content string) (string, error) {
	path := filepath.Join(s.Dir, stem(name)+s.Extension)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeIO, "failed to write rendered recipe", err,
			map[string]any{"path": path, "recipe": name})
	}
	return path, nil
}

func stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
