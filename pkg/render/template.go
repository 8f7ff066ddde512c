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

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/sous-cookbook/sous/pkg/defaults"
	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/recipe"
)

// templateSuffixes are stripped from a template file name to find the
// extension of the documents it produces: page.html.tmpl renders .html.
var templateSuffixes = []string{".tmpl", ".tpl", ".gotmpl"}

// TemplateRenderer executes a compiled text/template against Project(r).
// It is safe for concurrent use.
type TemplateRenderer struct {
	name      string
	tmpl      *template.Template
	extension string
}

// NewTemplateRenderer compiles text. References to keys missing from the
// projection fail at render time instead of printing "<no value>".
func NewTemplateRenderer(name, text string) (*TemplateRenderer, error) {
	if name == "" {
		name = "recipe"
	}
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcMap()).
		Parse(text)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeTemplate,
			fmt.Sprintf("failed to parse template %s", name), err,
			map[string]any{"template": name})
	}
	return &TemplateRenderer{
		name:      name,
		tmpl:      tmpl,
		extension: defaults.RenderExtension,
	}, nil
}

// NewTemplateRendererFromFile reads and compiles the template at path.
func NewTemplateRendererFromFile(path string) (*TemplateRenderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read template", err,
			map[string]any{"path": path})
	}
	tr, err := NewTemplateRenderer(filepath.Base(path), string(data))
	if err != nil {
		return nil, err
	}
	if ext := extensionFor(path); ext != "" {
		tr.extension = ext
	}
	return tr, nil
}

// NewTemplateRendererFromReader compiles the template read from r.
func NewTemplateRendererFromReader(name string, r io.Reader) (*TemplateRenderer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read template", err,
			map[string]any{"template": name})
	}
	return NewTemplateRenderer(name, string(data))
}

func extensionFor(path string) string {
	base := filepath.Base(path)
	for _, suffix := range templateSuffixes {
		if strings.HasSuffix(strings.ToLower(base), suffix) {
			return filepath.Ext(base[:len(base)-len(suffix)])
		}
	}
	return ""
}

// WithExtension returns a renderer sharing the compiled template that reports ext.
func (t *TemplateRenderer) WithExtension(ext string) *TemplateRenderer {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	clone := *t
	clone.extension = ext
	return &clone
}

// Name returns the template name used in error reports.
func (t *TemplateRenderer) Name() string {
	return t.name
}

func (t *TemplateRenderer) Extension() string {
	return t.extension
}

// Render executes the template. opts is accepted for the Renderer interface
// and otherwise ignored: templates see the recipe exactly as written.
func (t *TemplateRenderer) Render(r *recipe.Recipe, _ Options) (out string, err error) {
	defer func(start time.Time) { observeRender(ModeTemplate, start, err) }(time.Now())

	if r == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}

	var b strings.Builder
	if err := t.tmpl.Execute(&b, Project(r)); err != nil {
		return "", errors.WrapWithContext(errors.ErrCodeTemplate,
			fmt.Sprintf("failed to render template %s", t.name), err,
			map[string]any{"template": t.name, "recipe": r.Name})
	}
	return b.String(), nil
}
