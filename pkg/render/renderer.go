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

	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/recipe"
)

// Renderer turns a recipe into a document.
type Renderer interface {
	Render(r *recipe.Recipe, opts Options) (string, error)

	// Extension is the file extension, with leading dot, of rendered output.
	Extension() string
}

// Mode names a renderer implementation.
type Mode string

const (
	// ModeMarkdown selects the built-in Markdown renderer.
	ModeMarkdown Mode = "markdown"
	// ModeTemplate selects the template renderer.
	ModeTemplate Mode = "template"
	// ModePDF selects the built-in PDF renderer.
	ModePDF Mode = "pdf"
)

func (m Mode) IsUnknown() bool {
	switch m {
	case ModeMarkdown, ModeTemplate, ModePDF:
		return false
	default:
		return true
	}
}

// SupportedModes returns the names of all renderer modes.
func SupportedModes() []string {
	return []string{
		string(ModeMarkdown),
		string(ModeTemplate),
		string(ModePDF),
	}
}

// Option configures New.
type Option func(*config)

type config struct {
	templatePath   string
	templateName   string
	templateText   *string
	templateReader io.Reader
	extension      string
}

// WithTemplateFile loads the template from path.
func WithTemplateFile(path string) Option {
	return func(c *config) {
		c.templatePath = path
	}
}

// WithTemplateText uses text as the template source.
func WithTemplateText(name, text string) Option {
	return func(c *config) {
		c.templateName = name
		c.templateText = &text
	}
}

// WithTemplateReader reads the template source from r, typically standard input.
func WithTemplateReader(name string, r io.Reader) Option {
	return func(c *config) {
		c.templateName = name
		c.templateReader = r
	}
}

// WithExtension overrides the extension reported by the template renderer.
func WithExtension(ext string) Option {
	return func(c *config) {
		c.extension = ext
	}
}

// New builds the renderer for mode. Template sources are consulted in order:
// file, text, reader.
func New(mode Mode, opts ...Option) (Renderer, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	switch mode {
	case ModeMarkdown:
		return NewMarkdownRenderer(), nil
	case ModePDF:
		return NewPDFRenderer(), nil
	case ModeTemplate:
		var (
			tr  *TemplateRenderer
			err error
		)
		switch {
		case cfg.templatePath != "":
			tr, err = NewTemplateRendererFromFile(cfg.templatePath)
		case cfg.templateText != nil:
			tr, err = NewTemplateRenderer(cfg.templateName, *cfg.templateText)
		case cfg.templateReader != nil:
			tr, err = NewTemplateRendererFromReader(cfg.templateName, cfg.templateReader)
		default:
			return nil, errors.New(errors.ErrCodeInvalidRequest, "template mode requires a template")
		}
		if err != nil {
			return nil, err
		}
		if cfg.extension != "" {
			tr = tr.WithExtension(cfg.extension)
		}
		return tr, nil
	default:
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown render mode %q", mode),
			map[string]any{"mode": string(mode), "supported": SupportedModes()})
	}
}
