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
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sous-cookbook/sous/pkg/defaults"
	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/recipe"
)

const frontMatterDelimiter = "---"

// MarkdownRenderer emits the fixed Markdown layout.
type MarkdownRenderer struct{}

// NewMarkdownRenderer returns the built-in Markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (m *MarkdownRenderer) Extension() string {
	return defaults.RenderExtension
}

// frontMatter is the header block; field order is output order.
type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// Render writes r as Markdown. Sections always appear in the order
// metadata, ingredients, method; disabled sections emit nothing.
func (m *MarkdownRenderer) Render(r *recipe.Recipe, opts Options) (out string, err error) {
	defer func(start time.Time) { observeRender(ModeMarkdown, start, err) }(time.Now())

	if r == nil {
		return "", errors.New(errors.ErrCodeInvalidRequest, "recipe cannot be nil")
	}

	servings := opts.DisplayServings(r)
	var b strings.Builder

	if opts.EmitMetadata {
		if opts.UseFrontMatter {
			fm, err := yaml.Marshal(frontMatter{Title: r.Name, Author: r.Author})
			if err != nil {
				return "", errors.Wrap(errors.ErrCodeInternal, "failed to encode front matter", err)
			}
			b.WriteString(frontMatterDelimiter + "\n")
			b.Write(fm)
			b.WriteString(frontMatterDelimiter + "\n")
		} else {
			fmt.Fprintf(&b, "# %s\n", r.Name)
			fmt.Fprintf(&b, "**%s**\n", bylineOf(r))
		}

		fmt.Fprintf(&b, "**%s**\n\n", summaryLine(r, servings))
	}

	if opts.EmitIngredients {
		multiplier := opts.Multiplier(r)
		b.WriteString("## Ingredients\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "* %s\n", ing.Scaled(multiplier))
		}
		b.WriteString("\n")
	}

	if opts.EmitSteps {
		b.WriteString("## Method\n")
		for i, step := range r.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	b.WriteString("\n")
	return b.String(), nil
}

// bylineOf is the author, followed by the source URL when there is one.
func bylineOf(r *recipe.Recipe) string {
	if r.URL != nil {
		return r.Author + " | " + *r.URL
	}
	return r.Author
}

// summaryLine is the servings and timing line shared by the fixed layouts.
func summaryLine(r *recipe.Recipe, servings int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d servings", servings)
	if r.PrepMinutes != nil {
		fmt.Fprintf(&b, " | %d minutes prep", *r.PrepMinutes)
	}
	fmt.Fprintf(&b, " | %d minutes cook time", r.CookMinutes)
	return b.String()
}
