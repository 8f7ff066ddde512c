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

// Package render turns parsed recipes into documents.
//
// Three renderers share the Renderer interface:
//
//   - MarkdownRenderer emits a fixed Markdown layout. It honors every Options
//     field, including serving rescaling, and cannot fail on a parsed recipe.
//   - TemplateRenderer executes a user-supplied text/template against the flat
//     projection returned by Project. Options are ignored; a template that
//     wants rescaling does it itself with the mul, div and fmtnum helpers.
//   - PDFRenderer lays out the same structure as the Markdown layout on A4
//     pages with github.com/jung-kurt/gofpdf. Front matter does not apply;
//     title and author go into the document properties.
//
// # Serving rescaling
//
// With Options.ServingsOverride set, every ingredient amount is multiplied by
// override / recipe servings. Units are never touched and ingredients without
// an amount are printed as-is. Amounts are formatted with recipe.FormatAmount.
//
// # Markdown layout
//
//	# Pancakes
//	**grandma | https://example.com/pancakes**
//	**8 servings | 10 minutes prep | 15 minutes cook time**
//
//	## Ingredients
//	* 3 cups flour
//	* pinch salt
//
//	## Method
//	1. Whisk everything together.
//	2. Fry in batches.
//
// With Options.UseFrontMatter the heading and author line are replaced by a
// YAML block carrying exactly title and author.
//
// # Template projection
//
// Project exposes name, author, servings, url, prep_minutes, cook_minutes,
// steps and ingredients (each with name, amount, unit) in a single flat map.
// Absent optionals are nil. The key set is versioned by ProjectionVersion and
// templates may rely on it.
//
//	r, err := render.NewTemplateRenderer("list", `{{range .ingredients}}{{.name}}
//	{{end}}`)
//	out, err := r.Render(rec, render.DefaultOptions())
//
// # Selecting a renderer
//
//	r, err := render.New(render.ModeTemplate, render.WithTemplateFile("post.md.tmpl"))
package render
