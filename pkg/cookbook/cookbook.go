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
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sous-cookbook/sous/pkg/defaults"
	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/header"
	"github.com/sous-cookbook/sous/pkg/recipe"
	"github.com/sous-cookbook/sous/pkg/render"
)

// APIVersion is the schema version of cookbook listings.
const APIVersion = "v1"

// DefaultExtensions are the file extensions recognized as recipe documents.
var DefaultExtensions = []string{".yml", ".yaml"}

// Cookbook is a directory of recipe files.
type Cookbook struct {
	path       string
	extensions []string
	recipes    []string
}

// Option is a functional option for Open.
type Option func(*Cookbook)

// WithExtensions replaces the recognized recipe file extensions.
// Extensions are matched case-insensitively; a leading dot is optional.
func WithExtensions(exts ...string) Option {
	return func(c *Cookbook) {
		c.extensions = make([]string, 0, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			c.extensions = append(c.extensions, ext)
		}
	}
}

// Open lists the recipe files in dir.
func Open(dir string, opts ...Option) (*Cookbook, error) {
	c := &Cookbook{
		path:       dir,
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(c)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to open cookbook", err,
			map[string]any{"path": dir})
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slices.Contains(c.extensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			c.recipes = append(c.recipes, entry.Name())
		}
	}

	slog.Debug("cookbook opened", "path", dir, "recipes", len(c.recipes))
	return c, nil
}

// Path returns the cookbook directory.
func (c *Cookbook) Path() string {
	return c.path
}

// Recipes returns the recipe file names in sorted order.
func (c *Cookbook) Recipes() []string {
	return slices.Clone(c.recipes)
}

// Load parses the recipe with the given file name.
func (c *Cookbook) Load(name string) (*recipe.Recipe, error) {
	if !slices.Contains(c.recipes, name) {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("recipe %s not found in cookbook", name),
			map[string]any{"path": c.path, "recipe": name})
	}
	return recipe.Load(filepath.Join(c.path, name))
}

// Entry summarizes one recipe of a listing.
type Entry struct {
	File     string `json:"file" yaml:"file"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Servings int    `json:"servings,omitempty" yaml:"servings,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Listing describes the content of a cookbook.
type Listing struct {
	header.Header `json:",inline" yaml:",inline"`

	Path    string  `json:"path" yaml:"path"`
	Recipes []Entry `json:"recipes" yaml:"recipes"`
}

// List loads every recipe and summarizes it. Recipes that fail to load are
// listed with their error instead of aborting the listing.
func (c *Cookbook) List(version string) *Listing {
	l := &Listing{
		Path:    c.path,
		Recipes: make([]Entry, 0, len(c.recipes)),
	}
	l.Init(header.KindCookbook, APIVersion, version)

	for _, name := range c.recipes {
		entry := Entry{File: name}
		r, err := c.Load(name)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Name = r.Name
			entry.Author = r.Author
			entry.Servings = r.Servings
		}
		l.Recipes = append(l.Recipes, entry)
	}
	return l
}

// BatchOptions controls RenderAll.
type BatchOptions struct {
	// Parallelism is the maximum number of recipes rendered at once.
	// Values below 1 use defaults.RenderParallelism.
	Parallelism int

	// ContinueOnError renders every recipe even after a failure.
	ContinueOnError bool
}

// Result is the outcome of rendering one recipe.
type Result struct {
	Name     string        `json:"name" yaml:"name"`
	Output   string        `json:"output,omitempty" yaml:"output,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Err      error         `json:"-" yaml:"-"`
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// RenderAll renders every recipe and writes it to sink. Results are returned
// in Recipes() order. Without ContinueOnError the first failure is returned
// and recipes not yet started are marked with the cancellation cause.
func (c *Cookbook) RenderAll(ctx context.Context, renderer render.Renderer, opts render.Options,
	sink Sink, batch BatchOptions) ([]Result, error) {

	if renderer == nil || sink == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "renderer and sink are required")
	}

	if err := c.checkOutputNames(renderer.Extension()); err != nil {
		return nil, err
	}

	limit := batch.Parallelism
	if limit < 1 {
		limit = defaults.RenderParallelism
	}

	results := make([]Result, len(c.recipes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, name := range c.recipes {
		results[i].Name = name

		if err := gctx.Err(); err != nil {
			results[i].Err = context.Cause(gctx)
			continue
		}

		g.Go(func() error {
			// another recipe may have failed while this one waited for a slot
			if err := gctx.Err(); err != nil {
				results[i].Err = context.Cause(gctx)
				return nil
			}

			start := time.Now()
			out, err := c.renderOne(name, renderer, opts, sink)
			results[i].Output = out
			results[i].Duration = time.Since(start)
			results[i].Err = err

			if err != nil {
				slog.Error("recipe render failed",
					"recipe", name,
					"error", err,
				)
				if !batch.ContinueOnError {
					return err
				}
				return nil
			}

			slog.Debug("recipe rendered",
				"recipe", name,
				"output", out,
				"duration", results[i].Duration,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// checkOutputNames rejects recipes whose file stems collide, such as a.yml and
// a.yaml, since both would be written to the same output file. Stems are
// compared case-insensitively to match case-insensitive file systems.
func (c *Cookbook) checkOutputNames(ext string) error {
	seen := make(map[string]string, len(c.recipes))
	for _, name := range c.recipes {
		key := strings.ToLower(stem(name))
		if prev, ok := seen[key]; ok {
			output := stem(name) + ext
			return errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("recipes %s and %s would both render to %s", prev, name, output),
				map[string]any{"path": c.path, "recipes": []string{prev, name}, "output": output})
		}
		seen[key] = name
	}
	return nil
}

func (c *Cookbook) renderOne(name string, renderer render.Renderer, opts render.Options, sink Sink) (string, error) {
	r, err := c.Load(name)
	if err != nil {
		return "", err
	}

	doc, err := renderer.Render(r, opts)
	if err != nil {
		return "", err
	}

	return sink.Write(name, doc)
}
