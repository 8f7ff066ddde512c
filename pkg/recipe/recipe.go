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

package recipe

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/serializer"
)

// Ingredient is a single measured component of a recipe.
type Ingredient struct {
	Name   string   `json:"name" yaml:"name"`
	Amount *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	Unit   *string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Scaled returns a copy of the ingredient with its amount multiplied by factor.
// Ingredients without an amount are returned unchanged.
func (i Ingredient) Scaled(factor float64) Ingredient {
	if i.Amount == nil {
		return i
	}
	scaled := *i.Amount * factor
	i.Amount = &scaled
	return i
}

// String renders "<amount> <unit> <name>", skipping absent parts.
func (i Ingredient) String() string {
	parts := make([]string, 0, 3)
	if i.Amount != nil {
		parts = append(parts, FormatAmount(*i.Amount))
	}
	if i.Unit != nil {
		parts = append(parts, *i.Unit)
	}
	parts = append(parts, i.Name)
	return strings.Join(parts, " ")
}

// Metadata holds the descriptive facts about a recipe.
type Metadata struct {
	Name        string  `json:"name" yaml:"name"`
	Author      string  `json:"author" yaml:"author"`
	Servings    int     `json:"servings" yaml:"servings"`
	URL         *string `json:"url,omitempty" yaml:"url,omitempty"`
	PrepMinutes *int    `json:"prep_minutes,omitempty" yaml:"prep_minutes,omitempty"`
	CookMinutes int     `json:"cook_minutes" yaml:"cook_minutes"`
}

func (m Metadata) String() string {
	return fmt.Sprintf("%s by %s", m.Name, m.Author)
}

// Recipe is the root aggregate of metadata, steps and ingredients.
type Recipe struct {
	Metadata `json:",inline" yaml:",inline"`

	Steps       []string     `json:"steps" yaml:"steps"`
	Ingredients []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Validate checks the invariants Parse enforces. It is useful for recipes
// built in code rather than parsed from a document.
func (r *Recipe) Validate() error {
	if r == nil {
		return errors.New(errors.ErrCodeParse, "recipe cannot be nil")
	}
	if r.Servings <= 0 {
		return errors.NewWithContext(errors.ErrCodeParse, "servings must be positive",
			map[string]any{"field": "servings", "value": r.Servings})
	}
	if r.CookMinutes < 0 {
		return errors.NewWithContext(errors.ErrCodeParse, "cook_minutes cannot be negative",
			map[string]any{"field": "cook_minutes", "value": r.CookMinutes})
	}
	if r.PrepMinutes != nil && *r.PrepMinutes < 0 {
		return errors.NewWithContext(errors.ErrCodeParse, "prep_minutes cannot be negative",
			map[string]any{"field": "prep_minutes", "value": *r.PrepMinutes})
	}
	for idx, ing := range r.Ingredients {
		if ing.Amount != nil && *ing.Amount < 0 {
			return errors.NewWithContext(errors.ErrCodeParse,
				fmt.Sprintf("ingredient %q has a negative amount", ing.Name),
				map[string]any{"field": fmt.Sprintf("ingredients[%d].amount", idx), "value": *ing.Amount})
		}
	}
	return nil
}

// FormatAmount formats a quantity with the fewest digits that represent it
// exactly and never uses an exponent: 1.0 is "1", 0.25 is "0.25".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// document mirrors the source format with every field optional so that
// missing required fields can be told apart from zero values.
type document struct {
	Name        *string              `yaml:"name"`
	Author      *string              `yaml:"author"`
	Servings    *int                 `yaml:"servings"`
	URL         *string              `yaml:"url"`
	PrepMinutes *int                 `yaml:"prep_minutes"`
	CookMinutes *int                 `yaml:"cook_minutes"`
	Steps       []string             `yaml:"steps"`
	Ingredients []ingredientDocument `yaml:"ingredients"`
}

type ingredientDocument struct {
	Name   *string  `yaml:"name"`
	Amount *float64 `yaml:"amount"`
	Unit   *string  `yaml:"unit"`
}

func missingField(field string) error {
	return errors.NewWithContext(errors.ErrCodeParse,
		fmt.Sprintf("missing required field %q", field),
		map[string]any{"field": field})
}

// Parse decodes a recipe document. No partial recipe is ever returned.
func Parse(data []byte) (*Recipe, error) {
	recipeParseBytes.Observe(float64(len(data)))

	r, err := parse(data)
	if err != nil {
		recipeParseTotal.WithLabelValues(parseStatusError).Inc()
		return nil, err
	}
	recipeParseTotal.WithLabelValues(parseStatusOK).Inc()
	return r, nil
}

func parse(data []byte) (*Recipe, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, "malformed recipe document", err)
	}

	switch {
	case doc.Name == nil:
		return nil, missingField("name")
	case doc.Author == nil:
		return nil, missingField("author")
	case doc.Servings == nil:
		return nil, missingField("servings")
	case doc.CookMinutes == nil:
		return nil, missingField("cook_minutes")
	}

	r := &Recipe{
		Metadata: Metadata{
			Name:        *doc.Name,
			Author:      *doc.Author,
			Servings:    *doc.Servings,
			URL:         doc.URL,
			PrepMinutes: doc.PrepMinutes,
			CookMinutes: *doc.CookMinutes,
		},
		Steps:       doc.Steps,
		Ingredients: make([]Ingredient, 0, len(doc.Ingredients)),
	}
	if r.Steps == nil {
		r.Steps = []string{}
	}

	for idx, ing := range doc.Ingredients {
		if ing.Name == nil {
			return nil, missingField(fmt.Sprintf("ingredients[%d].name", idx))
		}
		r.Ingredients = append(r.Ingredients, Ingredient{
			Name:   *ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads the recipe file at path and parses it.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read recipe", err,
			map[string]any{"path": path})
	}
	r, err := Parse(data)
	if err != nil {
		return nil, annotate(err, "path", path)
	}
	return r, nil
}

// LoadURL fetches a recipe document over HTTP(S) and parses it.
func LoadURL(ctx context.Context, url string) (*Recipe, error) {
	data, err := serializer.NewHTTPReader().ReadWithContext(ctx, url)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to fetch recipe", err,
			map[string]any{"url": url})
	}
	r, err := Parse(data)
	if err != nil {
		return nil, annotate(err, "url", url)
	}
	return r, nil
}

// LoadSource loads a recipe from an http(s) URL, from standard input when
// source is "-", or from a local file otherwise.
func LoadSource(ctx context.Context, source string) (*Recipe, error) {
	switch {
	case serializer.IsURL(source):
		return LoadURL(ctx, source)
	case source == "-":
		data, err := serializer.ReadSource(ctx, source)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, "failed to read recipe from stdin", err)
		}
		return Parse(data)
	default:
		return Load(source)
	}
}

// annotate records where a structured error came from without re-wrapping it.
func annotate(err error, key string, value any) error {
	var se *errors.StructuredError
	if !stderrors.As(err, &se) {
		return err
	}
	if se.Context == nil {
		se.Context = make(map[string]any, 1)
	}
	se.Context[key] = value
	se.Message = fmt.Sprintf("%s (%s)", se.Message, value)
	return err
}
