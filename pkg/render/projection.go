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

import "github.com/sous-cookbook/sous/pkg/recipe"

// ProjectionVersion identifies the key set produced by Project. Templates
// depend on these names; any change to them must bump the version.
const ProjectionVersion = "v1"

// Projection keys.
const (
	KeyName        = "name"
	KeyAuthor      = "author"
	KeyServings    = "servings"
	KeyURL         = "url"
	KeyPrepMinutes = "prep_minutes"
	KeyCookMinutes = "cook_minutes"
	KeySteps       = "steps"
	KeyIngredients = "ingredients"
	KeyAmount      = "amount"
	KeyUnit        = "unit"
)

// Project converts r into the flat map handed to templates. Metadata fields
// sit at the top level next to steps and ingredients.
func Project(r *recipe.Recipe) map[string]any {
	if r == nil {
		return map[string]any{}
	}

	steps := make([]string, len(r.Steps))
	copy(steps, r.Steps)

	ingredients := make([]map[string]any, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, map[string]any{
			KeyName:   ing.Name,
			KeyAmount: optional(ing.Amount),
			KeyUnit:   optional(ing.Unit),
		})
	}

	return map[string]any{
		KeyName:        r.Name,
		KeyAuthor:      r.Author,
		KeyServings:    r.Servings,
		KeyURL:         optional(r.URL),
		KeyPrepMinutes: optional(r.PrepMinutes),
		KeyCookMinutes: r.CookMinutes,
		KeySteps:       steps,
		KeyIngredients: ingredients,
	}
}

// optional unwraps p so templates see a plain value or nil.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
