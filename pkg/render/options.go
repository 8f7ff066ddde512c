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

// Options selects what the fixed renderers emit.
type Options struct {
	EmitMetadata    bool `json:"emitMetadata" yaml:"emitMetadata"`
	EmitIngredients bool `json:"emitIngredients" yaml:"emitIngredients"`
	EmitSteps       bool `json:"emitSteps" yaml:"emitSteps"`
	UseFrontMatter  bool `json:"useFrontMatter" yaml:"useFrontMatter"`

	// ServingsOverride is the target serving count. Nil or non-positive
	// values mean the recipe is rendered as written.
	ServingsOverride *int `json:"servingsOverride,omitempty" yaml:"servingsOverride,omitempty"`
}

// DefaultOptions emits every section with a Markdown heading and no rescaling.
func DefaultOptions() Options {
	return Options{
		EmitMetadata:    true,
		EmitIngredients: true,
		EmitSteps:       true,
	}
}

// WithServings returns a copy of o targeting n servings.
func (o Options) WithServings(n int) Options {
	o.ServingsOverride = &n
	return o
}

// DisplayServings resolves the serving count shown for r.
func (o Options) DisplayServings(r *recipe.Recipe) int {
	if o.ServingsOverride != nil && *o.ServingsOverride > 0 {
		return *o.ServingsOverride
	}
	return r.Servings
}

// Multiplier is the factor applied to every ingredient amount of r.
func (o Options) Multiplier(r *recipe.Recipe) float64 {
	if r.Servings <= 0 {
		return 1
	}
	return float64(o.DisplayServings(r)) / float64(r.Servings)
}
