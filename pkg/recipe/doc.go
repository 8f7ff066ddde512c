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

// Package recipe provides the recipe data model and its parser.
//
// # Overview
//
// A recipe document is a YAML (or JSON) mapping with descriptive metadata at
// the top level, an ordered list of method steps and an ordered list of
// measured ingredients:
//
//	name: pancakes
//	author: grandma
//	servings: 4
//	url: https://example.com/pancakes   # optional
//	prep_minutes: 10                    # optional
//	cook_minutes: 15
//	steps:
//	  - Whisk everything together.
//	  - Fry in batches.
//	ingredients:
//	  - name: flour
//	    amount: 1.5
//	    unit: cups
//	  - name: salt                      # amount and unit are optional
//
// # Core Types
//
// Ingredient: a single measured component
//
//	type Ingredient struct {
//	    Name   string
//	    Amount *float64 // nil means unspecified, "to taste"
//	    Unit   *string  // opaque, never converted
//	}
//
// Metadata: descriptive facts, flattened into the top level of the document
//
//	type Metadata struct {
//	    Name        string
//	    Author      string
//	    Servings    int  // as-written yield, always > 0
//	    URL         *string
//	    PrepMinutes *int
//	    CookMinutes int
//	}
//
// Recipe: Metadata plus Steps and Ingredients, read-only after parsing.
//
// # Parsing
//
// Parse is all-or-nothing. It fails with an errors.ErrCodeParse error when the
// document is not well-formed, when a required field (name, author, servings,
// cook_minutes, or an ingredient name) is missing or has the wrong type, or
// when servings is not positive. Unknown fields are ignored.
//
//	r, err := recipe.Parse(data)
//
// Load reads a file and delegates to Parse; read failures are
// errors.ErrCodeIO errors carrying the path. LoadURL fetches a document over
// HTTP(S) and LoadSource picks between the two:
//
//	r, err := recipe.LoadSource(ctx, "https://example.com/pancakes.yml")
package recipe
