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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	p := Project(pancakes())

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"name", "author", "servings", "url", "prep_minutes", "cook_minutes", "steps", "ingredients",
	}, keys)

	assert.Equal(t, "pancakes", p[KeyName])
	assert.Equal(t, 4, p[KeyServings])
	assert.Equal(t, "https://example.com/pancakes", p[KeyURL])
	assert.Equal(t, 10, p[KeyPrepMinutes])
	assert.Equal(t, []string{"Whisk.", "Rest.", "Fry."}, p[KeySteps])

	ingredients, ok := p[KeyIngredients].([]map[string]any)
	require.True(t, ok)
	require.Len(t, ingredients, 5)
	assert.Equal(t, map[string]any{"name": "flour", "amount": 1.5, "unit": "cups"}, ingredients[0])
	assert.Equal(t, map[string]any{"name": "butter", "amount": nil, "unit": nil}, ingredients[4])
}

func TestProject_AbsentOptionals(t *testing.T) {
	p := Project(testRecipe())

	url, ok := p[KeyURL]
	assert.True(t, ok, "absent optionals keep their key")
	assert.Nil(t, url)
	assert.Nil(t, p[KeyPrepMinutes])
}

func TestProject_CopiesSteps(t *testing.T) {
	r := testRecipe()
	p := Project(r)

	steps := p[KeySteps].([]string)
	steps[0] = "changed"
	assert.Equal(t, "Step one", r.Steps[0])
}

func TestProject_Nil(t *testing.T) {
	assert.Empty(t, Project(nil))
}
