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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sous-cookbook/sous/pkg/errors"
)

const testRecipeDoc = `name: test recipe
author: test author
servings: 1
cook_minutes: 1
steps:
  - Step one
ingredients:
  - name: test ingredient
    amount: 1.0
`

const expectedMarkdown = "# test recipe\n" +
	"**test author**\n" +
	"**1 servings | 1 minutes cook time**\n" +
	"\n" +
	"## Ingredients\n" +
	"* 1 test ingredient\n" +
	"\n" +
	"## Method\n" +
	"1. Step one\n" +
	"\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.Writer = &out
	root.ErrWriter = io.Discard
	root.Reader = strings.NewReader(stdin)

	err := root.Run(context.Background(), append([]string{name}, args...))
	return out.String(), err
}

func TestRender_SingleRecipe(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test.yml", testRecipeDoc)

	out, err := run(t, "", "render", path)
	require.NoError(t, err)
	assert.Equal(t, expectedMarkdown, out)
}

func TestRender_Options(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test.yml", testRecipeDoc)

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:     "servings",
			args:     []string{"--servings", "2"},
			contains: []string{"**2 servings | 1 minutes cook time**", "* 2 test ingredient"},
		},
		{
			name:        "front matter",
			args:        []string{"-f"},
			contains:    []string{"---\ntitle: test recipe\nauthor: test author\n---\n"},
			notContains: []string{"# test recipe"},
		},
		{
			name:        "no metadata",
			args:        []string{"--no-metadata"},
			notContains: []string{"# test recipe", "servings"},
			contains:    []string{"## Ingredients", "## Method"},
		},
		{
			name:        "no ingredients and steps",
			args:        []string{"--no-ingredients", "--no-steps"},
			contains:    []string{"# test recipe"},
			notContains: []string{"## Ingredients", "## Method"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render"}, tt.args...)
			out, err := run(t, "", append(args, path)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRender_InvalidArguments(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test.yml", testRecipeDoc)

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"missing input", []string{"render"}, "is required"},
		{"zero servings", []string{"render", "--servings", "0", path}, "servings must be at least 1"},
		{"unknown mode", []string{"render", "--mode", "pdf", path}, "unknown render mode"},
		{"missing file", []string{"render", filepath.Join(t.TempDir(), "nope.yml")}, "failed to load recipe"},
		{"too many inputs", []string{"render", path, path}, "expected a single"},
		{"template and recipe both on stdin", []string{"render", "--mode", "template", "-"}, "--template is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRender_ParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yml", "author: nobody\n")

	_, err := run(t, "", "render", path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeParse))
	assert.Equal(t, ExitCodeError, exitCode(err))
}

func TestRender_Stdin(t *testing.T) {
	out, err := run(t, testRecipeDoc, "render", "-")
	require.NoError(t, err)
	assert.Equal(t, expectedMarkdown, out)
}

func TestRender_OutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.yml", testRecipeDoc)
	outPath := filepath.Join(dir, "out", "test.md")

	out, err := run(t, "", "render", "--output", outPath, path)
	require.NoError(t, err)
	assert.Empty(t, out)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, expectedMarkdown, string(content))
}

func TestRender_TemplateFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.yml", testRecipeDoc)
	tmpl := writeFile(t, dir, "card.tmpl", "{{title .name}}:{{range .ingredients}} {{.name}}{{end}}")

	out, err := run(t, "", "render", "--mode", "template", "--template", tmpl, "--servings", "3", path)
	require.NoError(t, err)
	assert.Equal(t, "Test Recipe: test ingredient", out)
}

func TestRender_TemplateFromStdin(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test.yml", testRecipeDoc)

	out, err := run(t, "{{.author}}", "render", "-m", "template", path)
	require.NoError(t, err)
	assert.Equal(t, "test author", out)
}

func TestRender_TemplateErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.yml", testRecipeDoc)

	_, err := run(t, "{{range}}", "render", "-m", "template", path)
	require.Error(t, err)
	assert.Equal(t, ExitCodeRender, exitCode(err))

	_, err = run(t, "{{.missing}}", "render", "-m", "template", path)
	require.Error(t, err)
	assert.Equal(t, ExitCodeRender, exitCode(err))
}

func TestRender_Cookbook(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.yml", testRecipeDoc)
	writeFile(t, dir, "two.yaml", strings.Replace(testRecipeDoc, "test recipe", "second recipe", 1))
	writeFile(t, dir, "notes.txt", "ignored")
	outDir := filepath.Join(t.TempDir(), "site")

	_, err := run(t, "", "render", "--output", outDir, "--parallel", "2", dir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "one.md"))
	require.NoError(t, err)
	assert.Equal(t, expectedMarkdown, string(content))

	content, err = os.ReadFile(filepath.Join(outDir, "two.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# second recipe\n"))

	assert.NoFileExists(t, filepath.Join(outDir, "notes.md"))
}

func TestRender_PDF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.yml", testRecipeDoc)
	outDir := filepath.Join(t.TempDir(), "print")

	_, err := run(t, "", "render", "--mode", "pdf", "--output", outDir, dir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "one.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF-"))
	assert.NoFileExists(t, filepath.Join(outDir, "one.md"))

	out, err := run(t, "", "render", "-m", "pdf", filepath.Join(dir, "one.yml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
}

func TestRender_CookbookContinueOnError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", "name: broken\n")
	writeFile(t, dir, "b.yml", testRecipeDoc)
	outDir := filepath.Join(t.TempDir(), "render")

	_, err := run(t, "", "render", "--output", outDir, "--continue-on-error", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 recipes failed")
	assert.FileExists(t, filepath.Join(outDir, "b.md"))
	assert.NoFileExists(t, filepath.Join(outDir, "a.md"))
}

func TestRender_CookbookExitCodes(t *testing.T) {
	tmpl := writeFile(t, t.TempDir(), "bad.tmpl", "{{ .nope }}")

	tests := []struct {
		name  string
		setup func(t *testing.T, outDir string)
		args  []string
		want  int
	}{
		{
			name: "write failure",
			setup: func(t *testing.T, outDir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(outDir, "a.md"), 0755))
			},
			want: ExitCodeWrite,
		},
		{
			name: "write failure continue on error",
			setup: func(t *testing.T, outDir string) {
				require.NoError(t, os.MkdirAll(filepath.Join(outDir, "a.md"), 0755))
			},
			args: []string{"--continue-on-error"},
			want: ExitCodeWrite,
		},
		{
			name: "template failure",
			args: []string{"-m", "template", "-t", tmpl},
			want: ExitCodeRender,
		},
		{
			name: "template failure continue on error",
			args: []string{"-m", "template", "-t", tmpl, "--continue-on-error"},
			want: ExitCodeRender,
		},
		{
			name: "parse failure continue on error",
			setup: func(t *testing.T, outDir string) {
				writeFile(t, filepath.Dir(outDir), "b.yml", "name: broken\n")
			},
			args: []string{"--continue-on-error"},
			want: ExitCodeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "a.yml", testRecipeDoc)
			outDir := filepath.Join(dir, "render")
			if tt.setup != nil {
				tt.setup(t, outDir)
			}

			args := append([]string{"render", "--output", outDir}, tt.args...)
			_, err := run(t, "", append(args, dir)...)
			require.Error(t, err)
			assert.Equal(t, tt.want, exitCode(err), err.Error())
		})
	}
}

func TestRender_CookbookDuplicateOutputName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", testRecipeDoc)
	writeFile(t, dir, "a.yaml", testRecipeDoc)
	outDir := filepath.Join(t.TempDir(), "render")

	_, err := run(t, "", "render", "--output", outDir, dir)
	require.Error(t, err)
	assert.Equal(t, ExitCodeError, exitCode(err))
	assert.Contains(t, err.Error(), "a.md")
	assert.NoFileExists(t, filepath.Join(outDir, "a.md"))
}

func TestRender_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.yml", testRecipeDoc)
	cfg := writeFile(t, dir, "sous.yaml", "frontMatter: true\nservings: 4\nnoSteps: true\n")

	out, err := run(t, "", "--config", cfg, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "title: test recipe")
	assert.Contains(t, out, "* 4 test ingredient")
	assert.NotContains(t, out, "## Method")

	// flags win over the config file
	out, err = run(t, "", "--config", cfg, "render", "--servings", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "* 2 test ingredient")
}

func TestRender_ConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "test.yml", testRecipeDoc)

	_, err := run(t, "", "--config", filepath.Join(dir, "missing.yaml"), "render", path)
	assert.ErrorContains(t, err, "failed to load config")

	cfg := writeFile(t, dir, "zero.yaml", "servings: 0\n")
	_, err = run(t, "", "--config", cfg, "render", path)
	assert.ErrorContains(t, err, "servings must be at least 1")
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.yml", testRecipeDoc)
	writeFile(t, dir, "broken.yml", "servings: one\n")

	out, err := run(t, "", "list", "--format", "json", dir)
	require.NoError(t, err)

	var listing struct {
		Kind    string `json:"kind"`
		Path    string `json:"path"`
		Recipes []struct {
			File     string `json:"file"`
			Name     string `json:"name"`
			Servings int    `json:"servings"`
			Error    string `json:"error"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))

	assert.Equal(t, "Cookbook", listing.Kind)
	assert.Equal(t, dir, listing.Path)
	require.Len(t, listing.Recipes, 2)
	assert.Equal(t, "broken.yml", listing.Recipes[0].File)
	assert.NotEmpty(t, listing.Recipes[0].Error)
	assert.Equal(t, "test recipe", listing.Recipes[1].Name)
	assert.Equal(t, 1, listing.Recipes[1].Servings)
}

func TestList_Errors(t *testing.T) {
	_, err := run(t, "", "list", "--format", "xml", t.TempDir())
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "", "list", filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeIO))
}

func TestInspect(t *testing.T) {
	path := writeFile(t, t.TempDir(), "test.yml", testRecipeDoc)

	out, err := run(t, "", "inspect", "--format", "json", path)
	require.NoError(t, err)

	var projection map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &projection))

	assert.Equal(t, "test recipe", projection["name"])
	assert.Nil(t, projection["url"])
	assert.Contains(t, projection, "prep_minutes")
	assert.Equal(t, []any{"Step one"}, projection["steps"])
	assert.Equal(t, []any{map[string]any{"name": "test ingredient", "amount": 1.0, "unit": nil}}, projection["ingredients"])
}

func TestInspect_Stdin(t *testing.T) {
	out, err := run(t, testRecipeDoc, "inspect", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "name: test recipe")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitCodeOK},
		{fmt.Errorf("boom"), ExitCodeError},
		{errors.New(errors.ErrCodeParse, "bad"), ExitCodeError},
		{fmt.Errorf("wrapped: %w", errors.New(errors.ErrCodeTemplate, "bad")), ExitCodeRender},
		{&outputError{err: fmt.Errorf("disk full")}, ExitCodeWrite},
		{fmt.Errorf("batch: %w", stderrors.Join(
			errors.New(errors.ErrCodeParse, "bad"),
			errors.New(errors.ErrCodeTemplate, "bad"),
		)), ExitCodeRender},
		{stderrors.Join(
			errors.New(errors.ErrCodeTemplate, "bad"),
			&outputError{err: fmt.Errorf("disk full")},
		), ExitCodeWrite},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
