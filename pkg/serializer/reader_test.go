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

package serializer

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"recipe.json", FormatJSON},
		{"RECIPE.JSON", FormatJSON},
		{"recipe.yaml", FormatYAML},
		{"recipe.yml", FormatYAML},
		{"out.table", FormatTable},
		{"out.txt", FormatTable},
		{"recipe", FormatYAML},
		{"recipe.toml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("http://example.com/soup.yml"))
	assert.True(t, IsURL("https://example.com/soup.yml"))
	assert.False(t, IsURL("soup.yml"))
	assert.False(t, IsURL("/tmp/http://x"))
}

func TestNewReader(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err, "table format is write-only")

	_, err = NewReader(Format("xml"), strings.NewReader(""))
	assert.Error(t, err)

	r, err := NewReader(FormatJSON, strings.NewReader(`{"name":"salt"}`))
	require.NoError(t, err)

	var v testIngredient
	require.NoError(t, r.Deserialize(&v))
	assert.Equal(t, "salt", v.Name)
	assert.NoError(t, r.Close())
}

func TestReader_DeserializeYAML(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("name: flour\namount: 2\n"))
	require.NoError(t, err)

	var v testIngredient
	require.NoError(t, r.Deserialize(&v))
	assert.Equal(t, "flour", v.Name)
	require.NotNil(t, v.Amount)
	assert.InDelta(t, 2.0, *v.Amount, 1e-9)
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	var r *Reader
	assert.Error(t, r.Deserialize(&testIngredient{}))
	assert.NoError(t, r.Close())

	r = &Reader{format: FormatJSON}
	assert.Error(t, r.Deserialize(&testIngredient{}))
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: pepper\n"), 0o644))
	v, err := FromFile[testIngredient](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "pepper", v.Name)

	jsonPath := filepath.Join(dir, "opts.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name":"cumin"}`), 0o644))
	v, err = FromFile[testIngredient](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "cumin", v.Name)
}

func TestNewFileReader_WriteOnlyFormat(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "listing.table")
	require.NoError(t, os.WriteFile(path, []byte("FIELD VALUE\n"), 0o644))

	r, err := NewFileReader(path)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.NotContains(t, logs.String(), "failed to close file")
}

func TestFromFile_Errors(t *testing.T) {
	_, err := FromFile[testIngredient](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = FromFile[testIngredient](bad)
	assert.Error(t, err)
}

func TestReadSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soup.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: soup\n"), 0o644))

	data, err := ReadSource(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "name: soup\n", string(data))
}

func TestReadSource_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("name: remote\n"))
	}))
	defer srv.Close()

	data, err := ReadSource(context.Background(), srv.URL+"/soup.yml")
	require.NoError(t, err)
	assert.Equal(t, "name: remote\n", string(data))
}

func TestReadSource_MissingFile(t *testing.T) {
	_, err := ReadSource(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
