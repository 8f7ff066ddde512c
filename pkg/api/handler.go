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

package api

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/sous-cookbook/sous/pkg/defaults"
	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/header"
	"github.com/sous-cookbook/sous/pkg/recipe"
	"github.com/sous-cookbook/sous/pkg/render"
	"github.com/sous-cookbook/sous/pkg/serializer"
	"github.com/sous-cookbook/sous/pkg/server"
)

const (
	// APIVersion is the schema version of documents returned by the API.
	APIVersion = "v1"

	markdownContentType = "text/markdown; charset=utf-8"
	pdfContentType      = "application/pdf"
)

// Query parameters accepted by the render endpoint.
const (
	ParamMode        = "mode"
	ParamServings    = "servings"
	ParamFrontMatter = "front_matter"
	ParamMetadata    = "metadata"
	ParamIngredients = "ingredients"
	ParamSteps       = "steps"
)

// RenderResponse wraps a rendered document for JSON clients.
type RenderResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Content string `json:"content" yaml:"content"`
}

// ProjectionResponse carries the data a template sees when rendering a recipe.
type ProjectionResponse struct {
	header.Header `json:",inline" yaml:",inline"`

	Projection map[string]any `json:"projection" yaml:"projection"`
}

// Handler serves recipe rendering over HTTP.
type Handler struct {
	renderers map[render.Mode]render.Renderer
	version   string
}

// NewHandler returns a Handler serving the fixed Markdown and PDF layouts.
// Template rendering is CLI only.
func NewHandler(version string) *Handler {
	return &Handler{
		renderers: map[render.Mode]render.Renderer{
			render.ModeMarkdown: render.NewMarkdownRenderer(),
			render.ModePDF:      render.NewPDFRenderer(),
		},
		version: version,
	}
}

func (h *Handler) rendererFor(r *http.Request) (render.Mode, render.Renderer, error) {
	mode := render.ModeMarkdown
	if v := r.URL.Query().Get(ParamMode); v != "" {
		mode = render.Mode(v)
	}
	renderer, ok := h.renderers[mode]
	if !ok {
		return mode, nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported render mode %q", mode),
			map[string]any{ParamMode: string(mode), "supported": []string{
				string(render.ModeMarkdown), string(render.ModePDF),
			}})
	}
	return mode, renderer, nil
}

// HandleRender renders the YAML recipe in the request body.
// Markdown is returned as text/markdown, or wrapped in a RenderResponse when
// the client accepts JSON. PDF is always returned as application/pdf.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RenderHandlerTimeout)
	defer cancel()

	if !allowPost(w, r) {
		return
	}

	mode, renderer, err := h.rendererFor(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid render mode", nil)
		return
	}

	opts, err := ParseRenderOptions(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid render options", nil)
		return
	}

	rec, ok := readRecipe(w, r)
	if !ok {
		return
	}

	out, err := renderWithContext(ctx, renderer, rec, opts)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to render recipe", nil)
		return
	}

	slog.Debug("recipe rendered",
		"name", rec.Name,
		"mode", mode,
		"servings", opts.DisplayServings(rec),
		"bytes", len(out),
	)

	if mode == render.ModePDF {
		w.Header().Set("Content-Disposition", contentDisposition(rec.Name+renderer.Extension()))
		serializer.RespondText(w, http.StatusOK, pdfContentType, out)
		return
	}

	if wantsJSON(r) {
		resp := RenderResponse{Content: out}
		resp.Init(header.KindRenderResult, APIVersion, h.version)
		serializer.RespondJSON(w, http.StatusOK, resp)
		return
	}

	serializer.RespondText(w, http.StatusOK, markdownContentType, out)
}

// HandleProject returns the template projection of the YAML recipe in the
// request body.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	if !allowPost(w, r) {
		return
	}

	rec, ok := readRecipe(w, r)
	if !ok {
		return
	}

	resp := ProjectionResponse{Projection: render.Project(rec)}
	resp.Init(header.KindProjection, APIVersion, h.version)
	resp.Metadata["projection"] = render.ProjectionVersion

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// renderWithContext stops waiting for the renderer once ctx is done. The
// render itself runs to completion in the background.
func renderWithContext(ctx context.Context, renderer render.Renderer, rec *recipe.Recipe,
	opts render.Options) (string, error) {

	type result struct {
		out string
		err error
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: errors.NewWithContext(errors.ErrCodeInternal, "renderer panicked",
					map[string]any{"panic": fmt.Sprint(p)})}
			}
		}()
		out, err := renderer.Render(rec, opts)
		done <- result{out: out, err: err}
	}()

	select {
	case res := <-done:
		return res.out, res.err
	case <-ctx.Done():
		return "", errors.WrapWithContext(errors.ErrCodeUnavailable, "render timed out", context.Cause(ctx),
			map[string]any{"recipe": rec.Name, "timeout": defaults.RenderHandlerTimeout.String()})
	}
}

// contentDisposition formats an inline disposition per RFC 6266, using the
// RFC 2231 extended form for non-ASCII file names.
func contentDisposition(filename string) string {
	if v := mime.FormatMediaType("inline", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "inline"
}

func allowPost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": []string{http.MethodPost},
		})
	return false
}

// readRecipe parses the request body, writing the error response itself
// when that fails.
func readRecipe(w http.ResponseWriter, r *http.Request) (*recipe.Recipe, bool) {
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRecipeBodyBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if stderrors.As(err, &mbe) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidRequest,
				"Recipe document too large", false, map[string]any{"limit": mbe.Limit})
			return nil, false
		}
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Failed to read request body", false, map[string]any{"error": err.Error()})
		return nil, false
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Recipe document cannot be empty", false, nil)
		return nil, false
	}

	rec, err := recipe.Parse(data)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe document", nil)
		return nil, false
	}
	return rec, true
}

// ParseRenderOptions reads render options from the request query, starting
// from render.DefaultOptions.
func ParseRenderOptions(r *http.Request) (render.Options, error) {
	q := r.URL.Query()
	opts := render.DefaultOptions()

	if v := q.Get(ParamServings); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return opts, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"servings must be a positive integer", map[string]any{ParamServings: v})
		}
		opts = opts.WithServings(n)
	}

	flags := []struct {
		name   string
		target *bool
	}{
		{ParamFrontMatter, &opts.UseFrontMatter},
		{ParamMetadata, &opts.EmitMetadata},
		{ParamIngredients, &opts.EmitIngredients},
		{ParamSteps, &opts.EmitSteps},
	}
	for _, f := range flags {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				f.name+" must be a boolean", map[string]any{f.name: v})
		}
		*f.target = b
	}

	return opts, nil
}

func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "+json")
}
