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
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sous-cookbook/sous/pkg/cookbook"
	"github.com/sous-cookbook/sous/pkg/defaults"
	"github.com/sous-cookbook/sous/pkg/recipe"
	"github.com/sous-cookbook/sous/pkg/render"
	"github.com/sous-cookbook/sous/pkg/serializer"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render a recipe file, a cookbook directory, or a recipe URL",
		ArgsUsage:             "<file|dir|url>",
		Description: `Render recipes with the built-in Markdown renderer or a Go text/template.

Input may be:
  - a recipe file (.yml/.yaml), rendered to --output or stdout
  - a directory of recipe files (cookbook mode), rendered one document per
    recipe into the --output directory (default "render")
  - an http(s) URL to a recipe document
  - "-" to read a recipe document from stdin

Layout options (--servings, --no-*) apply to the Markdown and PDF renderers;
--front-matter applies to Markdown only. In template mode the template reads the recipe as written and
is loaded from --template, or from stdin when --template is omitted.

# Examples

Double a recipe:
  sous render --servings 8 pancakes.yml

Render a cookbook for a static site generator:
  sous render --front-matter --output site/recipes recipes/

Render with a template:
  sous render --mode template --template card.html.tmpl pancakes.yml

Print a cookbook:
  sous render --mode pdf --output print recipes/`,
		Flags: []cli.Flag{
			outputFlag("Output file (single recipe, default: stdout) or directory (cookbook, default: render)"),
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Value:   string(render.ModeMarkdown),
				Usage: fmt.Sprintf("Renderer to use (supported values: %s)",
					strings.Join(render.SupportedModes(), ", ")),
				Sources: cli.EnvVars(envPrefix + "MODE"),
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Template file for template mode (default: read from stdin)",
				Sources: cli.EnvVars(envPrefix + "TEMPLATE"),
			},
			&cli.IntFlag{
				Name:    "servings",
				Aliases: []string{"s"},
				Usage:   "Rescale ingredient amounts to this many servings (markdown and pdf)",
				Sources: cli.EnvVars(envPrefix + "SERVINGS"),
			},
			&cli.BoolFlag{
				Name:    "front-matter",
				Aliases: []string{"f"},
				Usage:   "Use a YAML front matter header instead of a Markdown heading (markdown only)",
				Sources: cli.EnvVars(envPrefix + "FRONT_MATTER"),
			},
			&cli.BoolFlag{
				Name:  "no-metadata",
				Usage: "Omit the title, author and timing header (markdown and pdf)",
			},
			&cli.BoolFlag{
				Name:  "no-ingredients",
				Usage: "Omit the ingredients section (markdown and pdf)",
			},
			&cli.BoolFlag{
				Name:  "no-steps",
				Usage: "Omit the method section (markdown and pdf)",
			},
			&cli.IntFlag{
				Name:    "parallel",
				Value:   defaults.RenderParallelism,
				Usage:   "Number of recipes rendered concurrently in cookbook mode",
				Sources: cli.EnvVars(envPrefix + "PARALLEL"),
			},
			&cli.BoolFlag{
				Name:    "continue-on-error",
				Usage:   "Keep rendering the rest of a cookbook after a recipe fails",
				Sources: cli.EnvVars(envPrefix + "CONTINUE_ON_ERROR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input, err := requireInput(cmd, "recipe file, directory or URL")
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			opts, err := parseRenderOptions(cmd, cfg)
			if err != nil {
				return err
			}

			renderer, err := newRenderer(ctx, cmd, cfg, input)
			if err != nil {
				return fmt.Errorf("failed to initialize renderer: %w", err)
			}

			output := stringFlag(cmd, "output", cfg.Output)

			if info, statErr := os.Stat(input); statErr == nil && info.IsDir() {
				return renderCookbook(ctx, cmd, cfg, input, output, renderer, opts)
			}
			return renderRecipe(ctx, cmd, input, output, renderer, opts)
		},
	}
}

// parseRenderOptions builds render options from flags, env vars and config.
func parseRenderOptions(cmd *cli.Command, cfg *Config) (render.Options, error) {
	opts := render.Options{
		EmitMetadata:    !boolFlag(cmd, "no-metadata", cfg.NoMetadata),
		EmitIngredients: !boolFlag(cmd, "no-ingredients", cfg.NoIngredients),
		EmitSteps:       !boolFlag(cmd, "no-steps", cfg.NoSteps),
		UseFrontMatter:  boolFlag(cmd, "front-matter", cfg.FrontMatter),
	}

	if cmd.IsSet("servings") || cfg.Servings != nil {
		servings := intFlag(cmd, "servings", cfg.Servings)
		if servings < 1 {
			return opts, fmt.Errorf("servings must be at least 1, got %d", servings)
		}
		opts = opts.WithServings(servings)
	}
	return opts, nil
}

func newRenderer(ctx context.Context, cmd *cli.Command, cfg *Config, input string) (render.Renderer, error) {
	mode := render.Mode(stringFlag(cmd, "mode", cfg.Mode))
	if mode.IsUnknown() {
		return nil, fmt.Errorf("unknown render mode: %q (supported values: %s)",
			mode, strings.Join(render.SupportedModes(), ", "))
	}

	if mode != render.ModeTemplate {
		if tmpl := stringFlag(cmd, "template", cfg.Template); tmpl != "" {
			slog.Warn("template is ignored outside template mode", "mode", mode, "template", tmpl)
		}
		return render.New(mode)
	}

	if cmd.IsSet("servings") || cmd.IsSet("front-matter") {
		slog.Warn("markdown options are ignored in template mode")
	}

	if tmpl := stringFlag(cmd, "template", cfg.Template); tmpl != "" {
		if serializer.IsURL(tmpl) {
			data, err := serializer.ReadSource(ctx, tmpl)
			if err != nil {
				return nil, err
			}
			return render.New(mode, render.WithTemplateText(tmpl, string(data)))
		}
		return render.New(mode, render.WithTemplateFile(tmpl))
	}

	if input == "-" {
		return nil, fmt.Errorf("--template is required when the recipe is read from stdin")
	}
	slog.Debug("reading template from stdin")
	return render.New(mode, render.WithTemplateReader("stdin", cmd.Root().Reader))
}

func renderRecipe(ctx context.Context, cmd *cli.Command, input, output string,
	renderer render.Renderer, opts render.Options) error {

	if input == "-" {
		data, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return fmt.Errorf("failed to read recipe from stdin: %w", err)
		}
		r, err := recipe.Parse(data)
		if err != nil {
			return fmt.Errorf("failed to load recipe: %w", err)
		}
		return renderTo(cmd, r, output, renderer, opts)
	}

	slog.Debug("loading recipe", "source", input)
	r, err := recipe.LoadSource(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to load recipe: %w", err)
	}
	return renderTo(cmd, r, output, renderer, opts)
}

func renderTo(cmd *cli.Command, r *recipe.Recipe, output string,
	renderer render.Renderer, opts render.Options) error {

	doc, err := renderer.Render(r, opts)
	if err != nil {
		return fmt.Errorf("failed to render recipe: %w", err)
	}

	if output == "" {
		if _, err := io.WriteString(cmd.Root().Writer, doc); err != nil {
			return &outputError{err: fmt.Errorf("failed to write output: %w", err)}
		}
		return nil
	}
	if err := serializer.WriteOutput(output, doc); err != nil {
		return &outputError{err: fmt.Errorf("failed to write output: %w", err)}
	}
	slog.Info("recipe rendered", "recipe", r.Name, "output", output)
	return nil
}

func renderCookbook(ctx context.Context, cmd *cli.Command, cfg *Config, dir, output string,
	renderer render.Renderer, opts render.Options) error {

	cb, err := cookbook.Open(dir)
	if err != nil {
		return err
	}

	sink, err := cookbook.NewDirSink(output, renderer.Extension())
	if err != nil {
		return &outputError{err: err}
	}

	parallel := int(cmd.Int("parallel"))
	if !cmd.IsSet("parallel") && cfg.Parallel > 0 {
		parallel = cfg.Parallel
	}
	batch := cookbook.BatchOptions{
		Parallelism:     parallel,
		ContinueOnError: boolFlag(cmd, "continue-on-error", cfg.ContinueOnError),
	}

	slog.Info("rendering cookbook",
		"path", cb.Path(),
		"recipes", len(cb.Recipes()),
		"output", sink.Dir,
		"parallel", batch.Parallelism)

	results, err := cb.RenderAll(ctx, renderer, opts, outputSink{sink}, batch)
	if err != nil {
		return fmt.Errorf("failed to render cookbook %s: %w", dir, err)
	}

	if failed := cookbook.Failed(results); len(failed) > 0 {
		errs := make([]error, 0, len(failed))
		for _, res := range failed {
			fmt.Fprintf(cmd.Root().ErrWriter, "failed to render recipe %s: %v\n", res.Name, res.Err)
			errs = append(errs, res.Err)
		}
		return fmt.Errorf("%d of %d recipes failed to render: %w",
			len(failed), len(results), stderrors.Join(errs...))
	}

	slog.Info("cookbook rendered", "recipes", len(results), "output", sink.Dir)
	return nil
}

// outputSink marks sink failures as output errors so they map to ExitCodeWrite.
type outputSink struct {
	cookbook.Sink
}

func (s outputSink) Write(name, content string) (string, error) {
	path, err := s.Sink.Write(name, content)
	if err != nil {
		return "", &outputError{err: err}
	}
	return path, nil
}

