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
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/sous-cookbook/sous/pkg/recipe"
	"github.com/sous-cookbook/sous/pkg/render"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Print the fields a template receives for a recipe",
		ArgsUsage:             "<file|url|->",
		Description: fmt.Sprintf(`Print the projection of a recipe exactly as the template renderer sees it
(projection %s). Metadata fields are at the top level; absent optional
fields are null.

The projection can be output in JSON, YAML, or table format.`, render.ProjectionVersion),
		Flags: []cli.Flag{
			outputFlag("Output file path (default: stdout)"),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			input, err := requireInput(cmd, "recipe file or URL")
			if err != nil {
				return err
			}

			var r *recipe.Recipe
			if input == "-" {
				data, readErr := io.ReadAll(cmd.Root().Reader)
				if readErr != nil {
					return fmt.Errorf("failed to read recipe from stdin: %w", readErr)
				}
				r, err = recipe.Parse(data)
			} else {
				r, err = recipe.LoadSource(ctx, input)
			}
			if err != nil {
				return fmt.Errorf("failed to load recipe: %w", err)
			}

			ser := newStructuredWriter(cmd, outFormat)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, render.Project(r))
		},
	}
}
