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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/sous-cookbook/sous/pkg/cookbook"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List the recipes of a cookbook directory",
		ArgsUsage:             "<dir>",
		Description: `List every recipe file in a cookbook directory with its name, author and
serving count. Files that fail to parse are listed with their error.

The listing can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag("Output file path (default: stdout)"),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			dir, err := requireInput(cmd, "cookbook directory")
			if err != nil {
				return err
			}

			cb, err := cookbook.Open(dir)
			if err != nil {
				return err
			}

			ser := newStructuredWriter(cmd, outFormat)
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, cb.List(version))
		},
	}
}
