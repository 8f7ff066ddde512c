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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/sous-cookbook/sous/pkg/serializer"
)

// Config holds render defaults read from the --config file. Flags and
// environment variables take precedence over it.
type Config struct {
	Mode            string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Template        string `json:"template,omitempty" yaml:"template,omitempty"`
	Output          string `json:"output,omitempty" yaml:"output,omitempty"`
	Servings        *int   `json:"servings,omitempty" yaml:"servings,omitempty"`
	FrontMatter     *bool  `json:"frontMatter,omitempty" yaml:"frontMatter,omitempty"`
	NoMetadata      *bool  `json:"noMetadata,omitempty" yaml:"noMetadata,omitempty"`
	NoIngredients   *bool  `json:"noIngredients,omitempty" yaml:"noIngredients,omitempty"`
	NoSteps         *bool  `json:"noSteps,omitempty" yaml:"noSteps,omitempty"`
	Parallel        int    `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	ContinueOnError *bool  `json:"continueOnError,omitempty" yaml:"continueOnError,omitempty"`
}

// loadConfig reads the file named by --config, or returns an empty Config.
func loadConfig(cmd *cli.Command) (*Config, error) {
	path := cmd.String("config")
	if path == "" {
		return &Config{}, nil
	}

	cfg, err := serializer.FromFile[Config](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %q: %w", path, err)
	}
	slog.Debug("config loaded", "path", path)
	return cfg, nil
}

// stringFlag prefers an explicitly set flag (or env var) over the config value.
func stringFlag(cmd *cli.Command, flag, fromConfig string) string {
	if cmd.IsSet(flag) || fromConfig == "" {
		return cmd.String(flag)
	}
	return fromConfig
}

func boolFlag(cmd *cli.Command, flag string, fromConfig *bool) bool {
	if cmd.IsSet(flag) || fromConfig == nil {
		return cmd.Bool(flag)
	}
	return *fromConfig
}

func intFlag(cmd *cli.Command, flag string, fromConfig *int) int {
	if cmd.IsSet(flag) || fromConfig == nil {
		return int(cmd.Int(flag))
	}
	return *fromConfig
}
