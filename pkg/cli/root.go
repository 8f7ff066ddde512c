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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/sous-cookbook/sous/pkg/errors"
	"github.com/sous-cookbook/sous/pkg/logging"
)

const (
	name           = "sous"
	versionDefault = "dev"
	envPrefix      = "SOUS_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes returned by Execute.
const (
	ExitCodeOK     = 0
	ExitCodeError  = 1
	ExitCodeWrite  = 2
	ExitCodeRender = 3
)

// Execute runs the sous CLI with os.Args and exits on failure.
// It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Render YAML recipes to Markdown or custom templates",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `sous converts YAML recipe documents into rendered documents.

The built-in Markdown renderer can rescale ingredient amounts to a different
number of servings and toggle the metadata, ingredients and method sections.
The template renderer executes a Go text/template against a flat projection
of the recipe; run "sous inspect" to see the exact fields a template receives.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to a YAML or JSON file with render defaults",
				Sources: cli.EnvVars(envPrefix + "CONFIG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			renderCmd(),
			listCmd(),
			inspectCmd(),
		},
	}
}

// outputError marks failures to write rendered output.
type outputError struct {
	err error
}

func (e *outputError) Error() string {
	return e.err.Error()
}

func (e *outputError) Unwrap() error {
	return e.err
}

func exitCode(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	var oe *outputError
	if stderrors.As(err, &oe) {
		return ExitCodeWrite
	}
	if errors.IsCode(err, errors.ErrCodeTemplate) {
		return ExitCodeRender
	}
	return ExitCodeError
}
