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

// Package cli implements the sous command-line interface.
//
// # Commands
//
// render - Render recipes:
//
//	sous render [--mode markdown|template|pdf] [--template FILE] [--servings N]
//	            [--front-matter] [--no-metadata] [--no-ingredients] [--no-steps]
//	            [--output PATH] <file|dir|url|->
//
// A single recipe is written to --output or stdout. A directory is rendered
// as a cookbook: one document per recipe file, written to the --output
// directory (default "render") and named after the recipe file with the
// renderer's extension. Cookbook recipes are rendered in parallel
// (--parallel); by default the first failure stops the batch, with
// --continue-on-error every recipe is attempted.
//
// list - List the recipes of a cookbook:
//
//	sous list [--format yaml|json|table] [--output FILE] <dir>
//
// inspect - Print the template projection of a recipe:
//
//	sous inspect [--format yaml|json|table] [--output FILE] <file|url|->
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--config       YAML or JSON file with render defaults
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Configuration File
//
// Keys mirror the render flags. Explicit flags and environment variables win
// over the file:
//
//	mode: markdown
//	output: site/recipes
//	frontMatter: true
//	servings: 4
//	parallel: 8
//	continueOnError: true
//
// # Environment Variables
//
//	LOG_LEVEL               Logging verbosity
//	SOUS_CONFIG             Same as --config
//	SOUS_MODE, SOUS_TEMPLATE, SOUS_SERVINGS, SOUS_FRONT_MATTER,
//	SOUS_OUTPUT, SOUS_FORMAT, SOUS_PARALLEL, SOUS_CONTINUE_ON_ERROR
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreadable or invalid recipe)
//	2  Output could not be written
//	3  Template failed to compile or render
package cli
