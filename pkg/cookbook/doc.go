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

// Package cookbook manages a directory of recipe files.
//
// Open scans a directory (non-recursively) for recipe documents, by default
// *.yml and *.yaml, and keeps their file names in sorted order:
//
//	cb, err := cookbook.Open("recipes")
//	for _, name := range cb.Recipes() {
//	    r, err := cb.Load(name)
//	    ...
//	}
//
// RenderAll renders every recipe with one renderer and hands each document
// to a Sink. Recipes share no state, so they are rendered in parallel up to
// BatchOptions.Parallelism. By default the first failure cancels the rest of
// the batch; with ContinueOnError every recipe is attempted and failures are
// reported per Result.
//
//	sink, err := cookbook.NewDirSink("render", renderer.Extension())
//	results, err := cb.RenderAll(ctx, renderer, render.DefaultOptions(), sink,
//	    cookbook.BatchOptions{Parallelism: 4})
package cookbook
