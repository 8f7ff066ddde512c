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

// Package api exposes recipe rendering over HTTP as sousd.
//
// It wires render handlers into pkg/server, which owns the listener,
// middleware, health probes, and metrics.
//
// # Endpoints
//
//	POST /v1/render   render the YAML recipe in the body
//	POST /v1/project  return the template projection of the recipe
//
// The render endpoint takes these query parameters:
//
//	mode=markdown|pdf   layout to render (default markdown)
//	servings=N          scale to N servings (N >= 1)
//	front_matter=bool   YAML front matter instead of a title heading
//	metadata=bool       include the title and summary (default true)
//	ingredients=bool    include the ingredient list (default true)
//	steps=bool          include the method (default true)
//
// Markdown responses are text/markdown unless the client sends
// Accept: application/json, in which case the document is wrapped in a
// RenderResponse. PDF responses are always application/pdf:
//
//	curl -X POST 'http://localhost:8080/v1/render?servings=8' \
//	  -H 'Content-Type: application/yaml' \
//	  --data-binary @pancakes.yaml
//
// Malformed recipes are rejected with 400 and a PARSE error code. Bodies
// over defaults.MaxRecipeBodyBytes are rejected with 413.
//
// # Configuration
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown window
//	LOG_LEVEL                 debug, info, warn, error
package api
