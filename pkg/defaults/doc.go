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

// Package defaults provides centralized configuration constants for sous.
//
// This package defines timeout values, size limits, and other configuration
// defaults used across the codebase so the CLI and the API server stay in step.
//
// # Categories
//
//   - Handler timeouts: For HTTP render request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For fetching remote recipes
//   - Render defaults: Output directory, extensions, batch concurrency
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/sous-cookbook/sous/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RenderHandlerTimeout)
//	defer cancel()
package defaults
