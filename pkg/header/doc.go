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

// Package header provides the common resource header attached to structured
// sous output (API responses, cookbook listings, template projections).
//
// The Header follows Kubernetes-style conventions:
//
//	kind: RenderResult
//	apiVersion: v1
//	metadata:
//	  timestamp: "2026-01-15T10:30:00Z"
//	  version: v1.0.0
//
// Create one with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindRenderResult),
//	    header.WithAPIVersion("v1"),
//	    header.WithMetadata("recipe", "soup.yml"),
//	)
//
// or initialize an embedded header in place with Init.
package header
