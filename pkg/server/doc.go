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

// Package server provides the HTTP scaffolding behind sousd: routing, the
// request middleware chain, structured error responses, health probes, and
// graceful shutdown.
//
// Domain handlers are supplied by the caller and mounted under the
// middleware chain:
//
//	s := server.New(
//	    server.WithName("sousd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/render": handler.HandleRender,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Middleware
//
// Every registered handler runs behind, in order: Prometheus metrics, API
// version negotiation (X-API-Version), request IDs (X-Request-Id, UUID),
// panic recovery, token bucket rate limiting (golang.org/x/time/rate), and
// request logging.
//
// # System endpoints
//
//	GET /         service name, version, readiness, and routes
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until the listener is up and during shutdown
//	GET /metrics  Prometheus exposition
//
// # Errors
//
// Failures are written as ErrorResponse JSON. WriteErrorFromErr maps
// pkg/errors codes to HTTP status:
//
//	PARSE, INVALID_REQUEST  400
//	NOT_FOUND               404
//	METHOD_NOT_ALLOWED      405
//	TEMPLATE                422
//	RATE_LIMIT_EXCEEDED     429
//	SERVICE_UNAVAILABLE     503
//	anything else           500
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment;
// timeouts default to the values in pkg/defaults.
package server
