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

// Package logging provides structured logging utilities for sous components.
//
// # Overview
//
// This package wraps the standard library slog package with sous-specific
// defaults so the CLI and the API server log the same way. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sousd", "v1.0.0")
//	    slog.Info("rendering recipe", "path", path)
//	}
//
// Setting an explicit log level (flags override LOG_LEVEL):
//
//	logging.SetDefaultStructuredLoggerWithLevel("sous", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug sous render soup.yml
//
// # Output Format
//
// All logs are written to stderr in JSON format so they never mix with
// rendered documents written to stdout:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recipe rendered",
//	    "module": "sous",
//	    "version": "v1.0.0",
//	    "recipe": "soup.yml"
//	}
package logging
