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

// Package errors provides structured error types for better observability
// and programmatic error handling across sous.
//
// Every failure surfaced by the core carries one of three codes:
//
//   - ErrCodeParse: malformed or incomplete recipe documents
//   - ErrCodeIO: file or network read/write failures
//   - ErrCodeTemplate: template compilation or expansion failures
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to read recipe",
//	    readErr,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
//
// Callers classify errors with IsCode, which follows wrapped chains:
//
//	if errors.IsCode(err, errors.ErrCodeParse) {
//	    // report the offending document
//	}
package errors
