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

package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sous-cookbook/sous/pkg/errors"
)

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code errors.ErrorCode
		want int
	}{
		{"parse", errors.ErrCodeParse, http.StatusBadRequest},
		{"invalid request", errors.ErrCodeInvalidRequest, http.StatusBadRequest},
		{"not found", errors.ErrCodeNotFound, http.StatusNotFound},
		{"method not allowed", errors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{"template", errors.ErrCodeTemplate, http.StatusUnprocessableEntity},
		{"rate limit", errors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"unavailable", errors.ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"io", errors.ErrCodeIO, http.StatusInternalServerError},
		{"internal", errors.ErrCodeInternal, http.StatusInternalServerError},
		{"unknown defaults to internal", errors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.want {
				t.Fatalf("HTTPStatusFromCode(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryableFromCode(t *testing.T) {
	tests := []struct {
		name string
		code errors.ErrorCode
		want bool
	}{
		{"parse", errors.ErrCodeParse, false},
		{"template", errors.ErrCodeTemplate, false},
		{"invalid request", errors.ErrCodeInvalidRequest, false},
		{"not found", errors.ErrCodeNotFound, false},
		{"method not allowed", errors.ErrCodeMethodNotAllowed, false},
		{"io", errors.ErrCodeIO, true},
		{"unavailable", errors.ErrCodeUnavailable, true},
		{"rate limit", errors.ErrCodeRateLimitExceeded, true},
		{"internal", errors.ErrCodeInternal, true},
		{"unknown defaults false", errors.ErrorCode("SOMETHING_ELSE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryableFromCode(tt.code); got != tt.want {
				t.Fatalf("retryableFromCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	t.Run("both empty returns nil", func(t *testing.T) {
		if got := mergeDetails(nil, nil); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
		if got := mergeDetails(map[string]any{}, map[string]any{}); got != nil {
			t.Fatalf("expected nil, got %#v", got)
		}
	})

	t.Run("merges and second overwrites", func(t *testing.T) {
		a := map[string]any{"a": 1, "shared": "old"}
		b := map[string]any{"b": 2, "shared": "new"}

		got := mergeDetails(a, b)
		if got["a"].(int) != 1 || got["b"].(int) != 2 {
			t.Fatalf("expected a=1 b=2, got %#v", got)
		}
		if got["shared"].(string) != "new" {
			t.Fatalf("expected shared to be overwritten to 'new', got %#v", got["shared"])
		}
		if a["shared"].(string) != "old" {
			t.Fatal("expected inputs to be left untouched")
		}
	})
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp
}

func TestWriteError_WritesErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "req-123"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, errors.ErrCodeInvalidRequest, "bad request", false, map[string]any{"k": "v"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeInvalidRequest) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeInvalidRequest, resp.Code)
	}
	if resp.Message != "bad request" {
		t.Fatalf("expected message %q, got %q", "bad request", resp.Message)
	}
	if resp.RequestID != "req-123" {
		t.Fatalf("expected requestId %q, got %q", "req-123", resp.RequestID)
	}
	if resp.Retryable {
		t.Fatal("expected retryable=false, got true")
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
	if resp.Details == nil || resp.Details["k"].(string) != "v" {
		t.Fatalf("expected details to include k=v, got %#v", resp.Details)
	}
}

func TestWriteError_GeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusNotFound, errors.ErrCodeNotFound, "missing", false, nil)

	if resp := decodeError(t, w); resp.RequestID == "" {
		t.Fatal("expected a generated requestId")
	}
}

func TestWriteErrorFromErr_ParseErrorIsBadRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/render", nil)
	w := httptest.NewRecorder()

	err := errors.NewWithContext(errors.ErrCodeParse, "servings must be positive",
		map[string]any{"field": "servings"})

	WriteErrorFromErr(w, req, err, "fallback", nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeParse) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeParse, resp.Code)
	}
	if resp.Retryable {
		t.Fatal("expected parse errors not to be retryable")
	}
	if resp.Details["field"].(string) != "servings" {
		t.Fatalf("expected field=servings, got %#v", resp.Details)
	}
	if _, ok := resp.Details["error"]; ok {
		t.Fatal("expected no cause detail without a cause")
	}
}

func TestWriteErrorFromErr_StructuredErrorMapsStatusAndDetails(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	cause := stderrors.New("listener is draining")
	err := errors.WrapWithContext(errors.ErrCodeUnavailable, "service unavailable", cause, map[string]any{"component": "renderer"})

	WriteErrorFromErr(w, req, err, "fallback", map[string]any{"extra": "yes"})

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeUnavailable) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeUnavailable, resp.Code)
	}
	if resp.Message != "service unavailable" {
		t.Fatalf("expected message %q, got %q", "service unavailable", resp.Message)
	}
	if !resp.Retryable {
		t.Fatal("expected retryable=true")
	}
	if resp.Details["component"].(string) != "renderer" {
		t.Fatalf("expected component=renderer, got %#v", resp.Details["component"])
	}
	if resp.Details["extra"].(string) != "yes" {
		t.Fatalf("expected extra=yes, got %#v", resp.Details["extra"])
	}
	if resp.Details["error"].(string) != "listener is draining" {
		t.Fatalf("expected error cause propagated, got %#v", resp.Details["error"])
	}
}

func TestWriteErrorFromErr_WrappedStructuredError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	inner := errors.New(errors.ErrCodeTemplate, "template execution failed")
	WriteErrorFromErr(w, req, fmt.Errorf("render: %w", inner), "fallback", nil)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, w.Code)
	}
}

func TestWriteErrorFromErr_NonStructuredFallsBackToInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteErrorFromErr(w, req, stderrors.New("boom"), "fallback", map[string]any{"x": "y"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	resp := decodeError(t, w)
	if resp.Code != string(errors.ErrCodeInternal) {
		t.Fatalf("expected code %q, got %q", errors.ErrCodeInternal, resp.Code)
	}
	if resp.Message != "fallback" {
		t.Fatalf("expected fallback message, got %q", resp.Message)
	}
	if !resp.Retryable {
		t.Fatal("expected retryable=true")
	}
	if resp.Details["x"].(string) != "y" {
		t.Fatalf("expected details to include x=y, got %#v", resp.Details)
	}
	if resp.Details["error"].(string) != "boom" {
		t.Fatalf("expected details error=boom, got %#v", resp.Details["error"])
	}
}
