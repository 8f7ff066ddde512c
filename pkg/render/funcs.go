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

package render

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sous-cookbook/sous/pkg/recipe"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"mul":    mul,
		"div":    div,
		"fmtnum": fmtnum,
		"title":  title,
		"join":   join,
	}
}

// title builds a Caser per call; Casers keep state and cannot be shared
// between concurrent renders.
func title(s string) string {
	return cases.Title(language.Und).String(s)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case nil:
		return 0, fmt.Errorf("expected a number, got nil")
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func mul(a, b any) (float64, error) {
	x, err := toFloat(a)
	if err != nil {
		return 0, err
	}
	y, err := toFloat(b)
	if err != nil {
		return 0, err
	}
	return x * y, nil
}

func div(a, b any) (float64, error) {
	x, err := toFloat(a)
	if err != nil {
		return 0, err
	}
	y, err := toFloat(b)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, fmt.Errorf("division by zero")
	}
	return x / y, nil
}

func fmtnum(v any) (string, error) {
	f, err := toFloat(v)
	if err != nil {
		return "", err
	}
	return recipe.FormatAmount(f), nil
}

func join(items []string, sep string) string {
	return strings.Join(items, sep)
}
