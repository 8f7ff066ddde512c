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

package recipe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	parseStatusOK    = "ok"
	parseStatusError = "error"
)

var (
	// Recipe parsing metrics
	recipeParseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sous_recipe_parse_total",
			Help: "Total number of recipe documents parsed",
		},
		[]string{"status"},
	)
	recipeParseBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sous_recipe_parse_bytes",
			Help:    "Size of parsed recipe documents in bytes",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
	)
)
