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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	renderTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sous_render_total",
			Help: "Total number of recipe renders by mode and status",
		},
		[]string{"mode", "status"},
	)
	renderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sous_render_duration_seconds",
			Help:    "Duration of recipe renders in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"mode"},
	)
)

func observeRender(mode Mode, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	renderTotal.WithLabelValues(string(mode), status).Inc()
	renderDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
}
