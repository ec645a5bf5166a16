// Copyright 2025 Blink Labs Software
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

// Package metrics exposes Prometheus collectors for outbound calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockfrostRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txview",
		Subsystem: "blockfrost_client",
		Name:      "requests_total",
		Help:      "Count of Blockfrost API requests.",
	}, []string{"operation", "network", "status"})

	blockfrostRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txview",
		Subsystem: "blockfrost_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of Blockfrost API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})

	blockfrostCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txview",
		Subsystem: "blockfrost_client",
		Name:      "cache_hits_total",
		Help:      "Count of UTxO set lookups served from the cache.",
	}, []string{"network"})
)

// BlockfrostClient tracks metrics for a Blockfrost client bound to a network
type BlockfrostClient struct {
	network string
}

func NewBlockfrostClient(network string) *BlockfrostClient {
	if network == "" {
		network = "unknown"
	}
	return &BlockfrostClient{network: network}
}

// Observe records the outcome and duration of a single request
func (m BlockfrostClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	blockfrostRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	blockfrostRequestDuration.WithLabelValues(operation, m.network, status).
		Observe(time.Since(started).Seconds())
}

// ObserveCacheHit records a lookup served without a request
func (m BlockfrostClient) ObserveCacheHit() {
	blockfrostCacheHitsTotal.WithLabelValues(m.network).Inc()
}
