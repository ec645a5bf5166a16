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

package blockfrost

import (
	"log/slog"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
)

// MetricsObserver receives the outcome of each request
type MetricsObserver interface {
	Observe(operation string, err error, started time.Time)
	ObserveCacheHit()
}

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithHTTPClient specifies the HTTP client used for requests
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the network API endpoint
func WithBaseURL(baseURL string) ClientOptionFunc {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithCache specifies the UTxO set cache. A new MemoryCache is used by default
func WithCache(cache Cache) ClientOptionFunc {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger specifies the logger. The default is slog.Default()
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit limits outbound requests to the given number per second. A
// value of 0 or less disables limiting
func WithRateLimit(rps int) ClientOptionFunc {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = ratelimit.NewUnlimited()
			return
		}
		c.limiter = ratelimit.New(rps)
	}
}

// WithMetrics specifies an observer for request metrics
func WithMetrics(metrics MetricsObserver) ClientOptionFunc {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// WithDatumCacheSize specifies how many datum lookups are kept
func WithDatumCacheSize(size int) ClientOptionFunc {
	return func(c *Client) {
		c.datumCacheSize = size
	}
}
