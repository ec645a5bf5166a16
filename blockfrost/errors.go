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
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidCredentials = errors.New("invalid API key or wrong network for this key")
	ErrNotFound           = errors.New("not found")
	ErrRateLimited        = errors.New("rate limit exceeded, please wait and try again")
	ErrAPI                = errors.New("blockfrost API error")
)

// APIError describes a non-2xx response from the API. It unwraps to one of
// the sentinel errors above based on the status code
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func newAPIError(statusCode int, path string, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Path:       path,
		Body:       string(body),
	}
}

func (e *APIError) Error() string {
	switch e.StatusCode {
	case http.StatusForbidden:
		return ErrInvalidCredentials.Error()
	case http.StatusNotFound:
		return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
	case http.StatusTooManyRequests:
		return ErrRateLimited.Error()
	}
	return fmt.Sprintf("%s (%d): %s", ErrAPI, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusForbidden:
		return ErrInvalidCredentials
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	}
	return ErrAPI
}
