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

// Package blockfrost implements a small client for the Blockfrost Cardano API
// that resolves transaction inputs to the outputs they spend.
package blockfrost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/ratelimit"
)

const (
	DefaultDatumCacheSize = 256
	DefaultTimeout        = 30 * time.Second

	// LovelaceUnit is the amount unit of ADA
	LovelaceUnit = "lovelace"

	projectIdHeader = "project_id"
)

// jsonAPI keeps JSON numbers as json.Number so large datum integers are not
// rounded through float64
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

const (
	operationUtxos = "utxos"
	operationDatum = "datum"
)

type Client struct {
	projectId      string
	baseURL        string
	httpClient     *http.Client
	cache          Cache
	logger         *slog.Logger
	limiter        ratelimit.Limiter
	metrics        MetricsObserver
	datumCache     *lru.Cache
	datumCacheSize int
}

// New returns a client for the given network authenticated with projectId
func New(
	projectId string,
	network Network,
	opts ...ClientOptionFunc,
) (*Client, error) {
	baseURL, err := network.BaseURL()
	if err != nil {
		return nil, err
	}
	c := &Client{
		projectId:      projectId,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: DefaultTimeout},
		cache:          NewMemoryCache(),
		logger:         slog.Default(),
		limiter:        ratelimit.NewUnlimited(),
		datumCacheSize: DefaultDatumCacheSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.datumCacheSize <= 0 {
		return nil, fmt.Errorf("invalid datum cache size: %d", c.datumCacheSize)
	}
	datumCache, err := lru.New(c.datumCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create datum cache error: %w", err)
	}
	c.datumCache = datumCache
	return c, nil
}

// FetchUtxoSet returns the inputs and outputs of a transaction. Results are
// cached, so a given hash is requested at most once per client cache
func (c *Client) FetchUtxoSet(ctx context.Context, txHash string) (*TxUtxos, error) {
	if utxos, ok := c.cache.Get(txHash); ok {
		if c.metrics != nil {
			c.metrics.ObserveCacheHit()
		}
		return utxos, nil
	}
	var utxos TxUtxos
	path := "/txs/" + url.PathEscape(txHash) + "/utxos"
	if err := c.get(ctx, operationUtxos, path, &utxos); err != nil {
		return nil, err
	}
	c.cache.Set(txHash, &utxos)
	return &utxos, nil
}

// ResolvePointer returns the output at outputIndex of the transaction txHash
func (c *Client) ResolvePointer(
	ctx context.Context,
	txHash string,
	outputIndex uint32,
) (*ResolvedUtxo, error) {
	utxos, err := c.FetchUtxoSet(ctx, txHash)
	if err != nil {
		return nil, err
	}
	for _, output := range utxos.Outputs {
		if output.OutputIndex != outputIndex {
			continue
		}
		return newResolvedUtxo(output)
	}
	return nil, fmt.Errorf(
		"output index %d not found in tx %s: %w",
		outputIndex,
		txHash,
		ErrNotFound,
	)
}

// FetchDatumByHash returns the JSON value of a datum, or nil if the lookup
// fails for any reason
func (c *Client) FetchDatumByHash(ctx context.Context, datumHash string) any {
	if value, ok := c.datumCache.Get(datumHash); ok {
		return value
	}
	var resp datumResponse
	path := "/scripts/datum/" + url.PathEscape(datumHash)
	if err := c.get(ctx, operationDatum, path, &resp); err != nil {
		c.logger.Debug(
			"datum lookup failed",
			"datum_hash", datumHash,
			"error", err,
		)
		return nil
	}
	if resp.JsonValue != nil {
		c.datumCache.Add(datumHash, resp.JsonValue)
	}
	return resp.JsonValue
}

func (c *Client) get(
	ctx context.Context,
	operation string,
	path string,
	dest any,
) (err error) {
	c.limiter.Take()
	if c.metrics != nil {
		started := time.Now()
		defer func() {
			c.metrics.Observe(operation, err, started)
		}()
	}
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+path,
		nil,
	)
	if err != nil {
		return fmt.Errorf("create request error: %w", err)
	}
	// Set directly to keep the lowercase header name on the wire
	req.Header[projectIdHeader] = []string{c.projectId}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s error: %w", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response error: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, path, body)
	}
	if err := jsonAPI.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode %s response error: %w", path, err)
	}
	return nil
}

func newResolvedUtxo(output Utxo) (*ResolvedUtxo, error) {
	ret := &ResolvedUtxo{
		Address:     output.Address,
		OutputIndex: output.OutputIndex,
	}
	for _, amount := range output.Amount {
		quantity, err := strconv.ParseUint(amount.Quantity, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(
				"parse quantity of %s error: %w",
				amount.Unit,
				err,
			)
		}
		if amount.Unit == LovelaceUnit {
			ret.Lovelace = quantity
			continue
		}
		ret.Assets = append(
			ret.Assets,
			AssetQuantity{Unit: amount.Unit, Quantity: quantity},
		)
	}
	if output.DataHash != nil {
		ret.DatumHash = *output.DataHash
	}
	if output.ReferenceScriptHash != nil {
		ret.ScriptHash = *output.ReferenceScriptHash
	}
	if output.InlineDatum != nil && *output.InlineDatum != "" {
		var parsed any
		if err := jsonAPI.UnmarshalFromString(*output.InlineDatum, &parsed); err == nil {
			ret.InlineDatum = parsed
		} else {
			ret.InlineDatum = *output.InlineDatum
		}
	}
	return ret, nil
}

// IsNotFound reports whether err is caused by a missing transaction or output
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
