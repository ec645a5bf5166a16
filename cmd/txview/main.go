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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/blinklabs-io/txview"
	"github.com/blinklabs-io/txview/blockfrost"
	"github.com/blinklabs-io/txview/internal/metrics"
	"github.com/bytedance/sonic"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/prometheus/client_golang/prometheus"
)

const envFile = ".env"

var config struct {
	Network     string `long:"network" env:"TXVIEW_NETWORK" description:"Blockfrost network (mainnet, preprod, preview)" default:"mainnet"`
	ProjectId   string `long:"project-id" env:"BLOCKFROST_PROJECT_ID" description:"Blockfrost project ID"`
	Cbor        string `long:"cbor" description:"transaction CBOR hex"`
	File        string `long:"file" description:"file containing the transaction CBOR hex. stdin is read when neither --cbor nor --file is given"`
	Rps         int    `long:"rps" env:"TXVIEW_RPS" description:"maximum Blockfrost requests per second, 0 for no limit" default:"10"`
	DatumLookup bool   `long:"datum-lookup" description:"fetch datums for outputs that only carry a datum hash"`
	Debug       bool   `long:"debug" description:"enable debug logging"`
	NoProgress  bool   `long:"no-progress" description:"don't show progress on stderr"`
	MetricsFile string `long:"metrics-file" env:"TXVIEW_METRICS_FILE" description:"write Blockfrost client metrics to this file in the Prometheus text format"`
}

func main() {
	// A missing .env file is fine
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load %s: %s\n", envFile, err)
		os.Exit(1)
	}
	if _, err := flags.Parse(&config); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if config.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(
			colorable.NewColorableStderr(),
			&slog.HandlerOptions{Level: logLevel},
		),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	if config.ProjectId == "" {
		return errors.New("a Blockfrost project ID is required")
	}
	cborHex, err := readInput()
	if err != nil {
		return err
	}
	network, err := blockfrost.ParseNetwork(config.Network)
	if err != nil {
		return err
	}
	client, err := blockfrost.New(
		config.ProjectId,
		network,
		blockfrost.WithLogger(logger),
		blockfrost.WithRateLimit(config.Rps),
		blockfrost.WithMetrics(metrics.NewBlockfrostClient(network.String())),
	)
	if err != nil {
		return fmt.Errorf("create Blockfrost client: %w", err)
	}

	var progress *progressSink
	opts := []txview.AssembleOptionFunc{
		txview.WithLogger(logger),
		txview.WithDatumLookup(config.DatumLookup),
	}
	if !config.NoProgress {
		progress = newProgressSink()
		opts = append(opts, txview.WithProgressFunc(progress.Report))
	}
	info, err := txview.Assemble(ctx, cborHex, client, opts...)
	progress.Close()
	if err != nil {
		return err
	}

	out, err := sonic.ConfigStd.MarshalIndent(newOutput(info), "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))

	if config.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(config.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func readInput() (string, error) {
	switch {
	case config.Cbor != "" && config.File != "":
		return "", errors.New("only one of --cbor and --file may be given")
	case config.Cbor != "":
		return config.Cbor, nil
	case config.File != "":
		data, err := os.ReadFile(config.File)
		if err != nil {
			return "", fmt.Errorf("read transaction file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
