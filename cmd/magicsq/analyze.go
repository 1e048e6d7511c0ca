// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/magicsq/config"
	"github.com/katalvlaran/magicsq/engine"
	"github.com/katalvlaran/magicsq/logging"
	"github.com/katalvlaran/magicsq/report"
)

func runAnalyze(cmd *cobra.Command, o *rootOptions) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if o.watch {
		return watch(ctx, cmd, o, cfg, log)
	}
	_, err = analyzeOnce(ctx, cfg, log, cmd.OutOrStdout(), o.pretty)

	return err
}

// analyzeOnce runs the engine over the configured grid and writes every
// configured artifact.
func analyzeOnce(ctx context.Context, cfg *config.Config, log *logging.Logger, w io.Writer, pretty bool) (*engine.Result, error) {
	m, err := cfg.Matrix()
	if err != nil {
		return nil, err
	}
	ecfg, err := engine.ConfigFrom(cfg.Analysis)
	if err != nil {
		return nil, err
	}
	metrics := engine.NewMetrics()
	eng, err := engine.New(ecfg, engine.WithLogger(log), engine.WithMetrics(metrics))
	if err != nil {
		return nil, err
	}
	res, err := eng.Run(ctx, m)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithRunID(ctx, res.RunID)

	opts := report.Options{Timestamp: cfg.Output.Timestamp}
	size, err := report.WriteFile(cfg.Output.Path, res, opts)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, "report written",
		zap.String("path", cfg.Output.Path),
		zap.String("size", humanize.Bytes(uint64(size))))

	if p := cfg.Output.FindingsPath; p != "" {
		n, err := report.WriteFindings(p, res, cfg.Output.Timestamp)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "findings exported", zap.String("path", p), zap.String("size", humanize.Bytes(uint64(n))))
	}
	if p := cfg.Output.MetricsPath; p != "" {
		if err := metrics.WriteTextfile(p); err != nil {
			return nil, fmt.Errorf("metrics textfile: %w", err)
		}
		log.Info(ctx, "metrics written", zap.String("path", p))
	}

	if pretty {
		md, err := report.Markdown(res, opts)
		if err != nil {
			return nil, err
		}
		out, err := report.Pretty(md, 0)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(w, out); err != nil {
			return nil, err
		}
		return res, nil
	}

	return res, printSummary(w, res, cfg.Output.Path, size)
}
