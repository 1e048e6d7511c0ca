// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/magicsq/finding"
	"github.com/katalvlaran/magicsq/logging"
	"github.com/katalvlaran/magicsq/matrix"
)

// Engine runs analyses with a fixed Config. It is safe to call Run from
// several goroutines; each call owns its aggregator.
type Engine struct {
	cfg     Config
	log     *logging.Logger
	metrics *Metrics
	now     func() time.Time
	newID   func() string
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger sets the logger (default: no-op).
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithClock replaces time.Now, for reproducible timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDGenerator replaces the random run ID source.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// New validates cfg and builds an Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:   cfg,
		log:   logging.NewNop(),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Metrics returns the metrics set by WithMetrics, or nil.
func (e *Engine) Metrics() *Metrics { return e.metrics }

type stage struct {
	name string
	fn   func(context.Context) error
}

// Run analyzes m.
//
// Implementation:
//   - Stage 1: validation and basic statistics.
//   - Stage 2: number theory over the flat sequence.
//   - Stage 3: stride sweep (parallel when Workers > 1).
//   - Stage 4..9: transposed strides, named views, transforms, rotations,
//     keys and grid relations.
//
// Errors: ErrNilMatrix, or ctx.Err() wrapped with the stage it interrupted.
func (e *Engine) Run(ctx context.Context, m *matrix.Matrix) (*Result, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	runID := e.newID()
	ctx = logging.WithRunID(ctx, runID)
	started := e.now()

	r := &run{
		cfg:     e.cfg,
		m:       m,
		agg:     finding.NewAggregator(),
		metrics: e.metrics,
	}
	stages := []stage{
		{"validation", r.validation},
		{"number-theory", r.numberTheory},
		{"stride-sweep", r.strideSweep},
		{"transposed-stride", r.transposedStrides},
		{"views", r.views},
		{"transforms", r.transforms},
		{"rotations", r.rotations},
		{"keys", r.keys},
		{"relations", r.relations},
	}

	e.log.Debug(ctx, "analysis started",
		zap.Int("size", m.Size()),
		zap.Int("workers", e.cfg.Workers),
		zap.Float64("threshold", e.cfg.Threshold))
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("engine: %s: %w", s.name, err)
		}
		before, candidates := r.agg.Len(), r.candidates
		if err := s.fn(ctx); err != nil {
			return nil, fmt.Errorf("engine: %s: %w", s.name, err)
		}
		e.log.Debug(ctx, "stage finished",
			zap.String("stage", s.name),
			zap.Int("candidates", r.candidates-candidates),
			zap.Int("findings", r.agg.Len()-before))
	}

	elapsed := e.now().Sub(started)
	e.metrics.observeRun(elapsed)

	res := &Result{
		RunID:      runID,
		Matrix:     m,
		Validation: r.validationResult,
		Threshold:  e.cfg.Threshold,
		Findings:   r.agg.All(),
		Counts:     r.agg.Counts(),
		Candidates: r.candidates,
		Started:    started,
		Elapsed:    elapsed,
	}
	e.log.Info(ctx, "analysis complete",
		zap.Int("findings", len(res.Findings)),
		zap.Int("high_validity", len(res.HighValidity())),
		zap.Int("candidates", res.Candidates),
		zap.Duration("elapsed", elapsed))

	return res, nil
}
