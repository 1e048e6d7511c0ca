// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/magicsq/analyze"
	"github.com/katalvlaran/magicsq/codec"
	"github.com/katalvlaran/magicsq/extract"
	"github.com/katalvlaran/magicsq/finding"
	"github.com/katalvlaran/magicsq/matrix"
	"github.com/katalvlaran/magicsq/transform"
)

// run is the per-call state of Engine.Run. Only the sweep workers touch it
// concurrently, and they write only to their own slot of a results slice.
type run struct {
	cfg     Config
	m       *matrix.Matrix
	agg     *finding.Aggregator
	metrics *Metrics

	candidates       int
	validationResult Validation
}

func (r *run) add(f finding.Finding) {
	if r.agg.Add(f) {
		r.metrics.accepted(string(f.Tag), f.Candidate != nil && f.Score >= r.cfg.Threshold)
	}
}

func (r *run) addCandidate(tag finding.Tag, c finding.Candidate) {
	r.candidates++
	r.metrics.candidate(c.Spec.Strategy.String())

	f := finding.Finding{
		Tag:       tag,
		Payload:   fmt.Sprintf("%q %v", c.Text, c.Transformed),
		Score:     c.Score,
		Candidate: &c,
	}
	if analyze.IsPalindrome(c.Transformed) {
		f = f.Annotate("palindrome", finding.Bool(true))
	}
	if primes := analyze.PrimesIn(c.Transformed); len(primes) > 0 {
		f = f.Annotate("primes", finding.Ints(primes))
	}
	r.add(f)
}

func (r *run) score(tag finding.Tag, e extract.Extraction, chain transform.Chain, encs ...codec.Encoding) {
	for _, enc := range encs {
		r.addCandidate(tag, finding.NewCandidate(e, chain, enc))
	}
}

func (r *run) validation(context.Context) error {
	m := r.m
	diag, anti := m.DiagonalSums()
	constant, magic := m.MagicConstant()
	v := Validation{
		Size:            m.Size(),
		IsMagic:         magic,
		MagicConstant:   constant,
		PointSymmetric:  m.HasPointSymmetry(),
		Rotate180Equal:  m.Rotate180().Equal(m),
		RowSums:         m.RowSums(),
		ColumnSums:      m.ColumnSums(),
		MainDiagonalSum: diag,
		AntiDiagonalSum: anti,
		Total:           m.Total(),
		Min:             m.Min(),
		Max:             m.Max(),
		UniqueValues:    m.UniqueValues(),
	}
	r.validationResult = v

	payload := "not a magic square"
	if magic {
		payload = fmt.Sprintf("magic constant %d", constant)
	}
	r.add(finding.Finding{Tag: finding.TagMagicSquare, Payload: payload}.
		Annotate("magic", finding.Bool(magic)).
		Annotate("row-sums", finding.Ints(v.RowSums)).
		Annotate("column-sums", finding.Ints(v.ColumnSums)).
		Annotate("diagonal-sums", finding.Ints{diag, anti}))
	r.add(finding.Finding{Tag: finding.TagPointSymmetry, Payload: strconv.FormatBool(v.PointSymmetric)}.
		Annotate("symmetric", finding.Bool(v.PointSymmetric)))

	return nil
}

func (r *run) numberTheory(context.Context) error {
	flat := r.m.Flatten()

	dr := analyze.NewHistogram(flat, analyze.DigitalRootKey)
	r.add(finding.Finding{Tag: finding.TagDigitalRoot, Payload: dr.String()}.
		Annotate("histogram", finding.Histogram(dr)))

	for _, k := range r.cfg.Moduli {
		h := analyze.NewHistogram(flat, analyze.ModKey(k))
		r.add(finding.Finding{Tag: finding.TagModulo, Payload: fmt.Sprintf("mod %d: %s", k, h)}.
			Annotate("modulus", finding.Int(k)).
			Annotate("distinct", finding.Int(h.Len())).
			Annotate("histogram", finding.Histogram(h)))
	}

	for _, p := range analyze.Palindromes(flat, r.cfg.PalindromeMin, r.cfg.PalindromeMax) {
		r.add(finding.Finding{Tag: finding.TagPalindrome, Payload: fmt.Sprintf("start=%d len=%d %v", p.Start, p.Length, p.Values)}.
			Annotate("start", finding.Int(p.Start)).
			Annotate("length", finding.Int(p.Length)))
	}

	for _, p := range analyze.PrimesIn(flat) {
		r.add(finding.Finding{Tag: finding.TagPrime, Payload: strconv.Itoa(p)}.
			Annotate("prime", finding.Bool(true)).
			Annotate("digital-root", finding.Int(analyze.DigitalRoot(p))))
	}

	for _, v := range r.m.UniqueValues() {
		factors := analyze.Factorize(v)
		r.add(finding.Finding{Tag: finding.TagFactorization, Payload: factorPayload(v, factors)}.
			Annotate("factors", finding.Ints(factors)).
			Annotate("prime", finding.Bool(analyze.IsPrime(v))).
			Annotate("digital-root", finding.Int(analyze.DigitalRoot(v))))
	}

	return nil
}

func factorPayload(v int, factors []int) string {
	if len(factors) == 0 {
		return fmt.Sprintf("%d has no prime factors", v)
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.Itoa(f)
	}

	return fmt.Sprintf("%d = %s", v, strings.Join(parts, " × "))
}

// strideSweep evaluates the flat stride sweep with up to cfg.Workers goroutines.
func (r *run) strideSweep(ctx context.Context) error {
	opts := r.cfg.Sweep
	opts.View = extract.Flat
	exts, err := extract.Sweep(r.m, opts)
	if err != nil {
		return err
	}

	results := make([][]finding.Candidate, len(exts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, ex := range exts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cands := make([]finding.Candidate, len(sweepEncodings))
			for k, enc := range sweepEncodings {
				cands[k] = finding.NewCandidate(ex, transform.Identity, enc)
			}
			results[i] = cands
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, cands := range results {
		for _, c := range cands {
			r.addCandidate(finding.TagStride, c)
		}
	}

	return nil
}

func (r *run) transposedStrides(context.Context) error {
	strides := r.cfg.TransposedStrides
	if len(strides) == 0 {
		strides = []int{r.m.Size()}
	}
	length := r.m.Len()
	for _, n := range strides {
		for start := 0; start < min(n, length); start++ {
			e, err := extract.TransposedStride(r.m, n, start)
			if err != nil {
				return err
			}
			r.score(finding.TagTransposedStride, e, transform.Identity, codec.Mod256)
		}
	}

	return nil
}

func (r *run) views(context.Context) error {
	r.score(finding.TagFlat, extract.FlatOf(r.m), transform.Identity, codec.Encodings()...)
	for _, e := range extract.Rows(r.m) {
		r.score(finding.TagRow, e, transform.Identity, codec.Mod256)
	}
	for _, e := range extract.Columns(r.m) {
		r.score(finding.TagColumn, e, transform.Identity, codec.Mod256)
	}
	r.score(finding.TagDiagonal, extract.Diagonal(r.m), transform.Identity, codec.Mod256)
	r.score(finding.TagAntiDiagonal, extract.AntiDiagonal(r.m), transform.Identity, codec.Mod256)
	r.score(finding.TagSpiral, extract.Spiral(r.m), transform.Identity, codec.Mod256)

	return nil
}

func (r *run) transforms(context.Context) error {
	flat := extract.FlatOf(r.m)
	reverse := transform.MustChain(transform.Reverse())
	shift := transform.MustChain(transform.RotateLeft(1))

	r.score(finding.TagTransform, flat, reverse, codec.Mod256)
	for _, row := range extract.Rows(r.m) {
		r.score(finding.TagTransform, row, reverse, codec.Mod256)
	}
	for _, row := range extract.Rows(r.m) {
		r.score(finding.TagTransform, row, shift, codec.Mod256)
	}
	r.score(finding.TagTransform, flat, transform.MustChain(transform.XOR(r.cfg.XORKey)), codec.Mod256)
	r.score(finding.TagTransform, flat, transform.MustChain(transform.Sub(r.cfg.SubtractKey)), codec.Direct)
	for _, c := range r.cfg.Chains {
		r.score(finding.TagTransform, flat, c, codec.Mod256)
	}

	return nil
}

func (r *run) rotations(context.Context) error {
	for _, kind := range []extract.ViewKind{extract.ViewRotated90, extract.ViewRotated180} {
		e, err := extract.Extract(r.m, extract.Spec{Strategy: extract.StrategyFlat, View: extract.View{Kind: kind}})
		if err != nil {
			return err
		}
		r.score(finding.TagRotation, e, transform.Identity, codec.Mod256)
	}

	return nil
}

func (r *run) keys(context.Context) error {
	if r.cfg.Key != "" {
		kc := analyze.KeyCodes(r.cfg.Key)
		r.add(finding.Finding{
			Tag:     finding.TagKeyCode,
			Payload: fmt.Sprintf("%q codes=%v sum=%d product=%s", r.cfg.Key, kc.Codes, kc.Sum, kc.Product),
		}.Annotate("codes", finding.Ints(kc.Codes)).Annotate("sum", finding.Int(kc.Sum)))
		r.score(finding.TagKeyed, extract.Keyed(r.m, r.cfg.Key), transform.Identity, codec.Mod256)
	}
	for _, e := range extract.WordStrides(r.m, r.cfg.KeyWords) {
		r.score(finding.TagKeyed, e, transform.Identity, codec.Mod256)
	}

	return nil
}

func (r *run) relations(context.Context) error {
	for _, p := range analyze.CoordinatePairs(r.m.Flatten(), r.cfg.coordinateLimit()) {
		r.add(finding.Finding{Tag: finding.TagCoordinatePair, Payload: fmt.Sprintf("%d,%d: %d.%d", p.Index, p.Index+1, p.A, p.B)})
	}
	for _, q := range analyze.GoldenRatioNear(r.m, r.cfg.goldenTolerance()) {
		r.add(finding.Finding{Tag: finding.TagGoldenRatio, Payload: fmt.Sprintf("[%d,%d]/[%d,%d] = %.4f", q.Row, q.Col, q.Row, q.Col+1, q.Value)})
	}

	return nil
}
