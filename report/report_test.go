// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magicsq/engine"
	"github.com/katalvlaran/magicsq/matrix"
	"github.com/katalvlaran/magicsq/report"
)

var fixed = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func analyze(t *testing.T) *engine.Result {
	t.Helper()
	e, err := engine.New(engine.DefaultConfig(),
		engine.WithIDGenerator(func() string { return "run-0001" }),
		engine.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)
	res, err := e.Run(context.Background(), matrix.MustNew(matrix.ReferenceGrid()))
	require.NoError(t, err)
	return res
}

func TestRender_Sections(t *testing.T) {
	t.Parallel()

	md, err := report.Markdown(analyze(t), report.Options{})
	require.NoError(t, err)
	s := string(md)

	for _, want := range []string{
		"# Magic Square Pattern Analysis\n",
		"## Grid\n\n```\n",
		"- **Magic square:** yes (constant 3301)",
		"- **Point symmetry:** yes",
		"## High-Validity Candidates",
		"`rl)lr`",
		"| transposed-stride |",
		"100.0% ✅",
		"## Summary",
		"| magic-square | 1 |",
		"## Analysis Metrics",
		"- **Candidates evaluated:** 199",
		"- **Threshold:** 0.80",
	} {
		assert.Contains(t, s, want)
	}
	assert.NotContains(t, s, "Run ID")
	assert.NotContains(t, s, "Elapsed")
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := report.Markdown(analyze(t), report.Options{})
	require.NoError(t, err)
	b, err := report.Markdown(analyze(t), report.Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRender_Timestamp(t *testing.T) {
	t.Parallel()

	md, err := report.Markdown(analyze(t), report.Options{
		Title:     "Liber Primus",
		Timestamp: true,
		Now:       func() time.Time { return fixed },
	})
	require.NoError(t, err)
	s := string(md)
	assert.Contains(t, s, "# Liber Primus\n")
	assert.Contains(t, s, "**Generated:** 2026-01-02T03:04:05Z")
	assert.Contains(t, s, "**Run ID:** run-0001")
	assert.Contains(t, s, "- **Elapsed:** 0s")
}

func TestRender_NoHighValidity(t *testing.T) {
	t.Parallel()

	cfg := engine.DefaultConfig()
	cfg.Threshold = 1
	e, err := engine.New(cfg)
	require.NoError(t, err)
	lo := matrix.MustNew([][]int{{2, 7, 6}, {9, 5, 1}, {4, 3, 8}})
	res, err := e.Run(context.Background(), lo)
	require.NoError(t, err)

	md, err := report.Markdown(res, report.Options{})
	require.NoError(t, err)
	assert.Contains(t, string(md), "None at threshold 1.00.")
	assert.Contains(t, string(md), "- **Magic square:** yes (constant 15)")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriterError(t *testing.T) {
	t.Parallel()

	err := report.Render(failWriter{}, analyze(t), report.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "analysis.md")
	res := analyze(t)

	n, err := report.WriteFile(path, res, report.Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.EqualValues(t, len(data), n)

	want, err := report.Markdown(res, report.Options{})
	require.NoError(t, err)
	assert.Equal(t, want, data)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteAtomic_RenderErrorKeepsOriginal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	boom := errors.New("boom")
	_, err := report.WriteAtomic(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, report.ErrWrite)
	require.ErrorIs(t, err, boom)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFile_UnwritableDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := report.WriteFile(filepath.Join(blocker, "out.md"), analyze(t), report.Options{})
	require.ErrorIs(t, err, report.ErrWrite)
}

func TestWriteFindings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "findings.yaml")
	res := analyze(t)

	_, err := report.WriteFindings(path, res, false)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc report.FindingsDoc
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Empty(t, doc.RunID)
	assert.True(t, doc.Magic)
	assert.Equal(t, 3301, doc.Constant)
	assert.Len(t, doc.Findings, len(res.Findings))
	assert.Len(t, doc.Counts, len(res.Counts))

	var high []report.FindingEntry
	for _, f := range doc.Findings {
		if f.HighValidity {
			high = append(high, f)
		}
	}
	require.NotEmpty(t, high)
	var found bool
	for _, f := range high {
		if f.Candidate != nil && f.Candidate.Text == "rl)lr" && f.Tag == "transposed-stride" {
			found = true
			require.NotNil(t, f.Score)
			assert.Equal(t, 1.0, *f.Score)
			assert.Equal(t, []int{626, 620, 809, 620, 626}, f.Candidate.Values)
			assert.Equal(t, "true", f.Annotations["palindrome"])
		}
	}
	assert.True(t, found)
}

func TestEncodeFindings_RunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.EncodeFindings(&buf, analyze(t), true))
	assert.Contains(t, buf.String(), "run_id: run-0001")
}

func TestPretty(t *testing.T) {
	t.Parallel()

	out, err := report.Pretty([]byte("# Findings\n\nsome **bold** text\n"), 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Findings")
	assert.Contains(t, out, "bold")
}
