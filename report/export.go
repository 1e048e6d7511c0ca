// SPDX-License-Identifier: MIT

package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magicsq/engine"
	"github.com/katalvlaran/magicsq/finding"
)

// FindingsDoc is the YAML export of a Result.
type FindingsDoc struct {
	RunID     string         `yaml:"run_id,omitempty"`
	Threshold float64        `yaml:"threshold"`
	Magic     bool           `yaml:"magic"`
	Constant  int            `yaml:"magic_constant,omitempty"`
	Findings  []FindingEntry `yaml:"findings"`
	Counts    []CountEntry   `yaml:"counts"`
}

// FindingEntry is one exported finding.
type FindingEntry struct {
	Tag          string            `yaml:"tag"`
	Payload      string            `yaml:"payload"`
	Score        *float64          `yaml:"score,omitempty"`
	HighValidity bool              `yaml:"high_validity,omitempty"`
	Candidate    *CandidateEntry   `yaml:"candidate,omitempty"`
	Annotations  map[string]string `yaml:"annotations,omitempty"`
}

// CandidateEntry is the exported form of finding.Candidate.
type CandidateEntry struct {
	Method      string `yaml:"method"`
	Chain       string `yaml:"chain"`
	Encoding    string `yaml:"encoding"`
	Positions   []int  `yaml:"positions,flow"`
	Values      []int  `yaml:"values,flow"`
	Transformed []int  `yaml:"transformed,flow"`
	Text        string `yaml:"text"`
}

// CountEntry is one tag count.
type CountEntry struct {
	Tag   string `yaml:"tag"`
	Count int    `yaml:"count"`
}

// NewFindingsDoc converts res for export. includeRunID false omits the
// random run ID so the document is reproducible.
func NewFindingsDoc(res *engine.Result, includeRunID bool) FindingsDoc {
	doc := FindingsDoc{
		Threshold: res.Threshold,
		Magic:     res.Validation.IsMagic,
		Constant:  res.Validation.MagicConstant,
		Findings:  make([]FindingEntry, 0, len(res.Findings)),
		Counts:    make([]CountEntry, 0, len(res.Counts)),
	}
	if includeRunID {
		doc.RunID = res.RunID
	}
	for _, f := range res.Findings {
		doc.Findings = append(doc.Findings, entryOf(f, res.Threshold))
	}
	for _, c := range res.Counts {
		doc.Counts = append(doc.Counts, CountEntry{Tag: string(c.Tag), Count: c.Count})
	}

	return doc
}

func entryOf(f finding.Finding, threshold float64) FindingEntry {
	e := FindingEntry{Tag: string(f.Tag), Payload: f.Payload}
	if c := f.Candidate; c != nil {
		s := f.Score
		e.Score = &s
		e.HighValidity = f.Score >= threshold
		e.Candidate = &CandidateEntry{
			Method:      c.Spec.String(),
			Chain:       c.Chain.String(),
			Encoding:    c.Encoding.String(),
			Positions:   c.Positions,
			Values:      c.Values,
			Transformed: c.Transformed,
			Text:        c.Text,
		}
	}
	if len(f.Annotations) > 0 {
		e.Annotations = make(map[string]string, len(f.Annotations))
		for _, a := range f.Annotations {
			e.Annotations[a.Name] = a.Value.String()
		}
	}

	return e
}

// EncodeFindings writes the YAML export of res to w.
func EncodeFindings(w io.Writer, res *engine.Result, includeRunID bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewFindingsDoc(res, includeRunID)); err != nil {
		return err
	}

	return enc.Close()
}

// WriteFindings writes the YAML export of res to path atomically.
func WriteFindings(path string, res *engine.Result, includeRunID bool) (int64, error) {
	return WriteAtomic(path, func(w io.Writer) error { return EncodeFindings(w, res, includeRunID) })
}
