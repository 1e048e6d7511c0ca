// SPDX-License-Identifier: MIT

package provision

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Template placeholders.
const (
	// PkgPlaceholder expands to the package spec as written, e.g. "numpy>=1.24.0".
	PkgPlaceholder = "{pkg}"
	// NamePlaceholder expands to the bare package name, e.g. "numpy".
	NamePlaceholder = "{name}"
)

// ErrManifest reports an invalid manifest.
var ErrManifest = errors.New("provision: invalid manifest")

//go:embed default.yaml
var defaultManifest []byte

// Manifest lists package groups in install order.
type Manifest struct {
	Groups []Group `yaml:"groups"`
}

// Group is a set of packages sharing one install template.
type Group struct {
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description,omitempty"`
	RequiresRoot bool          `yaml:"requires_root,omitempty"`
	Setup        []string      `yaml:"setup,omitempty"`
	Install      string        `yaml:"install"`
	Fallback     string        `yaml:"fallback,omitempty"`
	Timeout      time.Duration `yaml:"timeout,omitempty"`
	Packages     []Package     `yaml:"packages"`
}

// Package is one installable unit.
type Package struct {
	Spec        string `yaml:"spec"`
	Description string `yaml:"description,omitempty"`
}

// Name strips any version constraint from the spec.
func (p Package) Name() string {
	if i := strings.IndexAny(p.Spec, "<>=!~["); i > 0 {
		return strings.TrimSpace(p.Spec[:i])
	}

	return p.Spec
}

// Expand fills a command template for p.
func (p Package) Expand(template string) string {
	return strings.NewReplacer(PkgPlaceholder, p.Spec, NamePlaceholder, p.Name()).Replace(template)
}

// Default returns the embedded manifest.
func Default() (*Manifest, error) {
	return Parse(defaultManifest)
}

// Parse decodes and validates a YAML manifest. Unknown fields are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Load reads a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("provision: read manifest: %w", err)
	}

	return Parse(data)
}

// Validate checks group names are present and unique and every install
// template references a placeholder.
func (m *Manifest) Validate() error {
	if len(m.Groups) == 0 {
		return fmt.Errorf("%w: no groups", ErrManifest)
	}
	seen := make(map[string]struct{}, len(m.Groups))
	for i, g := range m.Groups {
		if g.Name == "" {
			return fmt.Errorf("%w: group %d has no name", ErrManifest, i)
		}
		if _, dup := seen[g.Name]; dup {
			return fmt.Errorf("%w: duplicate group %q", ErrManifest, g.Name)
		}
		seen[g.Name] = struct{}{}
		if !hasPlaceholder(g.Install) {
			return fmt.Errorf("%w: group %q: install template needs %s or %s", ErrManifest, g.Name, PkgPlaceholder, NamePlaceholder)
		}
		if g.Fallback != "" && !hasPlaceholder(g.Fallback) {
			return fmt.Errorf("%w: group %q: fallback template needs %s or %s", ErrManifest, g.Name, PkgPlaceholder, NamePlaceholder)
		}
		if g.Timeout < 0 {
			return fmt.Errorf("%w: group %q: negative timeout", ErrManifest, g.Name)
		}
	}

	return nil
}

// Select returns the named groups in manifest order; no names selects all.
func (m *Manifest) Select(names ...string) ([]Group, error) {
	if len(names) == 0 {
		return slices.Clone(m.Groups), nil
	}
	out := make([]Group, 0, len(names))
	for _, g := range m.Groups {
		if slices.Contains(names, g.Name) {
			out = append(out, g)
		}
	}
	for _, n := range names {
		if !slices.ContainsFunc(out, func(g Group) bool { return g.Name == n }) {
			return nil, fmt.Errorf("%w: unknown group %q", ErrManifest, n)
		}
	}

	return out, nil
}

func hasPlaceholder(t string) bool {
	return strings.Contains(t, PkgPlaceholder) || strings.Contains(t, NamePlaceholder)
}
