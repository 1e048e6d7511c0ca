// SPDX-License-Identifier: MIT

package provision

import (
	"context"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/magicsq/logging"
)

// Outcome is the result of installing one package.
type Outcome struct {
	Group    string
	Package  string
	Fallback bool
	Reason   string
}

// Summary collects per-package outcomes of Install.
type Summary struct {
	Installed []Outcome
	Failed    []Outcome
	Skipped   []Outcome
}

// Total returns the number of packages considered.
func (s Summary) Total() int { return len(s.Installed) + len(s.Failed) + len(s.Skipped) }

// OK reports whether nothing failed.
func (s Summary) OK() bool { return len(s.Failed) == 0 }

// Installer applies a Manifest through a Runner.
type Installer struct {
	runner Runner
	log    *logging.Logger
	isRoot func() bool
	dryRun bool
}

// Option configures an Installer.
type Option func(*Installer)

// WithLogger sets the logger; the default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(i *Installer) {
		if l != nil {
			i.log = l
		}
	}
}

// WithRootCheck overrides the effective-uid check.
func WithRootCheck(f func() bool) Option {
	return func(i *Installer) { i.isRoot = f }
}

// WithDryRun logs every command without running it. Packages are reported
// as installed.
func WithDryRun(dry bool) Option {
	return func(i *Installer) { i.dryRun = dry }
}

// NewInstaller returns an Installer running commands through r.
func NewInstaller(r Runner, opts ...Option) *Installer {
	i := &Installer{
		runner: r,
		log:    logging.NewNop(),
		isRoot: func() bool { return os.Geteuid() == 0 },
	}
	for _, o := range opts {
		o(i)
	}

	return i
}

// Install runs the selected groups (all when groups is empty) in manifest
// order. Only manifest errors and context cancellation are returned;
// package failures land in the Summary.
func (i *Installer) Install(ctx context.Context, m *Manifest, groups ...string) (Summary, error) {
	selected, err := m.Select(groups...)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	for _, g := range selected {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		log := i.log.With(zap.String("group", g.Name))
		if g.RequiresRoot && !i.isRoot() && !i.dryRun {
			log.Warn(ctx, "group skipped: root privileges required")
			for _, p := range g.Packages {
				sum.Skipped = append(sum.Skipped, Outcome{Group: g.Name, Package: p.Spec, Reason: "requires root"})
			}
			continue
		}

		for _, line := range g.Setup {
			if _, err := i.run(ctx, log, line, g.Timeout); err != nil {
				if ctx.Err() != nil {
					return sum, ctx.Err()
				}
				log.Warn(ctx, "setup command failed", zap.String("command", line), zap.Error(err))
			}
		}

		for n, p := range g.Packages {
			log.Info(ctx, "installing",
				zap.String("package", p.Spec),
				zap.Int("index", n+1),
				zap.Int("of", len(g.Packages)))
			o, err := i.installOne(ctx, log, g, p)
			if err != nil {
				return sum, err
			}
			if o.Reason != "" {
				sum.Failed = append(sum.Failed, o)
				continue
			}
			sum.Installed = append(sum.Installed, o)
		}
	}

	i.log.Info(ctx, "provisioning finished",
		zap.Int("installed", len(sum.Installed)),
		zap.Int("failed", len(sum.Failed)),
		zap.Int("skipped", len(sum.Skipped)))

	return sum, nil
}

// installOne returns a non-nil error only for context cancellation.
func (i *Installer) installOne(ctx context.Context, log *logging.Logger, g Group, p Package) (Outcome, error) {
	o := Outcome{Group: g.Name, Package: p.Spec}

	res, err := i.run(ctx, log, p.Expand(g.Install), g.Timeout)
	if succeeded(res, err) {
		return o, nil
	}
	if ctx.Err() != nil {
		return o, ctx.Err()
	}
	if g.Fallback == "" {
		o.Reason = err.Error()
		log.Warn(ctx, "install failed", zap.String("package", p.Spec), zap.Error(err))
		return o, nil
	}

	log.Debug(ctx, "retrying with fallback", zap.String("package", p.Spec))
	res, err = i.run(ctx, log, p.Expand(g.Fallback), g.Timeout)
	if succeeded(res, err) {
		o.Fallback = true
		return o, nil
	}
	if ctx.Err() != nil {
		return o, ctx.Err()
	}
	o.Reason = err.Error()
	log.Warn(ctx, "install failed", zap.String("package", p.Spec), zap.Bool("fallback", true), zap.Error(err))

	return o, nil
}

func (i *Installer) run(ctx context.Context, log *logging.Logger, line string, timeout time.Duration) (Result, error) {
	if i.dryRun {
		log.Info(ctx, "dry run", zap.String("command", line))
		return Result{}, nil
	}
	res, err := i.runner.Run(ctx, Command{Line: line, Timeout: timeout})
	log.Debug(ctx, "command finished",
		zap.String("command", line),
		zap.Int("exit", res.ExitCode),
		zap.Duration("duration", res.Duration))

	return res, err
}

// succeeded treats "already installed" output as success regardless of status.
func succeeded(res Result, err error) bool {
	return err == nil || strings.Contains(strings.ToLower(res.Output()), "already installed")
}
