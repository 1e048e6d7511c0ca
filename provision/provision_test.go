// SPDX-License-Identifier: MIT

package provision_test

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/magicsq/logging"
	"github.com/katalvlaran/magicsq/provision"
)

// fakeRunner fails every line containing one of fail, records the rest.
type fakeRunner struct {
	mu     sync.Mutex
	fail   []string
	output map[string]string
	lines  []string
}

func (f *fakeRunner) Run(_ context.Context, cmd provision.Command) (provision.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, cmd.Line)
	res := provision.Result{Stdout: f.output[cmd.Line]}
	for _, s := range f.fail {
		if strings.Contains(cmd.Line, s) {
			res.ExitCode = 1
			return res, provision.ErrCommandFailed
		}
	}
	return res, nil
}

const manifestYAML = `
groups:
  - name: system
    requires_root: true
    setup: [apt-get update]
    install: apt-get install -y {pkg}
    packages:
      - spec: steghide
      - spec: xxd
  - name: python
    install: pip install '{pkg}'
    fallback: pip install {name}
    timeout: 30s
    packages:
      - spec: numpy>=1.24.0
      - spec: sympy>=1.12
`

func mustParse(t *testing.T) *provision.Manifest {
	t.Helper()
	m, err := provision.Parse([]byte(manifestYAML))
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	t.Parallel()

	m := mustParse(t)
	require.Len(t, m.Groups, 2)
	assert.True(t, m.Groups[0].RequiresRoot)
	assert.Equal(t, []string{"apt-get update"}, m.Groups[0].Setup)
	assert.Equal(t, 30*time.Second, m.Groups[1].Timeout)
	assert.Equal(t, "numpy>=1.24.0", m.Groups[1].Packages[0].Spec)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"no name", "groups: [{install: 'x {pkg}'}]"},
		{"duplicate", "groups: [{name: a, install: 'x {pkg}'}, {name: a, install: 'y {pkg}'}]"},
		{"no placeholder", "groups: [{name: a, install: 'apt-get install'}]"},
		{"bad fallback", "groups: [{name: a, install: 'x {pkg}', fallback: 'y'}]"},
		{"unknown field", "groups: [{name: a, install: 'x {pkg}', color: red}]"},
		{"malformed", "groups: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := provision.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, provision.ErrManifest)
		})
	}
}

func TestDefaultManifest(t *testing.T) {
	t.Parallel()

	m, err := provision.Default()
	require.NoError(t, err)
	groups, err := m.Select()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "system", groups[0].Name)
	assert.True(t, groups[0].RequiresRoot)
	assert.Equal(t, 5*time.Minute, groups[0].Timeout)
	assert.NotEmpty(t, groups[1].Fallback)
}

func TestPackage_Expand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec, name string
	}{
		{"numpy>=1.24.0", "numpy"},
		{"z3-solver>=4.12.0", "z3-solver"},
		{"pkg[extra]", "pkg"},
		{"steghide", "steghide"},
	}
	for _, tt := range tests {
		p := provision.Package{Spec: tt.spec}
		assert.Equal(t, tt.name, p.Name())
		assert.Equal(t, "i '"+tt.spec+"' "+tt.name, p.Expand("i '{pkg}' {name}"))
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	m := mustParse(t)
	g, err := m.Select("python")
	require.NoError(t, err)
	require.Len(t, g, 1)
	assert.Equal(t, "python", g[0].Name)

	_, err = m.Select("gpu")
	assert.ErrorIs(t, err, provision.ErrManifest)
}

func TestInstall_AsRoot(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{fail: []string{"'sympy>=1.12'", "xxd"}}
	tl := logging.NewTestLogger()
	inst := provision.NewInstaller(r,
		provision.WithLogger(tl.Logger),
		provision.WithRootCheck(func() bool { return true }))

	sum, err := inst.Install(context.Background(), mustParse(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"apt-get update",
		"apt-get install -y steghide",
		"apt-get install -y xxd",
		"pip install 'numpy>=1.24.0'",
		"pip install 'sympy>=1.12'",
		"pip install sympy",
	}, r.lines)

	require.Len(t, sum.Installed, 3)
	assert.Equal(t, "steghide", sum.Installed[0].Package)
	assert.False(t, sum.Installed[1].Fallback)
	assert.True(t, sum.Installed[2].Fallback)
	require.Len(t, sum.Failed, 1)
	assert.Equal(t, "xxd", sum.Failed[0].Package)
	assert.Empty(t, sum.Skipped)
	assert.Equal(t, 4, sum.Total())
	assert.False(t, sum.OK())

	tl.AssertLogged(t, zapcore.WarnLevel, "install failed")
	tl.AssertField(t, "provisioning finished", "installed", int64(3))
}

func TestInstall_NonRootSkipsGroup(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{}
	inst := provision.NewInstaller(r, provision.WithRootCheck(func() bool { return false }))

	sum, err := inst.Install(context.Background(), mustParse(t))
	require.NoError(t, err)
	assert.Len(t, sum.Skipped, 2)
	assert.Equal(t, "requires root", sum.Skipped[0].Reason)
	assert.Len(t, sum.Installed, 2)
	assert.True(t, sum.OK())
	for _, l := range r.lines {
		assert.NotContains(t, l, "apt-get")
	}
}

func TestInstall_AlreadyInstalled(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{
		fail:   []string{"steghide"},
		output: map[string]string{"apt-get install -y steghide": "steghide is already installed"},
	}
	inst := provision.NewInstaller(r, provision.WithRootCheck(func() bool { return true }))

	sum, err := inst.Install(context.Background(), mustParse(t), "system")
	require.NoError(t, err)
	assert.Len(t, sum.Installed, 2)
	assert.Empty(t, sum.Failed)
}

func TestInstall_DryRun(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{}
	tl := logging.NewTestLogger()
	inst := provision.NewInstaller(r,
		provision.WithDryRun(true),
		provision.WithLogger(tl.Logger),
		provision.WithRootCheck(func() bool { return false }))

	sum, err := inst.Install(context.Background(), mustParse(t))
	require.NoError(t, err)
	assert.Empty(t, r.lines)
	assert.Len(t, sum.Installed, 4)
	assert.Equal(t, 5, tl.FilterMessage("dry run").Len())
}

func TestInstall_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inst := provision.NewInstaller(&fakeRunner{})
	_, err := inst.Install(ctx, mustParse(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInstall_UnknownGroup(t *testing.T) {
	t.Parallel()

	inst := provision.NewInstaller(&fakeRunner{})
	_, err := inst.Install(context.Background(), mustParse(t), "gpu")
	assert.ErrorIs(t, err, provision.ErrManifest)
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner(t *testing.T) {
	t.Parallel()
	requireShell(t)

	var r provision.ExecRunner
	ctx := context.Background()

	res, err := r.Run(ctx, provision.Command{Line: "echo hello; echo oops >&2"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)

	res, err = r.Run(ctx, provision.Command{Line: "exit 3"})
	require.ErrorIs(t, err, provision.ErrCommandFailed)
	assert.Equal(t, 3, res.ExitCode)

	_, err = r.Run(ctx, provision.Command{Line: "sleep 5", Timeout: 50 * time.Millisecond})
	require.ErrorIs(t, err, provision.ErrTimeout)
}

func TestExecRunner_ParentCancelled(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := provision.ExecRunner{}.Run(ctx, provision.Command{Line: "true"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
