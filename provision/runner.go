// SPDX-License-Identifier: MIT

package provision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a command whose Timeout is zero.
const DefaultTimeout = 5 * time.Minute

var (
	// ErrCommandFailed reports a non-zero exit status.
	ErrCommandFailed = errors.New("provision: command failed")
	// ErrTimeout reports a command killed after its timeout.
	ErrTimeout = errors.New("provision: command timed out")
)

// Command is one shell command line.
type Command struct {
	Line    string
	Timeout time.Duration
}

// Result captures a finished command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Output returns stdout followed by stderr.
func (r Result) Output() string { return r.Stdout + r.Stderr }

// Runner executes commands.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs command lines through Shell -c.
type ExecRunner struct {
	// Shell defaults to "sh".
	Shell string
}

// Run executes cmd. A non-zero exit yields ErrCommandFailed together with
// the populated Result; a timeout yields ErrTimeout.
func (r ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	shell := r.Shell
	if shell == "" {
		shell = "sh"
	}
	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(execCtx, shell, "-c", cmd.Line)
	c.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	res := Result{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	switch {
	case err == nil:
		res.ExitCode = 0
		return res, nil
	case errors.Is(execCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		return res, fmt.Errorf("%w after %s: %s", ErrTimeout, timeout, cmd.Line)
	case ctx.Err() != nil:
		return res, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, fmt.Errorf("%w (exit %d): %s", ErrCommandFailed, res.ExitCode, cmd.Line)
	}

	return res, fmt.Errorf("provision: start %q: %w", cmd.Line, err)
}
