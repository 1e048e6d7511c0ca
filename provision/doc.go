// SPDX-License-Identifier: MIT

// Package provision installs the external tool chain used alongside
// magicsq (stego, hex, number-theory and imaging utilities) from a YAML
// manifest of package groups.
//
// Commands go through the Runner interface; ExecRunner shells out with a
// per-command timeout and tests substitute a fake. A package that fails
// its install template is retried with the group's fallback template when
// one is set. Groups marked requires_root are skipped for non-root users.
// Failures never abort the run: they are collected in the Summary.
package provision
