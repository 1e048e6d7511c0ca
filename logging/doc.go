// SPDX-License-Identifier: MIT

// Package logging wraps zap with context-aware methods for magicsq.
//
// Every log call takes a context.Context; the run ID stored with WithRunID is
// attached to each entry as "run.id" so the entries of one analysis can be
// correlated. Logs go to stderr so stdout stays free for rendered reports.
//
// Tests use NewTestLogger, which records entries through zaptest/observer.
package logging
