// SPDX-License-Identifier: MIT

// Package report renders an engine.Result as Markdown and writes report
// artifacts to disk.
//
// Every file is written atomically: the content goes to a temporary file in
// the target directory which is renamed over the destination only after a
// successful flush, sync and close. On any error the temporary file is
// removed and the destination is left untouched; the error wraps ErrWrite.
//
// With Options.Timestamp false the rendering is a pure function of the
// finding list, so two runs over the same grid produce identical bytes.
package report
