// SPDX-License-Identifier: MIT

package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default", *NewDefaultConfig(), false},
		{"json debug", Config{Level: "debug", Format: FormatJSON}, false},
		{"bad level", Config{Level: "loud", Format: FormatJSON}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr {
				require.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New(&Config{Level: "warn", Format: FormatJSON})
	require.NoError(t, err)
	assert.True(t, l.Enabled(zapcore.WarnLevel))
	assert.False(t, l.Enabled(zapcore.InfoLevel))

	_, err = New(&Config{Level: "nope", Format: FormatJSON})
	require.Error(t, err)

	def, err := New(nil)
	require.NoError(t, err)
	assert.True(t, def.Enabled(zapcore.InfoLevel))
}

func TestLogger_RunIDField(t *testing.T) {
	t.Parallel()

	tl := NewTestLogger()
	ctx := WithRunID(context.Background(), "run-1")
	tl.Named("engine").Info(ctx, "analysis complete", zap.Int("findings", 3))
	tl.Debug(context.Background(), "stage done")

	tl.AssertLogged(t, zapcore.InfoLevel, "analysis complete")
	tl.AssertField(t, "analysis complete", "run.id", "run-1")
	tl.AssertField(t, "analysis complete", "findings", int64(3))
	assert.Equal(t, "engine", tl.FilterMessage("analysis").All()[0].LoggerName)

	entries := tl.FilterMessage("stage done").All()
	require.Len(t, entries, 1)
	_, hasRun := entries[0].ContextMap()["run.id"]
	assert.False(t, hasRun)

	tl.Reset()
	assert.Empty(t, tl.All())
}

func TestRunIDFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", RunIDFromContext(context.Background()))
	assert.Equal(t, "x", RunIDFromContext(WithRunID(context.Background(), "x")))
	assert.Empty(t, ContextFields(context.Background()))
}

func TestNewNop(t *testing.T) {
	t.Parallel()

	l := NewNop()
	l.Error(context.Background(), "discarded")
	assert.NoError(t, l.Sync())
	assert.NotNil(t, l.Underlying())
}
