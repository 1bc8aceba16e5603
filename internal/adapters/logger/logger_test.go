package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wl/internal/adapters/detector"
	"go.trai.ch/wl/internal/adapters/logger"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/zerr"
)

// noTerminal never reports a terminal, so records carry no ANSI escapes.
func noTerminal() *detector.Detector {
	return detector.NewFrom(func(string) string { return "" }, func(int) bool { return false })
}

// newTestLogger creates a logger writing to a buffer without ANSI escapes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	lg := logger.New(noTerminal()).(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("cache dir: tmp_workspace") },
			goldenName: "info_basic",
		},
		{
			name:       "info multiline",
			log:        func(lg *logger.Logger) { lg.Info("line1\nline2") },
			goldenName: "info_multiline",
		},
		{
			name:       "warn",
			log:        func(lg *logger.Logger) { lg.Warn("runtime not detected: node") },
			goldenName: "warn_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "validation chain with metadata",
			err: zerr.With(
				zerr.With(zerr.Wrap(domain.ErrDuplicateStepID, "step declared twice"), "step", "load"),
				"step_index", 1,
			),
			goldenName: "error_chain_metadata",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.Wrap(domain.ErrSourceNotFound, "resolve source"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, "resolve source: location path does not exist", rec["error"])
	assert.Equal(t, []any{"resolve source", "location path does not exist"}, rec["causes"])

	buf.Reset()
	lg.Info("plan loaded")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "plan loaded", rec["msg"])
}

func TestLogger_SetColor(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("CLICOLOR", "")

	lg, buf := newTestLogger(t)

	lg.Warn("detected")
	assert.Equal(t, "! detected\n", buf.String())

	require.NoError(t, lg.SetColor("always"))
	buf.Reset()
	lg.Warn("forced")
	assert.Contains(t, buf.String(), "\x1b[")

	// The choice survives a new destination.
	other := &bytes.Buffer{}
	lg.SetOutput(other)
	lg.Warn("moved")
	assert.Contains(t, other.String(), "\x1b[")

	require.NoError(t, lg.SetColor("never"))
	other.Reset()
	lg.Warn("plain")
	assert.Equal(t, "! plain\n", other.String())

	err := lg.SetColor("sometimes")
	require.ErrorIs(t, err, detector.ErrUnknownColorMode)
}
