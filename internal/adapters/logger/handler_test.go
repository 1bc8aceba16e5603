package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wl/internal/adapters/logger"
	"go.trai.ch/wl/internal/core/ports"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, ports.OutputPlain, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	buf := &bytes.Buffer{}
	var h slog.Handler = logger.NewPrettyHandler(buf, ports.OutputPlain, nil)
	h = h.WithAttrs([]slog.Attr{slog.String("step", "load")})
	h = h.WithGroup("proc")
	slog.New(h).Info("spawned", "pid", 42)

	g := goldie.New(t)
	g.Assert(t, "handler_attrs_group", buf.Bytes())
}

func TestPrettyHandler_ColorModeStyles(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")

	plain := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(plain, ports.OutputPlain, nil)).Warn("slow")
	assert.Equal(t, "! slow\n", plain.String())

	colored := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(colored, ports.OutputColor, nil)).Warn("slow")
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "! slow")
}
