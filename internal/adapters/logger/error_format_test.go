package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wl/internal/adapters/logger"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("exec format error"),
			wantMessages: []string{"exec format error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "sentinel chain",
			err:          domain.ErrCycleDetected,
			wantMessages: []string{"dependency cycle detected", "invalid plan"},
			wantMetadata: []map[string]any{{}, {}},
		},
		{
			name: "metadata on wrapped sentinel",
			err: zerr.With(
				zerr.With(zerr.Wrap(domain.ErrUnknownDependency, "dependency cannot be satisfied"), "step", "load"),
				"dependency", "warmup",
			),
			wantMessages: []string{
				"dependency cannot be satisfied",
				"depends_on references an unknown step id",
				"invalid plan",
			},
			wantMetadata: []map[string]any{
				{"step": "load", "dependency": "warmup"},
				{},
				{},
			},
		},
		{
			name:         "metadata attached to a standard error",
			err:          zerr.With(errors.New("no such file"), "path", "runtimes/python/main.py"),
			wantMessages: []string{"no such file"},
			wantMetadata: []map[string]any{{"path": "runtimes/python/main.py"}},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			assert.Len(t, entries, len(tt.wantMessages))
			for i, wantMsg := range tt.wantMessages {
				assert.Equal(t, wantMsg, entries[i].Message, "message mismatch at index %d", i)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata, "metadata mismatch at index %d", i)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "build failed"}},
			want:    "Error: build failed",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "invalid step"},
				{Message: "parallel values must be > 0"},
				{Message: "invalid plan"},
			},
			want: "Error: invalid step\n\n  Caused by:\n    → parallel values must be > 0\n    → invalid plan",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{
				{Message: "invalid step", Metadata: map[string]any{"step_index": 2, "step": "load"}},
				{Message: "invalid parallel.processes", Metadata: map[string]any{"processes": 0}},
			},
			want: "Error: invalid step\n" +
				"       step: load\n" +
				"       step_index: 2\n\n" +
				"  Caused by:\n" +
				"    → invalid parallel.processes\n" +
				"      processes: 0",
		},
		{
			name: "multiline messages",
			entries: []logger.ErrorEntry{
				{Message: "go build failed\nmain.go:3: syntax error"},
				{Message: "exit status 1\nsee output"},
			},
			want: "Error: go build failed\n       main.go:3: syntax error\n\n  Caused by:\n    → exit status 1\n      see output",
		},
		{
			name:    "empty",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
