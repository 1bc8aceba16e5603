package detector_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wl/internal/adapters/detector"
	"go.trai.ch/wl/internal/core/ports"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetector_Detect(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		terminal bool
		expected ports.OutputMode
	}{
		{name: "terminal", terminal: true, expected: ports.OutputColor},
		{name: "not a terminal", terminal: false, expected: ports.OutputPlain},
		{name: "CI=true forces plain", env: map[string]string{"CI": "true"}, terminal: true, expected: ports.OutputPlain},
		{name: "CI=1 forces plain", env: map[string]string{"CI": "1"}, terminal: true, expected: ports.OutputPlain},
		{name: "CI=false keeps colour", env: map[string]string{"CI": "false"}, terminal: true, expected: ports.OutputColor},
		{name: "NO_COLOR", env: map[string]string{"NO_COLOR": "1"}, terminal: true, expected: ports.OutputPlain},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, terminal: true, expected: ports.OutputPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var probed int
			d := detector.NewFrom(envOf(tt.env), func(fd int) bool {
				probed = fd
				return tt.terminal
			})

			assert.Equal(t, tt.expected, d.Detect(os.Stderr))
			if tt.expected == ports.OutputColor {
				assert.Equal(t, int(os.Stderr.Fd()), probed)
			}
		})
	}
}

func TestDetector_Detect_NonFileWriter(t *testing.T) {
	d := detector.NewFrom(envOf(nil), func(int) bool {
		t.Fatal("a buffer has no descriptor to probe")
		return true
	})
	assert.Equal(t, ports.OutputPlain, d.Detect(&bytes.Buffer{}))
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name     string
		detected ports.OutputMode
		choice   string
		expected ports.OutputMode
	}{
		{name: "empty keeps detection", detected: ports.OutputColor, choice: "", expected: ports.OutputColor},
		{name: "auto keeps detection", detected: ports.OutputPlain, choice: "auto", expected: ports.OutputPlain},
		{name: "always", detected: ports.OutputPlain, choice: "always", expected: ports.OutputColor},
		{name: "never", detected: ports.OutputColor, choice: "never", expected: ports.OutputPlain},
		{name: "case insensitive", detected: ports.OutputPlain, choice: "ALWAYS", expected: ports.OutputColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.ResolveMode(tt.detected, tt.choice)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := detector.ResolveMode(ports.OutputColor, "sometimes")
	require.ErrorIs(t, err, detector.ErrUnknownColorMode)
}
