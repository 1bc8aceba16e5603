package runtimes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wl/internal/adapters/runtimes"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name        string
		wrapper     string
		base        []string
		wantArgv    []string
		wantDisplay string
	}{
		{
			name:        "no wrapper",
			wrapper:     "",
			base:        []string{"python3", "main.py"},
			wantArgv:    []string{"python3", "main.py"},
			wantDisplay: "python3 main.py",
		},
		{
			name:        "blank wrapper",
			wrapper:     "   ",
			base:        []string{"bash", "-lc", "echo hi"},
			wantArgv:    []string{"bash", "-lc", "echo hi"},
			wantDisplay: "bash -lc echo hi",
		},
		{
			name:        "wrapper is split on whitespace",
			wrapper:     "  taskset   -c 0 ",
			base:        []string{"node", "main.js"},
			wantArgv:    []string{"taskset", "-c", "0", "--", "node", "main.js"},
			wantDisplay: "taskset -c 0 -- node main.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			argv, display := runtimes.Wrap(tt.wrapper, tt.base)
			assert.Equal(t, tt.wantArgv, argv)
			assert.Equal(t, tt.wantDisplay, display)
		})
	}
}
