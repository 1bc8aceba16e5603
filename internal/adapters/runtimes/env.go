package runtimes

import (
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
)

// WorkersEnv carries parallel.threads to the workload.
const WorkersEnv = "WL_WORKERS"

var _ ports.EnvironmentFactory = (*Environment)(nil)

// Environment implements ports.EnvironmentFactory.
type Environment struct {
	base func() []string
}

// NewEnvironment creates an Environment inheriting the orchestrator's variables.
func NewEnvironment() *Environment {
	return &Environment{base: os.Environ}
}

// NewEnvironmentFrom creates an Environment with a fixed base, for tests.
func NewEnvironmentFrom(base []string) *Environment {
	return &Environment{base: func() []string { return base }}
}

// StepEnvironment merges environment variables with the following priority (low to high):
// 1. the inherited environment
// 2. WL_WORKERS derived from parallel.threads
// 3. the step's env overrides
//
// The result is sorted by key.
func (e *Environment) StepEnvironment(step *domain.Step) []string {
	envMap := make(map[string]string)
	for _, entry := range e.base() {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	threads := step.Parallel.Threads
	if threads <= 0 {
		threads = 1
	}
	envMap[WorkersEnv] = strconv.Itoa(threads)

	maps.Copy(envMap, step.Env)

	result := make([]string, 0, len(envMap))
	for _, k := range slices.Sorted(maps.Keys(envMap)) {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
