// Package domain contains the plan model, run facts and validation rules of the orchestrator.
package domain

import "maps"

// DefaultSignalExitCode is the exit code recorded for a replica killed by a signal.
const DefaultSignalExitCode = -1

// Plan is a validated set of steps loaded from a plan document.
type Plan struct {
	Steps []Step
	// SignalExitCode is recorded as the exit code of signal-terminated replicas.
	SignalExitCode int
	// Digest is the content hash of the raw plan text.
	Digest string
}

// Parallel holds the replication settings of a step.
type Parallel struct {
	Processes int
	Threads   int
}

// Step is one declared unit of work producing one or more sibling processes.
type Step struct {
	ID       string
	Runtime  string
	Parallel Parallel
	Location string
	Stdout   bool
	PTY      bool
	// DurationMS is nil when no duration is enforced.
	DurationMS *int64
	Env        map[string]string
	Wrapper    string
	Exec       string
	Args       []string
	Command    string
	Shell      string
	// Count is forwarded to node workloads as --count.
	Count     *int
	DependsOn []Dependency
	// AcceptExitCodes turns any other replica exit code into a step failure.
	AcceptExitCodes []int
}

// Clone returns a deep copy of the step.
func (s *Step) Clone() Step {
	c := *s
	c.Env = maps.Clone(s.Env)
	c.Args = cloneSlice(s.Args)
	c.AcceptExitCodes = cloneSlice(s.AcceptExitCodes)
	if s.DurationMS != nil {
		d := *s.DurationMS
		c.DurationMS = &d
	}
	if s.Count != nil {
		n := *s.Count
		c.Count = &n
	}
	if s.DependsOn != nil {
		c.DependsOn = make([]Dependency, len(s.DependsOn))
		for i, dep := range s.DependsOn {
			c.DependsOn[i] = Dependency{
				ID:        dep.ID,
				When:      dep.When,
				ExitCodes: cloneSlice(dep.ExitCodes),
			}
		}
	}
	return c
}

// Processes returns the replica count, defaulting to 1.
func (s *Step) Processes() int {
	if s.Parallel.Processes <= 0 {
		return 1
	}
	return s.Parallel.Processes
}

// DisplayID returns the step id or "unknown" for anonymous steps.
func (s *Step) DisplayID() string {
	if s.ID == "" {
		return "unknown"
	}
	return s.ID
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
