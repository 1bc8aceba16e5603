package config

// PlanFile represents the structure of the plan YAML document.
type PlanFile struct {
	SignalExitCode *int      `yaml:"signal_exit_code"`
	Steps          []StepDTO `yaml:"steps"`
}

// StepDTO represents a step definition in the plan. Pointer fields distinguish an
// omitted key, which takes the default, from an explicit zero, which fails validation.
type StepDTO struct {
	ID              string            `yaml:"id"`
	Runtime         string            `yaml:"runtime"`
	Parallel        *ParallelDTO      `yaml:"parallel"`
	Location        string            `yaml:"location"`
	Stdout          bool              `yaml:"stdout"`
	PTY             bool              `yaml:"pty"`
	DurationMS      *int64            `yaml:"duration_ms"`
	Env             map[string]string `yaml:"env"`
	Wrapper         string            `yaml:"wrapper"`
	Exec            string            `yaml:"exec"`
	Args            []string          `yaml:"args"`
	Command         string            `yaml:"command"`
	Shell           string            `yaml:"shell"`
	Count           *int              `yaml:"count"`
	DependsOn       []DependencyDTO   `yaml:"depends_on"`
	AcceptExitCodes []int             `yaml:"accept_exit_codes"`
}

// ParallelDTO represents the replication settings of a step.
type ParallelDTO struct {
	Processes *int `yaml:"processes"`
	Threads   *int `yaml:"threads"`
}

// DependencyDTO represents one depends_on entry.
type DependencyDTO struct {
	ID        string `yaml:"id"`
	When      string `yaml:"when"`
	ExitCodes []int  `yaml:"exit_codes"`
}
