// Package config provides the YAML plan loader.
package config

import (
	"os"
	"strings"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the plan at path, applies defaults and validates it.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	plan, err := l.Parse(data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load plan"), "path", path)
	}
	return plan, nil
}

// Parse decodes and validates a plan document.
func (l *Loader) Parse(data []byte) (*domain.Plan, error) {
	var file PlanFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	plan := &domain.Plan{
		Steps:          make([]domain.Step, 0, len(file.Steps)),
		SignalExitCode: domain.DefaultSignalExitCode,
		Digest:         domain.HashBytes(data),
	}
	if file.SignalExitCode != nil {
		plan.SignalExitCode = *file.SignalExitCode
	}

	for i := range file.Steps {
		dto := &file.Steps[i]
		l.warnIgnoredFields(dto)
		plan.Steps = append(plan.Steps, toStep(dto))
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func toStep(dto *StepDTO) domain.Step {
	step := domain.Step{
		ID:              dto.ID,
		Runtime:         dto.Runtime,
		Parallel:        domain.Parallel{Processes: 1, Threads: 1},
		Location:        dto.Location,
		Stdout:          dto.Stdout,
		PTY:             dto.PTY,
		DurationMS:      dto.DurationMS,
		Env:             dto.Env,
		Wrapper:         dto.Wrapper,
		Exec:            dto.Exec,
		Args:            dto.Args,
		Command:         dto.Command,
		Shell:           dto.Shell,
		Count:           dto.Count,
		AcceptExitCodes: dto.AcceptExitCodes,
	}

	if dto.Parallel != nil {
		if dto.Parallel.Processes != nil {
			step.Parallel.Processes = *dto.Parallel.Processes
		}
		if dto.Parallel.Threads != nil {
			step.Parallel.Threads = *dto.Parallel.Threads
		}
	}

	if len(dto.DependsOn) > 0 {
		step.DependsOn = make([]domain.Dependency, len(dto.DependsOn))
		for i, dep := range dto.DependsOn {
			when := domain.Condition(strings.ToLower(strings.TrimSpace(dep.When)))
			if when == "" {
				when = domain.ConditionStarted
			}
			step.DependsOn[i] = domain.Dependency{
				ID:        strings.TrimSpace(dep.ID),
				When:      when,
				ExitCodes: dep.ExitCodes,
			}
		}
	}

	return step
}

// warnIgnoredFields reports keys that have no effect for the step's runtime.
func (l *Loader) warnIgnoredFields(dto *StepDTO) {
	if l.Logger == nil {
		return
	}

	rt, err := domain.ParseRuntime(dto.Runtime)
	if err != nil {
		return
	}

	var ignored []string
	if rt != domain.Binary && dto.Exec != "" {
		ignored = append(ignored, "exec")
	}
	if rt != domain.Shell && (dto.Command != "" || dto.Shell != "") {
		ignored = append(ignored, "command/shell")
	}
	if rt != domain.Node && dto.Count != nil {
		ignored = append(ignored, "count")
	}
	if !rt.NeedsSource() && dto.Location != "" {
		ignored = append(ignored, "location")
	}

	if len(ignored) > 0 {
		id := dto.ID
		if id == "" {
			id = "unknown"
		}
		l.Logger.Warn("step " + id + " (" + rt.String() + ") ignores: " + strings.Join(ignored, ", "))
	}
}
