package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Validate checks the structural and semantic rules of the plan.
// It runs before any process is spawned and returns the first violation found.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return ErrNoSteps
	}

	ids := make(map[string]int, len(p.Steps))
	for i := range p.Steps {
		step := &p.Steps[i]
		if err := validateStep(step); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, "invalid step"), "step_index", i), "step", step.DisplayID())
		}
		if step.ID == "" {
			continue
		}
		if _, exists := ids[step.ID]; exists {
			return zerr.With(zerr.Wrap(ErrDuplicateStepID, "step declared twice"), "step", step.ID)
		}
		ids[step.ID] = i
	}

	for i := range p.Steps {
		step := &p.Steps[i]
		for _, dep := range step.DependsOn {
			if _, ok := ids[dep.ID]; !ok {
				return zerr.With(
					zerr.With(zerr.Wrap(ErrUnknownDependency, "dependency cannot be satisfied"), "step", step.ID),
					"dependency", dep.ID,
				)
			}
		}
	}

	return p.detectCycles(ids)
}

func validateStep(step *Step) error {
	runtime := strings.ToLower(strings.TrimSpace(step.Runtime))
	if runtime == "" {
		return ErrRuntimeRequired
	}

	if step.Parallel.Processes <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidParallelism, "invalid parallel.processes"), "processes", step.Parallel.Processes)
	}
	if step.Parallel.Threads <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidParallelism, "invalid parallel.threads"), "threads", step.Parallel.Threads)
	}
	if step.DurationMS != nil && *step.DurationMS <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidDuration, "invalid duration"), "duration_ms", *step.DurationMS)
	}

	switch runtime {
	case "bin":
		if strings.TrimSpace(step.Exec) == "" {
			return ErrExecRequired
		}
	case "shell":
		if strings.TrimSpace(step.Command) == "" {
			return ErrCommandRequired
		}
	}

	if len(step.DependsOn) > 0 && step.ID == "" {
		return ErrStepIDRequired
	}

	for _, dep := range step.DependsOn {
		if strings.TrimSpace(dep.ID) == "" {
			return ErrDependencyIDRequired
		}
		if !dep.When.Valid() {
			return zerr.With(zerr.Wrap(ErrInvalidCondition, "invalid dependency condition"), "when", string(dep.When))
		}
		if dep.ExitCodes != nil && dep.When != ConditionExited {
			return zerr.With(zerr.Wrap(ErrExitCodesRequireExited, "exit_codes without exited"), "dependency", dep.ID)
		}
	}

	return nil
}

// detectCycles walks the depends_on edges depth first. A step waiting on itself,
// directly or transitively, can never start.
func (p *Plan) detectCycles(ids map[string]int) error {
	visited := make(map[string]int, len(ids)) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(id string) error
	visit = func(id string) error {
		visited[id] = 1
		path = append(path, id)

		for _, dep := range p.Steps[ids[id]].DependsOn {
			if visited[dep.ID] == 1 {
				return buildCycleError(path, dep.ID)
			}
			if visited[dep.ID] == 0 {
				if err := visit(dep.ID); err != nil {
					return err
				}
			}
		}

		visited[id] = 2
		path = path[:len(path)-1]
		return nil
	}

	// Declaration order keeps the reported cycle deterministic.
	for _, step := range p.Steps {
		if step.ID != "" && visited[step.ID] == 0 {
			if err := visit(step.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildCycleError(path []string, dep string) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	cycle := strings.Join(append(append([]string{}, path[start:]...), dep), " -> ")
	return zerr.With(zerr.Wrap(ErrCycleDetected, "steps wait on each other"), "cycle", cycle)
}
