package domain

import "go.trai.ch/zerr"

// Configuration errors. Each one unwraps to ErrInvalidPlan.
var (
	// ErrInvalidPlan is the root of every plan validation failure.
	ErrInvalidPlan = zerr.New("invalid plan")

	// ErrNoSteps is returned when the plan declares no steps.
	ErrNoSteps = zerr.Wrap(ErrInvalidPlan, "steps must not be empty")

	// ErrRuntimeRequired is returned when a step has a blank runtime.
	ErrRuntimeRequired = zerr.Wrap(ErrInvalidPlan, "runtime must be set")

	// ErrInvalidParallelism is returned when parallel.processes or parallel.threads is not positive.
	ErrInvalidParallelism = zerr.Wrap(ErrInvalidPlan, "parallel values must be > 0")

	// ErrInvalidDuration is returned when duration_ms is not positive.
	ErrInvalidDuration = zerr.Wrap(ErrInvalidPlan, "duration_ms must be > 0")

	// ErrExecRequired is returned when a bin step has no exec.
	ErrExecRequired = zerr.Wrap(ErrInvalidPlan, "bin runtime requires 'exec'")

	// ErrCommandRequired is returned when a shell step has no command.
	ErrCommandRequired = zerr.Wrap(ErrInvalidPlan, "shell runtime requires 'command'")

	// ErrStepIDRequired is returned when a step declares depends_on without an id.
	ErrStepIDRequired = zerr.Wrap(ErrInvalidPlan, "step id is required when using depends_on")

	// ErrDependencyIDRequired is returned when a dependency has a blank id.
	ErrDependencyIDRequired = zerr.Wrap(ErrInvalidPlan, "depends_on.id must be set")

	// ErrInvalidCondition is returned when depends_on.when is not started or exited.
	ErrInvalidCondition = zerr.Wrap(ErrInvalidPlan, "depends_on.when must be 'started' or 'exited'")

	// ErrExitCodesRequireExited is returned when exit_codes is set without when: exited.
	ErrExitCodesRequireExited = zerr.Wrap(ErrInvalidPlan, "depends_on.exit_codes requires when: exited")

	// ErrDuplicateStepID is returned when two steps share an id.
	ErrDuplicateStepID = zerr.Wrap(ErrInvalidPlan, "duplicate step id")

	// ErrUnknownDependency is returned when depends_on references an undeclared step id.
	ErrUnknownDependency = zerr.Wrap(ErrInvalidPlan, "depends_on references an unknown step id")

	// ErrCycleDetected is returned when step dependencies form a cycle.
	ErrCycleDetected = zerr.Wrap(ErrInvalidPlan, "dependency cycle detected")
)

// Runtime errors.
var (
	// ErrRuntimeNotRecognized is returned for runtime names outside the supported set.
	ErrRuntimeNotRecognized = zerr.New("runtime is not recognized")

	// ErrRuntimeUnavailable is returned when a runtime's toolchain is not installed.
	ErrRuntimeUnavailable = zerr.New("runtime not detected")
)

// Source resolution errors.
var (
	// ErrSourceNotFound is returned when a local location does not exist.
	ErrSourceNotFound = zerr.New("location path does not exist")

	// ErrSourceDownload is returned when a remote location cannot be fetched.
	ErrSourceDownload = zerr.New("failed to download source")

	// ErrBuildFailed is returned when compiling a source fails.
	ErrBuildFailed = zerr.New("build failed")
)

// Templating errors. Each one unwraps to ErrTemplating.
var (
	// ErrTemplating is the root of every placeholder expansion failure.
	ErrTemplating = zerr.New("placeholder expansion failed")

	// ErrUnknownID is returned when a placeholder references a step that never published pids.
	ErrUnknownID = zerr.Wrap(ErrTemplating, "unknown id")

	// ErrNoPID is returned when {id:pid} references a step that published no pids.
	ErrNoPID = zerr.Wrap(ErrTemplating, "no pid for id")

	// ErrUnknownPlaceholderKey is returned for keys other than pid and "pid,".
	ErrUnknownPlaceholderKey = zerr.Wrap(ErrTemplating, "unknown placeholder key")

	// ErrMalformedPlaceholder is returned for unbalanced quotes or braces and missing keys.
	ErrMalformedPlaceholder = zerr.Wrap(ErrTemplating, "malformed placeholder")
)

// Execution errors.
var (
	// ErrSpawnFailed is returned when a child process cannot be started.
	ErrSpawnFailed = zerr.New("failed to spawn process")

	// ErrProcessFailed is returned when a replica exits with a code outside accept_exit_codes.
	ErrProcessFailed = zerr.New("process exited with an unaccepted code")

	// ErrDependencyFailed is returned to dependents of a step that failed before finishing.
	ErrDependencyFailed = zerr.New("dependency failed")

	// ErrWorkerPanic wraps a panic recovered from a step worker.
	ErrWorkerPanic = zerr.New("step worker panicked")

	// ErrStepFailed wraps the error of the first failing step.
	ErrStepFailed = zerr.New("step failed")
)
