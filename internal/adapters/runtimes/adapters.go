// Package runtimes builds the concrete process invocations of each runtime kind.
package runtimes

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultShell runs shell steps that do not name one.
const DefaultShell = "bash"

// replicate returns one command per replica of the step, each wrapped and carrying the step environment.
func replicate(step *domain.Step, base []string, env []string) []domain.CommandSpec {
	argv, display := Wrap(step.Wrapper, base)

	specs := make([]domain.CommandSpec, step.Processes())
	for i := range specs {
		specs[i] = domain.CommandSpec{
			Argv:    append([]string(nil), argv...),
			Env:     env,
			Display: display,
		}
	}
	return specs
}

// BinaryAdapter runs exec with args.
type BinaryAdapter struct {
	env ports.EnvironmentFactory
}

// BuildCommands returns `exec args...` per replica.
func (a *BinaryAdapter) BuildCommands(_ context.Context, req ports.BuildRequest) ([]domain.CommandSpec, error) {
	step := req.Step
	if strings.TrimSpace(step.Exec) == "" {
		return nil, domain.ErrExecRequired
	}
	base := append([]string{step.Exec}, step.Args...)
	return replicate(step, base, a.env.StepEnvironment(step)), nil
}

// Summary renders "bin: processes=<n> exec=<exec>".
func (a *BinaryAdapter) Summary(req ports.BuildRequest) string {
	return "bin: processes=" + strconv.Itoa(req.Step.Processes()) + " exec=" + req.Step.Exec
}

// ShellAdapter runs a command string through `<shell> -lc`.
type ShellAdapter struct {
	env ports.EnvironmentFactory
}

// BuildCommands returns `<shell> -lc <command>` per replica.
func (a *ShellAdapter) BuildCommands(_ context.Context, req ports.BuildRequest) ([]domain.CommandSpec, error) {
	step := req.Step
	if strings.TrimSpace(step.Command) == "" {
		return nil, domain.ErrCommandRequired
	}
	base := []string{shellOf(step), "-lc", step.Command}
	return replicate(step, base, a.env.StepEnvironment(step)), nil
}

// Summary renders "shell: processes=<n> shell=<shell>".
func (a *ShellAdapter) Summary(req ports.BuildRequest) string {
	return "shell: processes=" + strconv.Itoa(req.Step.Processes()) + " shell=" + shellOf(req.Step)
}

func shellOf(step *domain.Step) string {
	if s := strings.TrimSpace(step.Shell); s != "" {
		return s
	}
	return DefaultShell
}

// InterpretedAdapter runs a resolved source file with an interpreter.
type InterpretedAdapter struct {
	env         ports.EnvironmentFactory
	language    domain.Language
	interpreter string
}

// BuildCommands returns `<interpreter> <source> [--count n] args...` per replica.
func (a *InterpretedAdapter) BuildCommands(_ context.Context, req ports.BuildRequest) ([]domain.CommandSpec, error) {
	if req.Source == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "no source resolved"), "runtime", string(a.language))
	}

	step := req.Step
	base := []string{a.interpreter, req.Source}
	if a.language == domain.LanguageNode && step.Count != nil {
		base = append(base, "--count", strconv.Itoa(*step.Count))
	}
	base = append(base, step.Args...)
	return replicate(step, base, a.env.StepEnvironment(step)), nil
}

// Summary renders "python: processes=<n> args=<args>" or "node: processes=<n> count=<n|none>".
func (a *InterpretedAdapter) Summary(req ports.BuildRequest) string {
	prefix := string(a.language) + ": processes=" + strconv.Itoa(req.Step.Processes())
	if a.language == domain.LanguageNode {
		count := "none"
		if req.Step.Count != nil {
			count = strconv.Itoa(*req.Step.Count)
		}
		return prefix + " count=" + count
	}
	return prefix + " args=" + strings.Join(req.Step.Args, " ")
}
