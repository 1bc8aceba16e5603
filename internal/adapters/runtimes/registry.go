package runtimes

import (
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeRegistry = (*Registry)(nil)

// Registry implements ports.RuntimeRegistry over the closed set of runtime variants.
type Registry struct {
	adapters map[domain.Runtime]ports.RuntimeAdapter
}

// NewRegistry wires one adapter per runtime variant.
func NewRegistry(env ports.EnvironmentFactory, golang *GolangAdapter) *Registry {
	return &Registry{
		adapters: map[domain.Runtime]ports.RuntimeAdapter{
			domain.Binary: &BinaryAdapter{env: env},
			domain.Shell:  &ShellAdapter{env: env},
			domain.Python: &InterpretedAdapter{env: env, language: domain.LanguagePython, interpreter: "python3"},
			domain.Node:   &InterpretedAdapter{env: env, language: domain.LanguageNode, interpreter: "node"},
			domain.Golang: golang,
		},
	}
}

// Adapter returns the adapter for rt.
func (r *Registry) Adapter(rt domain.Runtime) (ports.RuntimeAdapter, error) {
	a, ok := r.adapters[rt]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrRuntimeNotRecognized, "no adapter for runtime"), "runtime", rt.String())
	}
	return a, nil
}
