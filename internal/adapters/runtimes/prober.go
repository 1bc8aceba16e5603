package runtimes

import (
	"os"

	"go.trai.ch/wl/internal/adapters/process"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeProber = (*Prober)(nil)

type knownRuntime struct {
	runtime domain.Runtime
	info    ports.RuntimeInfo
}

// known lists the runtimes reported by List, in display order.
var known = []knownRuntime{
	{domain.Node, ports.RuntimeInfo{Name: "node.js", DetectCmd: "node", Features: []string{"IO"}}},
	{domain.Python, ports.RuntimeInfo{Name: "python(CPython)", DetectCmd: "python3", Features: []string{"multiprocess:memory", "multiprocess:cpu"}}},
	{domain.Golang, ports.RuntimeInfo{Name: "golang", DetectCmd: "go", Features: []string{"multithread:memory", "multithread:cpu"}}},
	{domain.Binary, ports.RuntimeInfo{Name: "native(bin)", Features: []string{"exec"}}},
	{domain.Shell, ports.RuntimeInfo{Name: "shell", DetectCmd: "bash", Features: []string{"command"}}},
}

// Prober implements ports.RuntimeProber by searching PATH for each toolchain.
type Prober struct {
	env func() []string
}

// NewProber creates a Prober searching the orchestrator's PATH.
func NewProber() *Prober {
	return &Prober{env: os.Environ}
}

// NewProberWithEnv creates a Prober searching the PATH entry of env.
func NewProberWithEnv(env []string) *Prober {
	return &Prober{env: func() []string { return env }}
}

// Probe checks that the runtime named in a plan is recognized and its toolchain is installed.
func (p *Prober) Probe(runtime string) error {
	rt, err := domain.ParseRuntime(runtime)
	if err != nil {
		return err
	}

	for _, k := range known {
		if k.runtime != rt {
			continue
		}
		if !p.detect(k.info.DetectCmd) {
			return zerr.With(
				zerr.With(zerr.Wrap(domain.ErrRuntimeUnavailable, "toolchain missing from PATH"), "runtime", runtime),
				"missing", k.info.DetectCmd,
			)
		}
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrRuntimeNotRecognized, "unsupported runtime"), "runtime", runtime)
}

// List reports every known runtime with its detection result.
func (p *Prober) List() []ports.RuntimeInfo {
	infos := make([]ports.RuntimeInfo, len(known))
	for i, k := range known {
		infos[i] = k.info
		infos[i].Features = append([]string(nil), k.info.Features...)
		infos[i].Available = p.detect(k.info.DetectCmd)
	}
	return infos
}

// detect reports whether cmd is on PATH. An empty command needs no toolchain.
func (p *Prober) detect(cmd string) bool {
	if cmd == "" {
		return true
	}
	_, err := process.LookPath(cmd, p.env())
	return err == nil
}
