package runtimes

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Builder compiles a Go source file into an executable.
type Builder func(ctx context.Context, source, output string, env []string) error

// GolangAdapter compiles the resolved source once and runs the artifact.
type GolangAdapter struct {
	env       ports.EnvironmentFactory
	artifacts ports.ArtifactStore
	hasher    ports.Hasher
	logger    ports.Logger
	build     Builder
	now       func() time.Time
	inflight  singleflight.Group
}

// NewGolangAdapter creates a GolangAdapter building with the go toolchain.
func NewGolangAdapter(
	env ports.EnvironmentFactory,
	artifacts ports.ArtifactStore,
	hasher ports.Hasher,
	logger ports.Logger,
) *GolangAdapter {
	return &GolangAdapter{
		env:       env,
		artifacts: artifacts,
		hasher:    hasher,
		logger:    logger,
		build:     goBuild,
		now:       time.Now,
	}
}

// WithBuilder replaces the compiler, for tests.
func (a *GolangAdapter) WithBuilder(b Builder) *GolangAdapter {
	a.build = b
	return a
}

// BuildCommands compiles the source if needed and returns `<build path> args...` per replica.
func (a *GolangAdapter) BuildCommands(ctx context.Context, req ports.BuildRequest) ([]domain.CommandSpec, error) {
	if req.Source == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "no source resolved"), "runtime", "golang")
	}

	step := req.Step
	env := a.env.StepEnvironment(step)

	exe, err := a.ensureBuilt(ctx, req.Cache, req.Source, env)
	if err != nil {
		return nil, err
	}

	base := append([]string{exe}, step.Args...)
	return replicate(step, base, env), nil
}

// Summary renders "golang: processes=<n> args=<args>".
func (a *GolangAdapter) Summary(req ports.BuildRequest) string {
	return "golang: processes=" + strconv.Itoa(req.Step.Processes()) + " args=" + strings.Join(req.Step.Args, " ")
}

// ensureBuilt returns the artifact for source, reusing it while the source digest is unchanged.
// Concurrent steps sharing a source wait for a single build.
func (a *GolangAdapter) ensureBuilt(ctx context.Context, cache domain.CacheLayout, source string, env []string) (string, error) {
	output := cache.BuildPath(source)

	v, err, _ := a.inflight.Do(output, func() (any, error) {
		digest, err := a.hasher.ComputeFileHash(source)
		if err != nil {
			return "", err
		}

		rec, err := a.artifacts.Get(cache, source)
		if err != nil {
			return "", err
		}
		if rec != nil && rec.SourceDigest == digest && rec.BuildPath == output && exists(output) {
			return output, nil
		}

		if err := os.MkdirAll(filepath.Dir(output), 0o750); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", output)
		}
		if err := a.build(ctx, source, output, env); err != nil {
			return "", err
		}

		if err := a.artifacts.Put(cache, domain.ArtifactRecord{
			SourcePath:   source,
			SourceDigest: digest,
			BuildPath:    output,
			BuiltAt:      a.now(),
		}); err != nil {
			// The artifact is usable; only reuse on the next run is lost.
			a.logger.Warn("failed to record build artifact: " + err.Error())
		}
		return output, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil //nolint:forcetypeassert // the closure only returns strings
}

func goBuild(ctx context.Context, source, output string, env []string) error {
	cmd := exec.CommandContext(ctx, "go", "build", "-o", output, source) //nolint:gosec // paths come from the cache layout
	cmd.Env = env

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		e := zerr.With(zerr.Wrap(domain.ErrBuildFailed, "go build failed"), "source", source)
		e = zerr.With(e, "error", err.Error())
		return zerr.With(e, "output", strings.TrimSpace(out.String()))
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
