// Package app implements the application layer for wl.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wl/internal/adapters/telemetry" //nolint:depguard // Trace summary is set up by the app layer
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/wl/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// DefaultCacheDirName is the cache directory created under the working directory.
const DefaultCacheDirName = "tmp_workspace"

// ErrUnknownLogFormat is returned for --log-format values other than text and json.
var ErrUnknownLogFormat = zerr.New("unknown log format")

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	prober       ports.RuntimeProber
	scheduler    *scheduler.Scheduler
	samples      ports.SampleWriter
	logger       ports.Logger
	events       ports.EventLog
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	prober ports.RuntimeProber,
	sched *scheduler.Scheduler,
	samples ports.SampleWriter,
	log ports.Logger,
	events ports.EventLog,
) *App {
	return &App{
		configLoader: loader,
		prober:       prober,
		scheduler:    sched,
		samples:      samples,
		logger:       log,
		events:       events,
		out:          os.Stdout,
	}
}

// WithOutput redirects the list, samples and trace output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

// SetLogFormat switches the logger and the event log between text and json.
func (a *App) SetLogFormat(format string) error {
	var enable bool
	switch strings.ToLower(format) {
	case "", "text":
	case "json":
		enable = true
	default:
		return zerr.With(zerr.Wrap(ErrUnknownLogFormat, "expected text or json"), "format", format)
	}

	for _, target := range []any{a.logger, a.events} {
		if s, ok := target.(jsonSwitch); ok {
			s.SetJSON(enable)
		}
	}
	return nil
}

type colorSwitch interface {
	SetColor(choice string) error
}

// SetColor applies auto, always or never to the human-readable logger.
func (a *App) SetColor(choice string) error {
	if s, ok := a.logger.(colorSwitch); ok {
		return s.SetColor(choice)
	}
	return nil
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	ConfigPath string
	// CacheDir defaults to <cwd>/tmp_workspace.
	CacheDir string
	// Trace prints a per-step span summary after the run.
	Trace bool
}

// Generate loads the plan, checks every runtime it needs and runs it.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	// 1. Load and validate the plan
	plan, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Preflight: nothing starts unless every runtime can run here
	if err := a.preflight(plan); err != nil {
		return err
	}

	// 3. Prepare the cache
	cache, err := prepareCache(opts.CacheDir, plan.Digest)
	if err != nil {
		return err
	}

	// 4. Optional trace summary
	if opts.Trace {
		summary := telemetry.NewSummary()
		shutdown := telemetry.InstallSummary(summary)
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
			if renderErr := summary.Render(a.out); renderErr != nil {
				a.logger.Warn("failed to render trace summary: " + renderErr.Error())
			}
		}()
	}

	// 5. Run
	return a.scheduler.Run(ctx, plan, cache)
}

func (a *App) preflight(plan *domain.Plan) error {
	seen := make(map[string]bool, len(plan.Steps))
	for i := range plan.Steps {
		name := plan.Steps[i].Runtime
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := a.prober.Probe(name); err != nil {
			return zerr.With(zerr.Wrap(err, "runtime preflight failed"), "step", plan.Steps[i].DisplayID())
		}
	}
	return nil
}

func prepareCache(dir, digest string) (domain.CacheLayout, error) {
	if dir == "" {
		base, err := os.Getwd()
		if err != nil {
			base = os.TempDir()
		}
		dir = filepath.Join(base, DefaultCacheDirName)
	}

	cache := domain.NewCacheLayout(dir, digest)
	for _, sub := range []string{cache.URLDir(), cache.SourceDir()} {
		if err := os.MkdirAll(sub, 0o750); err != nil {
			return domain.CacheLayout{}, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", sub)
		}
	}
	return cache, nil
}

// List prints every runtime detected on this host with its workload features.
func (a *App) List() error {
	var b strings.Builder
	for _, info := range a.prober.List() {
		if !info.Available {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", info.Name, strings.Join(info.Features, ", "))
	}
	if b.Len() == 0 {
		b.WriteString("No supported runtimes detected on this host.\n")
	}
	_, err := io.WriteString(a.out, b.String())
	return err
}

// Samples writes the bundled workloads into dir.
func (a *App) Samples(dir string) error {
	n, err := a.samples.Write(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to write samples")
	}
	_, err = fmt.Fprintf(a.out, "samples: wrote %d files to %s\n", n, dir)
	return err
}
