package process_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wl/internal/adapters/logger"
	"go.trai.ch/wl/internal/adapters/process"
	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/wl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// syncBuffer is a bytes.Buffer safe for the reader goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func sh(script string) domain.CommandSpec {
	return domain.CommandSpec{Argv: []string{"sh", "-c", script}}
}

func TestRunner_SpawnAndWait_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventLog(ctrl)

	var started ports.ProcessStart
	var ended ports.ProcessEnd
	gomock.InOrder(
		events.EXPECT().ProcessStarted(gomock.Any()).Do(func(ev ports.ProcessStart) { started = ev }),
		events.EXPECT().ProcessExited(gomock.Any()).Do(func(ev ports.ProcessEnd) { ended = ev }),
	)

	base := time.UnixMilli(1700000000000)
	ticks := []time.Time{base, base.Add(1500 * time.Millisecond)}
	runner := process.NewRunner(events)
	runner.SetClock(func() time.Time {
		next := ticks[0]
		ticks = ticks[1:]
		return next
	})

	spec := sh("exit 3")
	spec.Display = "sh -c exit3"
	p, err := runner.Spawn(t.Context(), spec, ports.SpawnOptions{Label: "step=a runtime=shell"})
	require.NoError(t, err)
	assert.Positive(t, p.PID())

	status, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, domain.ExitStatus{Code: 3}, status)

	assert.Equal(t, p.PID(), started.PID)
	assert.Equal(t, "step=a runtime=shell", started.Label)
	assert.Equal(t, "sh -c exit3", started.Command)
	assert.Equal(t, base, started.Time)

	assert.Equal(t, p.PID(), ended.PID)
	assert.Equal(t, 1500*time.Millisecond, ended.Duration)
	assert.Equal(t, domain.ExitStatus{Code: 3}, ended.Status)

	again, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, status, again)
}

func TestRunner_Kill_ReportsSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventLog(ctrl)
	events.EXPECT().ProcessStarted(gomock.Any())
	events.EXPECT().ProcessExited(gomock.Any())

	p, err := process.NewRunner(events).Spawn(t.Context(), sh("sleep 30"), ports.SpawnOptions{Label: "step=s runtime=shell"})
	require.NoError(t, err)

	p.Kill()
	status, err := p.Wait()
	require.NoError(t, err)
	assert.True(t, status.Signaled)
	assert.Equal(t, "signal", status.String())

	// Killing a reaped child is a no-op.
	p.Kill()
}

func TestRunner_Kill_ReachesForkedChildren(t *testing.T) {
	out := &syncBuffer{}
	p, err := process.NewRunner(logger.NewEventLog(out)).Spawn(
		t.Context(),
		sh("echo hi; sleep 30; echo done"),
		ports.SpawnOptions{Label: "step=k runtime=shell", Capture: true},
	)
	require.NoError(t, err)

	// sleep inherits the stdout pipe; Wait only returns once it is gone too.
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "] hi\n")
	}, 5*time.Second, 10*time.Millisecond)

	p.Kill()

	type result struct {
		status domain.ExitStatus
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := p.Wait()
		done <- result{status, err}
	}()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.True(t, res.status.Signaled)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after Kill")
	}
	assert.NotContains(t, out.String(), "] done")
}

func TestRunner_Capture_EmitsEveryLineBeforeWaitReturns(t *testing.T) {
	out := &syncBuffer{}
	events := logger.NewEventLog(out)

	p, err := process.NewRunner(events).Spawn(
		t.Context(),
		sh("printf 'one\\ntwo\\nthree'"),
		ports.SpawnOptions{Label: "step=c runtime=shell", Capture: true},
	)
	require.NoError(t, err)

	status, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, status.Code)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	pid := p.PID()
	assert.Regexp(t, regexp.MustCompile(`^start pid=\d+ ts=\d+ step=c runtime=shell cmd="sh -c printf 'one\\ntwo\\nthree'"$`), lines[0])
	prefix := "[pid=" + strconv.Itoa(pid) + " step=c runtime=shell] "
	assert.Equal(t, prefix+"one", lines[1])
	assert.Equal(t, prefix+"two", lines[2])
	assert.Equal(t, prefix+"three", lines[3])
	assert.Regexp(t, regexp.MustCompile(`^end pid=\d+ ts=\d+ step=c runtime=shell duration_ms=\d+ exit=0$`), lines[4])
}

func TestRunner_PTY_CapturesMergedOutput(t *testing.T) {
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skip("no pseudo-terminal support")
	}

	out := &syncBuffer{}
	p, err := process.NewRunner(logger.NewEventLog(out)).Spawn(
		t.Context(),
		sh("echo out; echo err >&2; test -t 1"),
		ports.SpawnOptions{Label: "step=t runtime=shell", PTY: true},
	)
	require.NoError(t, err)

	status, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, 0, status.Code, "stdout should be a terminal")

	prefix := "[pid=" + strconv.Itoa(p.PID()) + " step=t runtime=shell] "
	assert.Contains(t, out.String(), prefix+"out\n")
	assert.Contains(t, out.String(), prefix+"err\n")
}

func TestRunner_Spawn_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockEventLog(ctrl)
	runner := process.NewRunner(events)

	_, err := runner.Spawn(t.Context(), domain.CommandSpec{}, ports.SpawnOptions{})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)

	_, err = runner.Spawn(t.Context(), domain.CommandSpec{Argv: []string{"wl-definitely-not-installed"}}, ports.SpawnOptions{})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
	assert.Contains(t, err.Error(), "wl-definitely-not-installed")
}

func TestRunner_Spawn_UsesChildPath(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "wl-hello")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho hello\n"), 0o700)) //nolint:gosec // executable fixture

	out := &syncBuffer{}
	spec := domain.CommandSpec{
		Argv: []string{"wl-hello"},
		Env:  []string{"PATH=" + dir + string(os.PathListSeparator) + os.Getenv("PATH")},
	}
	p, err := process.NewRunner(logger.NewEventLog(out)).Spawn(t.Context(), spec, ports.SpawnOptions{Label: "step=b runtime=bin", Capture: true})
	require.NoError(t, err)

	_, err = p.Wait()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "] hello\n")
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // executable fixture
	plain := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(plain, nil, 0o600))

	got, err := process.LookPath("tool", []string{"PATH=/nonexistent" + string(os.PathListSeparator) + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = process.LookPath("data", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = process.LookPath("tool", []string{"HOME=/root"})
	require.Error(t, err)
}
