// Package logger implements the logging adapters on top of log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/wl/internal/adapters/detector"
	"go.trai.ch/wl/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	jsonMode bool
	output   io.Writer
	terminal ports.TerminalDetector
	// color is the --color choice applied over detection.
	color string
	mode  ports.OutputMode
}

// New creates a Logger writing pretty records to stderr, coloured when stderr is a terminal.
func New(terminal ports.TerminalDetector) ports.Logger {
	l := &Logger{output: os.Stderr, terminal: terminal}
	l.mode = terminal.Detect(l.output)
	l.rebuild()
	return l
}

// SetOutput changes the destination and re-detects its terminal, keeping the current
// format. Nil means stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	// The choice was validated by SetColor.
	l.mode, _ = detector.ResolveMode(l.terminal.Detect(w), l.color)
	l.rebuild()
}

// SetColor applies auto, always or never over terminal detection.
func (l *Logger) SetColor(choice string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	mode, err := detector.ResolveMode(l.terminal.Detect(l.output), choice)
	if err != nil {
		return err
	}
	l.color = choice
	l.mode = mode
	l.rebuild()
	return nil
}

// SetJSON switches between JSON and pretty records.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// rebuild swaps the slog handler. The caller must hold l.mu or own l exclusively.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		l.logger = slog.New(slog.NewJSONHandler(l.output, opts))
		return
	}
	l.logger = slog.New(NewPrettyHandler(l.output, l.mode, opts))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error(), "causes", causeMessages(err))
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
