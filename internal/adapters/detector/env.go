// Package detector decides whether log output goes to an interactive terminal.
package detector

import (
	"io"
	"os"
	"strings"

	"go.trai.ch/wl/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Color choices accepted by ResolveMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrUnknownColorMode is returned for --color values outside auto, always and never.
var ErrUnknownColorMode = zerr.New("unknown color mode")

var _ ports.TerminalDetector = (*Detector)(nil)

type fileDescriptor interface {
	Fd() uintptr
}

// Detector implements ports.TerminalDetector from the process environment.
type Detector struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
}

// New creates a Detector reading the real environment.
func New() *Detector {
	return NewFrom(os.Getenv, term.IsTerminal)
}

// NewFrom creates a Detector with injected lookups.
func NewFrom(getenv func(string) string, isTerminal func(fd int) bool) *Detector {
	return &Detector{getenv: getenv, isTerminal: isTerminal}
}

// Detect returns OutputColor only when w is a terminal and neither CI, NO_COLOR nor a
// dumb TERM asks for plain text.
func (d *Detector) Detect(w io.Writer) ports.OutputMode {
	if d.getenv("NO_COLOR") != "" || d.isCI() || d.getenv("TERM") == "dumb" {
		return ports.OutputPlain
	}

	f, ok := w.(fileDescriptor)
	if !ok || !d.isTerminal(int(f.Fd())) { //nolint:gosec // file descriptors fit in int
		return ports.OutputPlain
	}
	return ports.OutputColor
}

func (d *Detector) isCI() bool {
	ci := strings.ToLower(d.getenv("CI"))
	return ci == "true" || ci == "1"
}

// ResolveMode applies a --color choice over the detected mode.
func ResolveMode(detected ports.OutputMode, choice string) (ports.OutputMode, error) {
	switch strings.ToLower(choice) {
	case "", ColorAuto:
		return detected, nil
	case ColorAlways:
		return ports.OutputColor, nil
	case ColorNever:
		return ports.OutputPlain, nil
	default:
		return detected, zerr.With(zerr.Wrap(ErrUnknownColorMode, "expected auto, always or never"), "color", choice)
	}
}
