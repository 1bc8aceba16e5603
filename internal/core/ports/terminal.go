package ports

import "io"

// OutputMode selects how human-readable log records are rendered.
type OutputMode int

const (
	// OutputPlain writes records without escape sequences.
	OutputPlain OutputMode = iota
	// OutputColor styles records for an interactive terminal.
	OutputColor
)

// TerminalDetector inspects the environment a writer is attached to.
//
//go:generate mockgen -source=terminal.go -destination=mocks/mock_terminal.go -package=mocks
type TerminalDetector interface {
	// Detect reports the rendering mode for records written to w.
	Detect(w io.Writer) OutputMode
}
