package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RuntimeKind is the closed set of execution kinds.
type RuntimeKind int

const (
	// RuntimeBinary executes a native executable directly.
	RuntimeBinary RuntimeKind = iota + 1
	// RuntimeShell executes a command string through a shell.
	RuntimeShell
	// RuntimeInterpreted executes a source file with an interpreter.
	RuntimeInterpreted
	// RuntimeCompiled compiles a source file and executes the artifact.
	RuntimeCompiled
)

// Language identifies the toolchain of interpreted and compiled runtimes.
type Language string

// Supported languages.
const (
	LanguagePython Language = "python"
	LanguageNode   Language = "node"
	LanguageGo     Language = "golang"
)

// Runtime is a parsed runtime variant.
type Runtime struct {
	Kind     RuntimeKind
	Language Language
}

// Predefined runtime variants.
var (
	Binary = Runtime{Kind: RuntimeBinary}
	Shell  = Runtime{Kind: RuntimeShell}
	Python = Runtime{Kind: RuntimeInterpreted, Language: LanguagePython}
	Node   = Runtime{Kind: RuntimeInterpreted, Language: LanguageNode}
	Golang = Runtime{Kind: RuntimeCompiled, Language: LanguageGo}
)

var runtimeAliases = map[string]Runtime{
	"bin":     Binary,
	"shell":   Shell,
	"python":  Python,
	"python3": Python,
	"cpython": Python,
	"node":    Node,
	"node.js": Node,
	"go":      Golang,
	"golang":  Golang,
}

// ParseRuntime normalises a runtime name from a plan into its variant.
func ParseRuntime(name string) (Runtime, error) {
	rt, ok := runtimeAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Runtime{}, zerr.With(zerr.Wrap(ErrRuntimeNotRecognized, "unsupported runtime"), "runtime", name)
	}
	return rt, nil
}

// String returns the canonical kind used in log labels.
func (r Runtime) String() string {
	switch r.Kind {
	case RuntimeBinary:
		return "bin"
	case RuntimeShell:
		return "shell"
	case RuntimeInterpreted, RuntimeCompiled:
		return string(r.Language)
	default:
		return "unknown"
	}
}

// Extension returns the source file extension for language runtimes.
func (r Runtime) Extension() string {
	switch r.Language {
	case LanguagePython:
		return "py"
	case LanguageNode:
		return "js"
	case LanguageGo:
		return "go"
	default:
		return ""
	}
}

// NeedsSource reports whether the runtime executes a resolved source file.
func (r Runtime) NeedsSource() bool {
	return r.Kind == RuntimeInterpreted || r.Kind == RuntimeCompiled
}

// Label renders the process log label for a step: "step=<id> runtime=<kind>".
func Label(step *Step) string {
	kind := step.Runtime
	if rt, err := ParseRuntime(step.Runtime); err == nil {
		kind = rt.String()
	}
	return "step=" + step.DisplayID() + " runtime=" + kind
}
