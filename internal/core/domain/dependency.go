package domain

import "slices"

// Condition is the lifecycle point a dependency waits for.
type Condition string

const (
	// ConditionStarted is satisfied once the target published its pids.
	ConditionStarted Condition = "started"
	// ConditionExited is satisfied once every replica of the target exited.
	ConditionExited Condition = "exited"
)

// Valid reports whether c is a known condition.
func (c Condition) Valid() bool {
	return c == ConditionStarted || c == ConditionExited
}

// Dependency declares that a step waits for another step to reach a condition.
type Dependency struct {
	ID   string
	When Condition
	// ExitCodes is the allow-list for ConditionExited. Nil means any code.
	ExitCodes []int
}

// SatisfiedBy reports whether the facts recorded for the target satisfy d.
// A nil record is never satisfying.
func (d Dependency) SatisfiedBy(f *Facts) bool {
	if f == nil {
		return false
	}

	switch d.When {
	case ConditionExited:
		if !f.Finished {
			return false
		}
		if d.ExitCodes == nil {
			return true
		}
		for _, code := range f.ExitCodes {
			if !slices.Contains(d.ExitCodes, code) {
				return false
			}
		}
		return true
	default:
		return f.Started
	}
}
