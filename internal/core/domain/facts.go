package domain

import "strconv"

// Facts is the run fact record published for one step.
type Facts struct {
	Started   bool
	PIDs      []int
	Finished  bool
	ExitCodes []int
	// Err is set when the step failed before publishing Finished.
	Err error
}

// Clone returns a copy that shares no slices with f.
func (f *Facts) Clone() Facts {
	return Facts{
		Started:   f.Started,
		PIDs:      cloneSlice(f.PIDs),
		Finished:  f.Finished,
		ExitCodes: cloneSlice(f.ExitCodes),
		Err:       f.Err,
	}
}

// ExitStatus is how a single replica terminated.
type ExitStatus struct {
	Code     int
	Signaled bool
}

// String renders the status as it appears in end log lines.
func (s ExitStatus) String() string {
	if s.Signaled {
		return "signal"
	}
	return strconv.Itoa(s.Code)
}

// ExitCode returns the numeric code, substituting signalCode for signal terminations.
func (s ExitStatus) ExitCode(signalCode int) int {
	if s.Signaled {
		return signalCode
	}
	return s.Code
}
