// Package placeholder expands p"...{id:pid}..." templates against published pids.
package placeholder

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/wl/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	prefix = `p"`
	suffix = `"`

	keyFirstPID = "pid"
	keyAllPIDs  = "pid,"
)

// Expand returns a copy of step whose command, wrapper and env values have every
// placeholder resolved against pids. The input step is never modified.
func Expand(step *domain.Step, pids map[string][]int) (domain.Step, error) {
	out := step.Clone()

	var err error
	if out.Command, err = ExpandValue(step.Command, pids); err != nil {
		return domain.Step{}, zerr.With(err, "field", "command")
	}
	if out.Wrapper, err = ExpandValue(step.Wrapper, pids); err != nil {
		return domain.Step{}, zerr.With(err, "field", "wrapper")
	}

	if step.Env != nil {
		out.Env = make(map[string]string, len(step.Env))
		for _, key := range slices.Sorted(maps.Keys(step.Env)) {
			v, err := ExpandValue(step.Env[key], pids)
			if err != nil {
				return domain.Step{}, zerr.With(err, "field", "env."+key)
			}
			out.Env[key] = v
		}
	}

	return out, nil
}

// ExpandValue expands a single field. Values that do not start with p" are
// returned unchanged.
func ExpandValue(value string, pids map[string][]int) (string, error) {
	if !strings.HasPrefix(value, prefix) {
		return value, nil
	}

	body, ok := strings.CutSuffix(value[len(prefix):], suffix)
	if !ok {
		return "", malformed(value, `placeholder missing closing '"'`)
	}

	var b strings.Builder
	rest := body
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			break
		}
		b.WriteString(rest[:start])

		after := rest[start+1:]
		end := strings.IndexByte(after, '}')
		if end < 0 {
			return "", malformed(value, "placeholder missing closing '}'")
		}

		expanded, err := expandToken(after[:end], pids)
		if err != nil {
			return "", zerr.With(err, "value", value)
		}
		b.WriteString(expanded)
		rest = after[end+1:]
	}
	b.WriteString(rest)

	return b.String(), nil
}

func expandToken(token string, pids map[string][]int) (string, error) {
	id, key, ok := strings.Cut(token, ":")
	if !ok {
		return "", zerr.With(zerr.Wrap(domain.ErrMalformedPlaceholder, "placeholder missing key"), "token", token)
	}

	switch key {
	case keyFirstPID:
		list, ok := pids[id]
		if !ok {
			return "", zerr.With(zerr.Wrap(domain.ErrUnknownID, "placeholder references unpublished step"), "id", id)
		}
		if len(list) == 0 {
			return "", zerr.With(zerr.Wrap(domain.ErrNoPID, "step published no pids"), "id", id)
		}
		return strconv.Itoa(list[0]), nil

	case keyAllPIDs:
		list, ok := pids[id]
		if !ok {
			return "", zerr.With(zerr.Wrap(domain.ErrUnknownID, "placeholder references unpublished step"), "id", id)
		}
		parts := make([]string, len(list))
		for i, pid := range list {
			parts[i] = strconv.Itoa(pid)
		}
		return strings.Join(parts, ","), nil

	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownPlaceholderKey, "unsupported placeholder key"), "key", key)
	}
}

func malformed(value, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrMalformedPlaceholder, msg), "value", value)
}

