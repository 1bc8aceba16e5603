package runtimes

import "strings"

// Wrap prefixes base with the whitespace-split wrapper and a "--" separator.
// A blank wrapper returns base unchanged.
func Wrap(wrapper string, base []string) (argv []string, display string) {
	parts := strings.Fields(wrapper)
	if len(parts) == 0 {
		return base, strings.Join(base, " ")
	}

	argv = make([]string, 0, len(parts)+1+len(base))
	argv = append(argv, parts...)
	argv = append(argv, "--")
	argv = append(argv, base...)
	return argv, strings.Join(parts, " ") + " -- " + strings.Join(base, " ")
}
