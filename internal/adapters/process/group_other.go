//go:build !unix

package process

import (
	"errors"
	"os/exec"
)

var errNoGroups = errors.New("process groups are not supported")

func ownGroup(*exec.Cmd) {}

func killGroup(int) error {
	return errNoGroups
}
