//go:build unix

package process

import (
	"os/exec"
	"syscall"
)

// ownGroup puts the child in a process group of its own so Kill reaches every
// descendant that did not leave it. pty.Start already does this through setsid.
func ownGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// killGroup sends SIGKILL to the process group led by pid.
func killGroup(pid int) error {
	return syscall.Kill(-pid, syscall.SIGKILL)
}
