//go:build linux

package speech

import (
	"os/exec"
	"syscall"
)

// setPlatformSpecificAttrs makes the kernel kill the speech process if the bot dies mid-sentence.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
