//go:build !linux

package speech

import "os/exec"

func setPlatformSpecificAttrs(cmd *exec.Cmd) {}
