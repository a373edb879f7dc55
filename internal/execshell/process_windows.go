//go:build windows

package execshell

import (
	"os/exec"
	"syscall"
)

func applyPlatformAttributes(command *exec.Cmd, invocation ShellInvocation) {
	if len(invocation.CommandLine) == 0 {
		return
	}
	command.SysProcAttr = &syscall.SysProcAttr{CmdLine: invocation.CommandLine}
}
