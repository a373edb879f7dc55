//go:build !windows

package execshell

import "os/exec"

func applyPlatformAttributes(command *exec.Cmd, invocation ShellInvocation) {}
