package execshell

import (
	"context"
	"os/exec"
)

// newProcessCommand prepares a child with stdin bound to the null device.
func newProcessCommand(executionContext context.Context, invocation ShellInvocation) *exec.Cmd {
	command := exec.CommandContext(executionContext, invocation.Program, invocation.Arguments...)
	command.Dir = invocation.WorkingDirectory
	command.Stdin = nil
	applyPlatformAttributes(command, invocation)
	return command
}
