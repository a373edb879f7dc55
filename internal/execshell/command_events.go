package execshell

// CommandEventObserver receives lifecycle notifications for shell invocations.
type CommandEventObserver interface {
	// CommandStarted notifies observers that a child process is about to be spawned.
	CommandStarted(invocation ShellInvocation)
	// CommandCompleted notifies observers that the child exited and supplies the outcome.
	CommandCompleted(invocation ShellInvocation, outcome ExecutionOutcome)
	// CommandExecutionFailed reports spawn or I/O failures that abort the run.
	CommandExecutionFailed(invocation ShellInvocation, failure error)
}

// noopCommandEventObserver discards all command events.
type noopCommandEventObserver struct{}

// CommandStarted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandStarted(ShellInvocation) {}

// CommandCompleted implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandCompleted(ShellInvocation, ExecutionOutcome) {}

// CommandExecutionFailed implements CommandEventObserver for the no-op observer.
func (noopCommandEventObserver) CommandExecutionFailed(ShellInvocation, error) {}

func resolveObserver(observer CommandEventObserver) CommandEventObserver {
	if observer == nil {
		return noopCommandEventObserver{}
	}
	return observer
}
