package execshell

import (
	"bytes"
	"context"
)

// CaptureExecutor runs a command with both streams buffered in memory.
type CaptureExecutor struct {
	observer CommandEventObserver
}

// NewCaptureExecutor constructs a capture executor.
func NewCaptureExecutor(observer CommandEventObserver) *CaptureExecutor {
	return &CaptureExecutor{observer: resolveObserver(observer)}
}

// Run executes the invocation to completion and composes its captured text.
func (executor *CaptureExecutor) Run(executionContext context.Context, invocation ShellInvocation) (ExecutionOutcome, error) {
	observer := resolveObserver(executor.observer)
	command := newProcessCommand(executionContext, invocation)

	var standardOutputBuffer bytes.Buffer
	var standardErrorBuffer bytes.Buffer
	command.Stdout = &standardOutputBuffer
	command.Stderr = &standardErrorBuffer

	observer.CommandStarted(invocation)
	outcome, outcomeError := outcomeFromWaitError(invocation, command.Run())
	if outcomeError != nil {
		executionError := CommandExecutionError{Invocation: invocation, Cause: outcomeError}
		observer.CommandExecutionFailed(invocation, executionError)
		return ExecutionOutcome{}, executionError
	}

	outcome.CapturedText, outcome.CapturedTextPresent = ComposeCapturedText(standardOutputBuffer.String(), standardErrorBuffer.String(), outcome.Succeeded)
	observer.CommandCompleted(invocation, outcome)
	return outcome, nil
}
