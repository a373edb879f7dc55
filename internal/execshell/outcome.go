package execshell

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	commandExecutionErrorTemplateConstant = "failed to run %s in %s: %v"
	capturedTextSeparatorConstant         = " "
	windowsLineBreakConstant              = "\r\n"
	lineBreakConstant                     = "\n"
	terminatedWithoutExitCodeConstant     = -1
)

// ExecutionOutcome describes how one repository's child process finished.
type ExecutionOutcome struct {
	WorkingDirectory string
	Succeeded        bool
	// ExitCode is meaningful only when ExitCodeKnown is true; a child killed by a signal has none.
	ExitCode      int
	ExitCodeKnown bool
	// CapturedText is populated by the capture executor only.
	CapturedText        string
	CapturedTextPresent bool
}

// CommandExecutionError reports a spawn or I/O failure that aborts the whole run.
type CommandExecutionError struct {
	Invocation ShellInvocation
	Cause      error
}

// Error describes the failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionErrorTemplateConstant, executionError.Invocation.Program, executionError.Invocation.WorkingDirectory, executionError.Cause)
}

// Unwrap exposes the underlying cause.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// outcomeFromWaitError converts the result of Cmd.Wait into an outcome. Errors other
// than a non-zero exit are returned unchanged so callers can abort.
func outcomeFromWaitError(invocation ShellInvocation, waitError error) (ExecutionOutcome, error) {
	outcome := ExecutionOutcome{WorkingDirectory: invocation.WorkingDirectory}
	if waitError == nil {
		outcome.Succeeded = true
		outcome.ExitCodeKnown = true
		return outcome, nil
	}

	var exitError *exec.ExitError
	if !errors.As(waitError, &exitError) {
		return ExecutionOutcome{}, waitError
	}

	exitCode := exitError.ExitCode()
	if exitCode != terminatedWithoutExitCodeConstant {
		outcome.ExitCode = exitCode
		outcome.ExitCodeKnown = true
	}
	return outcome, nil
}

// ComposeCapturedText builds the single-line text shown in oneline mode.
// Both streams are trimmed and flattened. Standard error is only included
// when the command failed. The boolean is false when nothing remains.
func ComposeCapturedText(standardOutput string, standardError string, succeeded bool) (string, bool) {
	flattenedOutput := flattenCapturedStream(standardOutput)
	flattenedError := flattenCapturedStream(standardError)

	composedText := flattenedOutput
	if !succeeded && len(flattenedError) > 0 {
		if len(flattenedOutput) > 0 {
			composedText = flattenedOutput + capturedTextSeparatorConstant + flattenedError
		} else {
			composedText = flattenedError
		}
	}

	if len(composedText) == 0 {
		return "", false
	}
	return composedText, true
}

func flattenCapturedStream(streamContent string) string {
	trimmedContent := strings.TrimSpace(streamContent)
	normalizedContent := strings.ReplaceAll(trimmedContent, windowsLineBreakConstant, lineBreakConstant)
	return strings.ReplaceAll(normalizedContent, lineBreakConstant, capturedTextSeparatorConstant)
}
