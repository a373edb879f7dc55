package ui

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/gitopolis/internal/execshell"
)

const (
	commandStartedMessageTemplateConstant          = "Running %s"
	commandCompletedMessageTemplateConstant        = "Completed %s"
	commandFailedExitCodeMessageTemplateConstant   = "%s failed with exit code %d"
	commandTerminatedMessageTemplateConstant       = "%s terminated without an exit code"
	commandExecutionFailureMessageTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant                   = "%s%s"
	workingDirectorySuffixTemplateConstant         = " (in %s)"
	capturedTextSuffixTemplateConstant             = ": %s"
	unknownFailureMessageConstant                  = "unknown error"
	emptyStringConstant                            = ""
	shellProgramFieldNameConstant                  = "shell"
)

// CommandEventFormatter builds human-readable messages for command lifecycle events.
type CommandEventFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandEventFormatter) BuildStartedMessage(invocation execshell.ShellInvocation) string {
	return fmt.Sprintf(commandStartedMessageTemplateConstant, formatter.formatCommandLabel(invocation))
}

// BuildSuccessMessage formats the message describing a command that exited with status zero.
func (formatter CommandEventFormatter) BuildSuccessMessage(invocation execshell.ShellInvocation) string {
	return fmt.Sprintf(commandCompletedMessageTemplateConstant, formatter.formatCommandLabel(invocation))
}

// BuildFailureMessage formats the message describing a command that did not succeed.
func (formatter CommandEventFormatter) BuildFailureMessage(invocation execshell.ShellInvocation, outcome execshell.ExecutionOutcome) string {
	commandLabel := formatter.formatCommandLabel(invocation)
	baseMessage := fmt.Sprintf(commandTerminatedMessageTemplateConstant, commandLabel)
	if outcome.ExitCodeKnown {
		baseMessage = fmt.Sprintf(commandFailedExitCodeMessageTemplateConstant, commandLabel, outcome.ExitCode)
	}
	if !outcome.CapturedTextPresent {
		return baseMessage
	}
	return baseMessage + fmt.Sprintf(capturedTextSuffixTemplateConstant, outcome.CapturedText)
}

// BuildExecutionFailureMessage formats the message describing a spawn or I/O failure.
func (formatter CommandEventFormatter) BuildExecutionFailureMessage(invocation execshell.ShellInvocation, failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return fmt.Sprintf(commandExecutionFailureMessageTemplateConstant, formatter.formatCommandLabel(invocation), failureMessage)
}

func (formatter CommandEventFormatter) formatCommandLabel(invocation execshell.ShellInvocation) string {
	commandLabel := execshell.FormatForDisplay(invocation.CommandTokens)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, formatter.formatWorkingDirectorySuffix(invocation))
}

func (formatter CommandEventFormatter) formatWorkingDirectorySuffix(invocation execshell.ShellInvocation) string {
	trimmedWorkingDirectory := strings.TrimSpace(invocation.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

// ConsoleCommandEventLogger renders command lifecycle events using a zap logger configured for human-readable output.
type ConsoleCommandEventLogger struct {
	logger    *zap.Logger
	formatter CommandEventFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, formatter: CommandEventFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver at debug level.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(invocation execshell.ShellInvocation) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Debug(eventLogger.formatter.BuildStartedMessage(invocation), zap.String(shellProgramFieldNameConstant, invocation.Program))
}

// CommandCompleted implements execshell.CommandEventObserver. Failures are logged as warnings.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(invocation execshell.ShellInvocation, outcome execshell.ExecutionOutcome) {
	if eventLogger == nil {
		return
	}
	if outcome.Succeeded {
		eventLogger.logger.Debug(eventLogger.formatter.BuildSuccessMessage(invocation))
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildFailureMessage(invocation, outcome))
}

// CommandExecutionFailed implements execshell.CommandEventObserver. Spawn and I/O
// failures abort the run and are printed by the entrypoint, so they are logged at debug.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(invocation execshell.ShellInvocation, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Debug(eventLogger.formatter.BuildExecutionFailureMessage(invocation, failure))
}
