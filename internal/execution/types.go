package execution

import (
	"context"

	"github.com/temirov/gitopolis/internal/execshell"
)

const (
	commandUsageConstant            = "exec [--tag <tags>]... [--oneline] -- <command> [arguments...]"
	commandShortDescriptionConstant = "Run a shell command in every selected repository"
	commandLongDescriptionConstant  = "exec runs the given command once per repository, sequentially, with the repository folder as the working directory.\n\nA single argument is handed to the shell verbatim, so pipes and && work when quoted. Several arguments are passed through without re-parsing.\n\nRepeat --tag to OR several groups; commas inside one --tag value AND its tags."
	onelineFlagNameConstant         = "oneline"
	onelineFlagDescriptionConstant  = "Print one tab separated line per repository with the command output flattened."

	repositoryHeaderTemplateConstant      = "\n🏢 %s> %s\n"
	repositoryFooterConstant              = "\n"
	skippedRepositoryNoticeConstant       = "    Repo folder missing, skipped.\n"
	onelineRecordTemplateConstant         = "%s\t%s\n"
	onelineSkippedRecordTemplateConstant  = "%s\tRepo folder missing, skipped.\n"
	failedCommandsSummaryTemplateConstant = "%d commands exited with non-zero status code\n"
	skippedReposSummaryTemplateConstant   = "%d repos skipped due to missing folders\n"
	currentDirectoryConstant              = "."
	repositoryLoadErrorTemplateConstant   = "unable to load repositories: %w"
	workingDirectoryErrorTemplateConstant = "unable to determine working directory: %w"
	invocationBuildErrorTemplateConstant  = "unable to build command for %s: %w"
	logMessageRepositorySkippedConstant   = "repository folder missing"
	logMessageRunCompletedConstant        = "exec finished"
	logFieldRepositoryPathConstant        = "repository_path"
	logFieldRepositoryCountConstant       = "repository_count"
	logFieldFailedCountConstant           = "failed_count"
	logFieldSkippedCountConstant          = "skipped_count"
	missingCommandMessageConstant         = "exec requires a command after --"
	fileSystemMissingMessageConstant      = "execution: filesystem not configured"
	executorMissingMessageConstant        = "execution: command executor not configured"
	shellResolutionMissingMessageConstant = "execution: shell program not resolved"
)

// InvocationExecutor runs one prepared shell invocation to completion.
type InvocationExecutor interface {
	Run(executionContext context.Context, invocation execshell.ShellInvocation) (execshell.ExecutionOutcome, error)
}

// RunOptions configures a single fan-out run.
type RunOptions struct {
	CommandTokens []string
	Oneline       bool
}

// CommandOptions captures parsed exec command-line input.
type CommandOptions struct {
	TagArguments  []string
	CommandTokens []string
	Oneline       bool
}

// RunSummary counts repositories that did not complete successfully.
type RunSummary struct {
	ExecutedCount int
	FailedCount   int
	SkippedCount  int
}

// HasProblems reports whether any repository failed or was skipped.
func (summary RunSummary) HasProblems() bool {
	return summary.FailedCount+summary.SkippedCount > 0
}
