package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/temirov/gitopolis/internal/execshell"
	"github.com/temirov/gitopolis/internal/repos/shared"
	"github.com/temirov/gitopolis/internal/utils"
)

var (
	// ErrMissingCommand indicates that exec was invoked without command tokens.
	ErrMissingCommand = errors.New(missingCommandMessageConstant)

	errFileSystemMissing      = errors.New(fileSystemMissingMessageConstant)
	errExecutorMissing        = errors.New(executorMissingMessageConstant)
	errShellResolutionMissing = errors.New(shellResolutionMissingMessageConstant)
)

// ServiceDependencies describes required collaborators for the fan-out.
type ServiceDependencies struct {
	Logger            *zap.Logger
	FileSystem        shared.FileSystem
	ShellResolution   execshell.ShellResolution
	StreamingExecutor InvocationExecutor
	CaptureExecutor   InvocationExecutor
	// WorkingDirectory anchors relative repository paths.
	WorkingDirectory string
	OutputWriter     io.Writer
	ErrorWriter      io.Writer
}

// Service runs one command across repositories, strictly sequentially.
type Service struct {
	logger            *zap.Logger
	fileSystem        shared.FileSystem
	shellResolution   execshell.ShellResolution
	streamingExecutor InvocationExecutor
	captureExecutor   InvocationExecutor
	workingDirectory  string
	outputWriter      io.Writer
	errorWriter       io.Writer
	summaryColor      *color.Color
}

// NewService constructs a Service with the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.FileSystem == nil {
		return nil, errFileSystemMissing
	}
	if dependencies.StreamingExecutor == nil || dependencies.CaptureExecutor == nil {
		return nil, errExecutorMissing
	}
	if len(dependencies.ShellResolution.Program) == 0 {
		return nil, errShellResolutionMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	outputWriter := dependencies.OutputWriter
	if outputWriter == nil {
		outputWriter = os.Stdout
	}
	errorWriter := dependencies.ErrorWriter
	if errorWriter == nil {
		errorWriter = os.Stderr
	}

	flushingOutputWriter, flushingErrorWriter := utils.NewFlushingWriterPair(outputWriter, errorWriter)
	return &Service{
		logger:            logger,
		fileSystem:        dependencies.FileSystem,
		shellResolution:   dependencies.ShellResolution,
		streamingExecutor: dependencies.StreamingExecutor,
		captureExecutor:   dependencies.CaptureExecutor,
		workingDirectory:  dependencies.WorkingDirectory,
		outputWriter:      flushingOutputWriter,
		errorWriter:       flushingErrorWriter,
		summaryColor:      color.New(color.FgRed),
	}, nil
}

// Run executes the command in each repository in list order. Missing folders
// and non-zero exits are counted and the run continues; spawn and I/O failures
// abort immediately. When anything failed or was skipped the returned error is
// a utils.ExitCodeError carrying exit code 1.
func (service *Service) Run(executionContext context.Context, repositories []shared.RepositoryRecord, options RunOptions) (RunSummary, error) {
	if len(options.CommandTokens) == 0 {
		return RunSummary{}, ErrMissingCommand
	}

	displayCommand := execshell.FormatForDisplay(options.CommandTokens)
	summary := RunSummary{}

	for _, repository := range repositories {
		repositoryDirectory := service.resolveRepositoryDirectory(repository.Path)
		if !service.directoryExists(repositoryDirectory) {
			summary.SkippedCount++
			service.logger.Debug(logMessageRepositorySkippedConstant, zap.String(logFieldRepositoryPathConstant, repository.Path))
			service.reportSkipped(repository.Path, displayCommand, options.Oneline)
			continue
		}

		invocation, buildError := execshell.BuildInvocation(service.shellResolution, options.CommandTokens, repositoryDirectory)
		if buildError != nil {
			return summary, fmt.Errorf(invocationBuildErrorTemplateConstant, repository.Path, buildError)
		}

		outcome, runError := service.runRepository(executionContext, repository.Path, displayCommand, invocation, options.Oneline)
		if runError != nil {
			return summary, runError
		}

		summary.ExecutedCount++
		if !outcome.Succeeded {
			summary.FailedCount++
		}
	}

	service.logger.Debug(
		logMessageRunCompletedConstant,
		zap.Int(logFieldRepositoryCountConstant, len(repositories)),
		zap.Int(logFieldFailedCountConstant, summary.FailedCount),
		zap.Int(logFieldSkippedCountConstant, summary.SkippedCount),
	)

	service.reportSummary(summary)
	if summary.HasProblems() {
		return summary, utils.NewExitCodeError(utils.ExitCodeFailure, "")
	}
	return summary, nil
}

func (service *Service) runRepository(executionContext context.Context, repositoryPath string, displayCommand string, invocation execshell.ShellInvocation, oneline bool) (execshell.ExecutionOutcome, error) {
	if oneline {
		outcome, runError := service.captureExecutor.Run(executionContext, invocation)
		if runError != nil {
			return execshell.ExecutionOutcome{}, runError
		}
		fmt.Fprintf(service.outputWriter, onelineRecordTemplateConstant, repositoryPath, outcome.CapturedText)
		return outcome, nil
	}

	fmt.Fprintf(service.outputWriter, repositoryHeaderTemplateConstant, repositoryPath, displayCommand)
	outcome, runError := service.streamingExecutor.Run(executionContext, invocation)
	if runError != nil {
		return execshell.ExecutionOutcome{}, runError
	}
	fmt.Fprint(service.outputWriter, repositoryFooterConstant)
	return outcome, nil
}

func (service *Service) reportSkipped(repositoryPath string, displayCommand string, oneline bool) {
	if oneline {
		fmt.Fprintf(service.outputWriter, onelineSkippedRecordTemplateConstant, repositoryPath)
		return
	}
	fmt.Fprintf(service.outputWriter, repositoryHeaderTemplateConstant, repositoryPath, displayCommand)
	fmt.Fprint(service.outputWriter, skippedRepositoryNoticeConstant)
}

func (service *Service) reportSummary(summary RunSummary) {
	if summary.FailedCount > 0 {
		service.summaryColor.Fprintf(service.errorWriter, failedCommandsSummaryTemplateConstant, summary.FailedCount)
	}
	if summary.SkippedCount > 0 {
		service.summaryColor.Fprintf(service.errorWriter, skippedReposSummaryTemplateConstant, summary.SkippedCount)
	}
}

// resolveRepositoryDirectory anchors relative paths at the working directory.
// The process working directory itself is never changed.
func (service *Service) resolveRepositoryDirectory(repositoryPath string) string {
	if filepath.IsAbs(repositoryPath) {
		return filepath.Clean(repositoryPath)
	}
	return filepath.Join(service.workingDirectory, repositoryPath)
}

func (service *Service) directoryExists(directoryPath string) bool {
	directoryInfo, statError := service.fileSystem.Stat(directoryPath)
	if statError != nil {
		return false
	}
	return directoryInfo.IsDir()
}
