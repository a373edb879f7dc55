package execshell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/gitopolis/internal/utils"
)

const (
	nonZeroExitDiagnosticTemplateConstant = "Command exited with code %d\n"
	signalTerminationDiagnosticConstant   = "Command terminated without an exit code\n"
	lineDelimiterConstant                 = '\n'
	lineTerminatorConstant                = "\n"
)

// StreamingExecutor runs a command and forwards its output line by line as it is produced.
type StreamingExecutor struct {
	outputWriter io.Writer
	errorWriter  io.Writer
	observer     CommandEventObserver
}

// NewStreamingExecutor constructs a streaming executor. Nil writers fall back to
// the process standard output and standard error. When both streams target the
// same writer they share one FlushingWriter so concurrent lines are serialized.
func NewStreamingExecutor(outputWriter io.Writer, errorWriter io.Writer, observer CommandEventObserver) *StreamingExecutor {
	if outputWriter == nil {
		outputWriter = os.Stdout
	}
	if errorWriter == nil {
		errorWriter = os.Stderr
	}

	flushingOutputWriter, flushingErrorWriter := utils.NewFlushingWriterPair(outputWriter, errorWriter)
	return &StreamingExecutor{
		outputWriter: flushingOutputWriter,
		errorWriter:  flushingErrorWriter,
		observer:     resolveObserver(observer),
	}
}

// Run spawns the invocation, drains both pipes concurrently and waits for exit.
// A non-zero exit prints a diagnostic to the error writer and is reported in the
// outcome; only spawn and I/O failures are returned as errors.
func (executor *StreamingExecutor) Run(executionContext context.Context, invocation ShellInvocation) (ExecutionOutcome, error) {
	observer := resolveObserver(executor.observer)
	command := newProcessCommand(executionContext, invocation)

	standardOutputPipe, pipeError := command.StdoutPipe()
	if pipeError != nil {
		return ExecutionOutcome{}, executor.abort(observer, invocation, pipeError)
	}
	standardErrorPipe, pipeError := command.StderrPipe()
	if pipeError != nil {
		return ExecutionOutcome{}, executor.abort(observer, invocation, pipeError)
	}

	observer.CommandStarted(invocation)
	if startError := command.Start(); startError != nil {
		return ExecutionOutcome{}, executor.abort(observer, invocation, startError)
	}

	var drainGroup errgroup.Group
	drainGroup.Go(func() error {
		return forwardLines(standardOutputPipe, executor.outputWriter)
	})
	drainGroup.Go(func() error {
		return forwardLines(standardErrorPipe, executor.errorWriter)
	})
	drainError := drainGroup.Wait()

	outcome, waitError := outcomeFromWaitError(invocation, command.Wait())
	if drainError != nil {
		return ExecutionOutcome{}, executor.abort(observer, invocation, drainError)
	}
	if waitError != nil {
		return ExecutionOutcome{}, executor.abort(observer, invocation, waitError)
	}

	if !outcome.Succeeded {
		if diagnosticError := executor.writeDiagnostic(outcome); diagnosticError != nil {
			return ExecutionOutcome{}, executor.abort(observer, invocation, diagnosticError)
		}
	}

	observer.CommandCompleted(invocation, outcome)
	return outcome, nil
}

func (executor *StreamingExecutor) writeDiagnostic(outcome ExecutionOutcome) error {
	if outcome.ExitCodeKnown {
		_, writeError := fmt.Fprintf(executor.errorWriter, nonZeroExitDiagnosticTemplateConstant, outcome.ExitCode)
		return writeError
	}
	_, writeError := io.WriteString(executor.errorWriter, signalTerminationDiagnosticConstant)
	return writeError
}

func (executor *StreamingExecutor) abort(observer CommandEventObserver, invocation ShellInvocation, cause error) error {
	executionError := CommandExecutionError{Invocation: invocation, Cause: cause}
	observer.CommandExecutionFailed(invocation, executionError)
	return executionError
}

// forwardLines copies complete lines from source to destination as they arrive.
// A trailing fragment without a newline is terminated. After a write failure the
// source is still drained so the child never blocks on a full pipe.
func forwardLines(source io.Reader, destination io.Writer) error {
	lineReader := bufio.NewReader(source)
	for {
		line, readError := lineReader.ReadString(lineDelimiterConstant)
		if len(line) > 0 {
			if line[len(line)-1] != lineDelimiterConstant {
				line += lineTerminatorConstant
			}
			if _, writeError := io.WriteString(destination, line); writeError != nil {
				_, _ = io.Copy(io.Discard, lineReader)
				return writeError
			}
		}
		if readError != nil {
			if errors.Is(readError, io.EOF) {
				return nil
			}
			return readError
		}
	}
}
