package execution

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitopolis/internal/execshell"
	"github.com/temirov/gitopolis/internal/repos/dependencies"
	"github.com/temirov/gitopolis/internal/repos/shared"
	"github.com/temirov/gitopolis/internal/tagfilter"
	"github.com/temirov/gitopolis/internal/utils/flags"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the exec command configuration.
type ConfigurationProvider func() CommandConfiguration

// StateFileProvider supplies the configured repository list path.
type StateFileProvider func() string

// CommandBuilder assembles the exec cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	StateFileProvider     StateFileProvider
	RepositoryStore       shared.RepositoryStore
	FileSystem            shared.FileSystem
	// EnvironmentLookup is consulted once per run to pick the shell; nil reads the process environment.
	EnvironmentLookup     execshell.EnvironmentLookup
	OperatingSystem       string
	StreamingExecutor     InvocationExecutor
	CaptureExecutor       InvocationExecutor
	CommandEventsObserver execshell.CommandEventObserver
}

// Build constructs the cobra command for the exec fan-out.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUsageConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	flags.BindTagFlag(command)
	command.Flags().Bool(onelineFlagNameConstant, false, onelineFlagDescriptionConstant)
	command.Flags().SetInterspersed(false)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	repositoryStore := dependencies.ResolveRepositoryStore(builder.RepositoryStore, builder.resolveStateFile())
	repositories, loadError := repositoryStore.LoadRepositories()
	if loadError != nil {
		return fmt.Errorf(repositoryLoadErrorTemplateConstant, loadError)
	}
	selectedRepositories := tagfilter.NewFromArguments(options.TagArguments).Select(repositories)

	fileSystem := dependencies.ResolveFileSystem(builder.FileSystem)
	workingDirectory, workingDirectoryError := fileSystem.Abs(currentDirectoryConstant)
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
	}

	observer := dependencies.ResolveCommandEventObserver(builder.CommandEventsObserver, logger)
	streamingExecutor := builder.StreamingExecutor
	if streamingExecutor == nil {
		streamingExecutor = execshell.NewStreamingExecutor(command.OutOrStdout(), command.ErrOrStderr(), observer)
	}
	captureExecutor := builder.CaptureExecutor
	if captureExecutor == nil {
		captureExecutor = execshell.NewCaptureExecutor(observer)
	}

	service, serviceError := NewService(ServiceDependencies{
		Logger:            logger,
		FileSystem:        fileSystem,
		ShellResolution:   dependencies.ResolveShellResolution(builder.EnvironmentLookup, builder.OperatingSystem),
		StreamingExecutor: streamingExecutor,
		CaptureExecutor:   captureExecutor,
		WorkingDirectory:  workingDirectory,
		OutputWriter:      command.OutOrStdout(),
		ErrorWriter:       command.ErrOrStderr(),
	})
	if serviceError != nil {
		return serviceError
	}

	_, runError := service.Run(command.Context(), selectedRepositories, RunOptions{
		CommandTokens: options.CommandTokens,
		Oneline:       options.Oneline,
	})
	return runError
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	if len(arguments) == 0 {
		if helpError := builder.displayCommandHelp(command); helpError != nil {
			return CommandOptions{}, helpError
		}
		return CommandOptions{}, ErrMissingCommand
	}

	configuration := builder.resolveConfiguration()
	oneline := configuration.Oneline
	if command.Flags().Changed(onelineFlagNameConstant) {
		oneline, _ = command.Flags().GetBool(onelineFlagNameConstant)
	}

	return CommandOptions{
		TagArguments:  flags.TagArguments(command),
		CommandTokens: append([]string{}, arguments...),
		Oneline:       oneline,
	}, nil
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveStateFile() string {
	if builder.StateFileProvider == nil {
		return ""
	}
	return builder.StateFileProvider()
}

func (builder *CommandBuilder) displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
