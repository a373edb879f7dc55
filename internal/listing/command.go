package listing

import (
	"github.com/spf13/cobra"

	"github.com/temirov/gitopolis/internal/repos/dependencies"
	"github.com/temirov/gitopolis/internal/repos/shared"
	"github.com/temirov/gitopolis/internal/tagfilter"
	"github.com/temirov/gitopolis/internal/utils/flags"
)

const (
	commandUsageConstant            = "list [--tag <tags>]... [--long]"
	commandShortDescriptionConstant = "List managed repositories"
	commandLongDescriptionConstant  = "list prints the repositories recorded in the state file, sorted by path. Exits with status 2 when none match."
	longFlagNameConstant            = "long"
	longFlagShorthandConstant       = "l"
	longFlagDescriptionConstant     = "Also print tags and remote URLs, tab separated."
)

// StateFileProvider supplies the configured repository list path.
type StateFileProvider func() string

// CommandBuilder assembles the list cobra command.
type CommandBuilder struct {
	StateFileProvider StateFileProvider
	RepositoryStore   shared.RepositoryStore
}

// Build constructs the cobra command for listing repositories.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUsageConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	flags.BindTagFlag(command)
	command.Flags().BoolP(longFlagNameConstant, longFlagShorthandConstant, false, longFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	longOutput, _ := command.Flags().GetBool(longFlagNameConstant)
	options := Options{
		TagArguments: flags.TagArguments(command),
		Long:         longOutput,
	}

	stateFilePath := ""
	if builder.StateFileProvider != nil {
		stateFilePath = builder.StateFileProvider()
	}

	service, serviceError := NewService(dependencies.ResolveRepositoryStore(builder.RepositoryStore, stateFilePath), command.OutOrStdout())
	if serviceError != nil {
		return serviceError
	}
	return service.Run(tagfilter.NewFromArguments(options.TagArguments), options)
}
