package flags

import (
	"github.com/spf13/cobra"
)

const (
	// TagFlagName names the repeatable tag selection flag.
	TagFlagName      = "tag"
	tagFlagShorthand = "t"
	tagFlagUsage     = "Only include repos with all of these comma separated tags; repeat to OR several groups."
)

// BindTagFlag attaches the repeatable --tag flag to the command.
// String array semantics keep commas inside one value, since they mean AND.
func BindTagFlag(command *cobra.Command) {
	if command == nil {
		return
	}
	command.Flags().StringArrayP(TagFlagName, tagFlagShorthand, nil, tagFlagUsage)
}

// TagArguments returns the raw --tag values in the order they were given.
func TagArguments(command *cobra.Command) []string {
	if command == nil {
		return nil
	}
	tagArguments, lookupError := command.Flags().GetStringArray(TagFlagName)
	if lookupError != nil {
		return nil
	}
	return tagArguments
}
