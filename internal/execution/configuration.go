package execution

const onelineConfigurationKeySuffixConstant = ".oneline"

// CommandConfiguration captures persistent settings for the exec command.
type CommandConfiguration struct {
	Oneline bool `mapstructure:"oneline"`
}

// DefaultCommandConfiguration returns baseline configuration values for the exec command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{Oneline: false}
}

// DefaultConfigurationValues returns viper defaults rooted at the provided key.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + onelineConfigurationKeySuffixConstant: defaults.Oneline,
	}
}
