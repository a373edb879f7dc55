package cli

import (
	"bytes"
	_ "embed"
)

//go:embed default_config.yaml
var defaultConfigurationDocument []byte

// DefaultConfigurationDocument returns a private copy of the built-in YAML configuration.
// It is merged beneath any user configuration file.
func DefaultConfigurationDocument() []byte {
	return bytes.Clone(defaultConfigurationDocument)
}
