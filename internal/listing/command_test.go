package listing_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitopolis/internal/listing"
)

const testListStateFileContent = `[[repos]]
path = "beta"
tags = ["work"]

[repos.remotes.origin]
name = "origin"
url = "https://example.com/beta.git"

[[repos]]
path = "alpha"
tags = ["home"]
`

func TestListCommand(testInstance *testing.T) {
	stateFilePath := filepath.Join(testInstance.TempDir(), ".gitopolis.toml")
	require.NoError(testInstance, os.WriteFile(stateFilePath, []byte(testListStateFileContent), 0o644))

	builder := listing.CommandBuilder{StateFileProvider: func() string { return stateFilePath }}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var outputBuffer bytes.Buffer
	command.SetOut(&outputBuffer)
	command.SetArgs([]string{"--tag", "work", "--long"})
	require.NoError(testInstance, command.Execute())
	require.Equal(testInstance, "beta\twork\thttps://example.com/beta.git\n", outputBuffer.String())
}

func TestListCommandMissingStateFile(testInstance *testing.T) {
	stateFilePath := filepath.Join(testInstance.TempDir(), ".gitopolis.toml")
	builder := listing.CommandBuilder{StateFileProvider: func() string { return stateFilePath }}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var outputBuffer bytes.Buffer
	command.SetOut(&outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SilenceErrors = true
	command.SilenceUsage = true
	command.SetArgs([]string{})
	require.Error(testInstance, command.Execute())
	require.Equal(testInstance, "No repos\n", outputBuffer.String())
}
