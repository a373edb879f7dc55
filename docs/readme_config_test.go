package docs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gitopolis/cmd/cli"
	"github.com/temirov/gitopolis/internal/repos/storage"
	"github.com/temirov/gitopolis/internal/utils"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	tomlFenceStartConstant           = "```toml"
	fenceEndConstant                 = "```"
	configHeaderMarkerConstant       = "# gitopolis.yaml"
	stateFileHeaderMarkerConstant    = "# .gitopolis.toml"
	readmeSnippetFileNameConstant    = "gitopolis.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing header marker"
	missingStartFenceMessageConstant = "README example missing fence start"
	missingEndFenceMessageConstant   = "README example missing fence end"
)

type readmeConfiguration struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
		StateFile string `yaml:"state_file"`
	} `yaml:"common"`
	Tools struct {
		Exec struct {
			Oneline bool `yaml:"oneline"`
		} `yaml:"exec"`
	} `yaml:"tools"`
}

func readReadme(testInstance *testing.T) string {
	testInstance.Helper()
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	contentBytes, readError := os.ReadFile(filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant))
	require.NoError(testInstance, readError)
	return string(contentBytes)
}

func extractSnippet(testInstance *testing.T, contentText string, headerMarker string, fenceStart string) string {
	testInstance.Helper()
	headerIndex := strings.Index(contentText, headerMarker)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(contentText[:headerIndex], fenceStart)
	require.NotEqual(testInstance, -1, fenceStartIndex, missingStartFenceMessageConstant)

	fenceEndRelativeIndex := strings.Index(contentText[headerIndex:], fenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	return strings.TrimSpace(contentText[fenceStartIndex+len(fenceStart) : headerIndex+fenceEndRelativeIndex])
}

func TestReadmeConfigurationMatchesApplication(testInstance *testing.T) {
	snippetContent := extractSnippet(testInstance, readReadme(testInstance), configHeaderMarkerConstant, yamlFenceStartConstant)

	var documentedConfiguration readmeConfiguration
	decoder := yaml.NewDecoder(bytes.NewReader([]byte(snippetContent)))
	decoder.KnownFields(true)
	require.NoError(testInstance, decoder.Decode(&documentedConfiguration))

	embeddedContent := cli.DefaultConfigurationDocument()
	var embeddedConfiguration readmeConfiguration
	require.NoError(testInstance, yaml.Unmarshal(embeddedContent, &embeddedConfiguration))
	require.Equal(testInstance, embeddedConfiguration, documentedConfiguration)

	snippetPath := filepath.Join(testInstance.TempDir(), readmeSnippetFileNameConstant)
	require.NoError(testInstance, os.WriteFile(snippetPath, []byte(snippetContent), 0o600))

	var applicationConfiguration cli.ApplicationConfiguration
	loader := utils.NewConfigurationLoader("gitopolis", "yaml", "GITOPOLIS_README", nil)
	_, loadError := loader.LoadConfiguration(snippetPath, nil, &applicationConfiguration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, documentedConfiguration.Common.StateFile, applicationConfiguration.Common.StateFile)
	require.Equal(testInstance, documentedConfiguration.Tools.Exec.Oneline, applicationConfiguration.Tools.Exec.Oneline)
}

func TestReadmeRepositoryListParses(testInstance *testing.T) {
	snippetContent := extractSnippet(testInstance, readReadme(testInstance), stateFileHeaderMarkerConstant, tomlFenceStartConstant)

	records, decodeError := storage.DecodeRepositories(readmeFileNameConstant, snippetContent)
	require.NoError(testInstance, decodeError)
	require.Len(testInstance, records, 2)
	require.Equal(testInstance, "api", records[0].Path)
	require.Equal(testInstance, []string{"work", "go"}, records[0].Tags)
	require.Equal(testInstance, "git@github.com:example/api.git", records[0].Remotes["origin"].URL)
	require.Equal(testInstance, "dotfiles", records[1].Path)
}
