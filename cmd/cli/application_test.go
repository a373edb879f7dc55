package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gitopolis/internal/utils"
)

const (
	testConfigurationFileNameConstant = "gitopolis.yaml"
	testStateFileNameConstant         = "repos.toml"
	testConfigurationTemplateConstant = "common:\n  state_file: %s\n"
	testStateFileContentConstant      = `[[repos]]
path = "alpha"
tags = ["work"]

[[repos]]
path = "beta"
tags = ["home"]
`
)

type embeddedConfigurationDocument struct {
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

func prepareApplicationWorkspace(testInstance *testing.T) (string, string) {
	testInstance.Helper()
	workspaceRoot := testInstance.TempDir()
	stateFilePath := filepath.Join(workspaceRoot, testStateFileNameConstant)
	require.NoError(testInstance, os.WriteFile(stateFilePath, []byte(testStateFileContentConstant), 0o644))

	configurationFilePath := filepath.Join(workspaceRoot, testConfigurationFileNameConstant)
	configurationContent := fmt.Sprintf(testConfigurationTemplateConstant, stateFilePath)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o644))
	return workspaceRoot, configurationFilePath
}

func executeApplication(testInstance *testing.T, arguments ...string) (*Application, string, error) {
	testInstance.Helper()
	application := NewApplication()
	var outputBuffer bytes.Buffer
	application.rootCommand.SetOut(&outputBuffer)
	application.rootCommand.SetErr(&outputBuffer)
	application.rootCommand.SetArgs(arguments)
	executionError := application.Execute()
	return application, outputBuffer.String(), executionError
}

func TestDefaultConfigurationDocumentValues(testInstance *testing.T) {
	configurationContent := DefaultConfigurationDocument()

	var document embeddedConfigurationDocument
	require.NoError(testInstance, yaml.Unmarshal(configurationContent, &document))
	require.Equal(testInstance, string(utils.LogLevelError), document.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatConsole), document.Common.LogFormat)
	require.Equal(testInstance, defaultStateFileNameConstant, document.Common.StateFile)
	require.False(testInstance, document.Tools.Exec.Oneline)
}

func TestDefaultConfigurationDocumentIsCopied(testInstance *testing.T) {
	firstCopy := DefaultConfigurationDocument()
	firstCopy[0] = '#'
	secondCopy := DefaultConfigurationDocument()
	require.NotEqual(testInstance, firstCopy[0], secondCopy[0])
}

func TestApplicationListUsesConfiguredStateFile(testInstance *testing.T) {
	_, configurationFilePath := prepareApplicationWorkspace(testInstance)

	testCases := []struct {
		name             string
		arguments        []string
		expectedOutput   string
		expectedExitCode int
	}{
		{
			name:           "all_repositories",
			arguments:      []string{"--config", configurationFilePath, "list"},
			expectedOutput: "alpha\nbeta\n",
		},
		{
			name:           "tagged_repositories",
			arguments:      []string{"--config", configurationFilePath, "list", "--tag", "home"},
			expectedOutput: "beta\n",
		},
		{
			name:             "no_matches",
			arguments:        []string{"--config", configurationFilePath, "list", "-t", "absent"},
			expectedOutput:   "No repos\n",
			expectedExitCode: utils.ExitCodeNoRepositories,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			_, output, executionError := executeApplication(testInstance, testCase.arguments...)
			require.Equal(testInstance, testCase.expectedOutput, output)
			if testCase.expectedExitCode == 0 {
				require.NoError(testInstance, executionError)
				return
			}
			var exitCodeError utils.ExitCodeError
			require.ErrorAs(testInstance, executionError, &exitCodeError)
			require.Equal(testInstance, testCase.expectedExitCode, exitCodeError.Code)
		})
	}
}

func TestApplicationExecRunsInWorkingDirectory(testInstance *testing.T) {
	if runtime.GOOS == "windows" {
		testInstance.Skip("requires /bin/sh")
	}
	workspaceRoot, configurationFilePath := prepareApplicationWorkspace(testInstance)
	require.NoError(testInstance, os.Mkdir(filepath.Join(workspaceRoot, "alpha"), 0o755))
	require.NoError(testInstance, os.Mkdir(filepath.Join(workspaceRoot, "beta"), 0o755))
	testInstance.Chdir(workspaceRoot)
	testInstance.Setenv("SHELL", "/bin/sh")

	_, output, executionError := executeApplication(testInstance, "--config", configurationFilePath, "exec", "--oneline", "--", "basename \"$(pwd -P)\"")
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "alpha\talpha\nbeta\tbeta\n", output)
}

func TestApplicationOnelineFromEnvironment(testInstance *testing.T) {
	_, configurationFilePath := prepareApplicationWorkspace(testInstance)
	testInstance.Setenv("GITOPOLIS_TOOLS_EXEC_ONELINE", "true")

	application, _, executionError := executeApplication(testInstance, "--config", configurationFilePath, "list")
	require.NoError(testInstance, executionError)
	require.True(testInstance, application.configuration.Tools.Exec.Oneline)
	require.Equal(testInstance, string(utils.LogLevelError), application.configuration.Common.LogLevel)
}

func TestApplicationLogFlagsOverrideConfiguration(testInstance *testing.T) {
	_, configurationFilePath := prepareApplicationWorkspace(testInstance)

	application, _, executionError := executeApplication(testInstance, "--config", configurationFilePath, "--log-level", "debug", "--log-format", "structured", "list")
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, string(utils.LogLevelDebug), application.configuration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatStructured), application.configuration.Common.LogFormat)
}

func TestApplicationRejectsUnknownLogLevel(testInstance *testing.T) {
	_, configurationFilePath := prepareApplicationWorkspace(testInstance)

	_, _, executionError := executeApplication(testInstance, "--config", configurationFilePath, "--log-level", "verbose", "list")
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unable to create logger")
}

func TestApplicationRegistersCommands(testInstance *testing.T) {
	application := NewApplication()
	registeredNames := make([]string, 0)
	for _, subcommand := range application.rootCommand.Commands() {
		registeredNames = append(registeredNames, subcommand.Name())
	}
	require.Contains(testInstance, registeredNames, "exec")
	require.Contains(testInstance, registeredNames, "list")
}
