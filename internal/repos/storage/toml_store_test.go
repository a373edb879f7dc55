package storage_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitopolis/internal/repos/shared"
	"github.com/temirov/gitopolis/internal/repos/storage"
)

const (
	storageSubtestTemplateConstant = "%d_%s"
	testStateContentConstant       = `[[repos]]
path = "zebra"
tags = ["work", "go"]

[repos.remotes.origin]
name = "origin"
url = "git@example.com:team/zebra.git"

[[repos]]
path = "alpha/"
tags = []

[repos.remotes.upstream]
name = "upstream"
url = "https://example.com/alpha.git"
`
)

func TestTOMLRepositoryStoreLoadRepositories(testInstance *testing.T) {
	testCases := []struct {
		name          string
		content       *string
		expectError   bool
		expectedPaths []string
	}{
		{name: "missing_file_is_empty", content: nil, expectedPaths: []string{}},
		{name: "file_order_preserved", content: stringPointer(testStateContentConstant), expectedPaths: []string{"zebra", "alpha"}},
		{name: "empty_file", content: stringPointer(""), expectedPaths: []string{}},
		{name: "malformed_file", content: stringPointer("[[repos]\npath ="), expectError: true},
		{name: "entry_without_path", content: stringPointer("[[repos]]\ntags = [\"x\"]\n"), expectError: true},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(storageSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			stateFilePath := filepath.Join(testInstance.TempDir(), storage.DefaultStateFileNameConstant)
			if testCase.content != nil {
				require.NoError(testInstance, os.WriteFile(stateFilePath, []byte(*testCase.content), 0o600))
			}

			store := storage.NewTOMLRepositoryStore(stateFilePath)
			records, loadError := store.LoadRepositories()
			if testCase.expectError {
				require.Error(testInstance, loadError)
				require.Contains(testInstance, loadError.Error(), stateFilePath)
				return
			}

			require.NoError(testInstance, loadError)
			loadedPaths := make([]string, 0, len(records))
			for _, record := range records {
				loadedPaths = append(loadedPaths, record.Path)
			}
			require.Equal(testInstance, testCase.expectedPaths, loadedPaths)
		})
	}
}

func TestDecodeRepositoriesReadsTagsAndRemotes(testInstance *testing.T) {
	records, decodeError := storage.DecodeRepositories("inline", testStateContentConstant)
	require.NoError(testInstance, decodeError)
	require.Len(testInstance, records, 2)

	require.Equal(testInstance, []string{"work", "go"}, records[0].Tags)
	require.Equal(testInstance, shared.Remote{Name: "origin", URL: "git@example.com:team/zebra.git"}, records[0].Remotes["origin"])
	require.Empty(testInstance, records[1].Tags)
	require.Equal(testInstance, "https://example.com/alpha.git", records[1].Remotes["upstream"].URL)
}

func TestNewTOMLRepositoryStoreDefaultsPath(testInstance *testing.T) {
	require.Equal(testInstance, storage.DefaultStateFileNameConstant, storage.NewTOMLRepositoryStore("  ").StateFilePath())
}

func stringPointer(value string) *string {
	return &value
}
