package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/temirov/gitopolis/internal/repos/shared"
)

const (
	// DefaultStateFileNameConstant names the repository list file in the working directory.
	DefaultStateFileNameConstant        = ".gitopolis.toml"
	stateFileReadErrorTemplateConstant  = "failed to read %s: %w"
	stateFileParseErrorTemplateConstant = "failed to parse %s: %w"
	stateFileEntryErrorTemplateConstant = "corrupted state file %s: repo entry %d has no path"
)

type stateDocument struct {
	Repos []stateRepositoryEntry `toml:"repos"`
}

type stateRepositoryEntry struct {
	Path    string                      `toml:"path"`
	Tags    []string                    `toml:"tags"`
	Remotes map[string]stateRemoteEntry `toml:"remotes"`
}

type stateRemoteEntry struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// TOMLRepositoryStore loads repository records from a gitopolis TOML state file.
type TOMLRepositoryStore struct {
	stateFilePath string
	readFile      func(path string) ([]byte, error)
}

// NewTOMLRepositoryStore constructs a store reading the provided state file path.
func NewTOMLRepositoryStore(stateFilePath string) *TOMLRepositoryStore {
	trimmedPath := strings.TrimSpace(stateFilePath)
	if len(trimmedPath) == 0 {
		trimmedPath = DefaultStateFileNameConstant
	}
	return &TOMLRepositoryStore{stateFilePath: trimmedPath, readFile: os.ReadFile}
}

// StateFilePath reports the file the store reads.
func (store *TOMLRepositoryStore) StateFilePath() string {
	return store.stateFilePath
}

// LoadRepositories returns the records in file order. A missing file yields no records.
func (store *TOMLRepositoryStore) LoadRepositories() ([]shared.RepositoryRecord, error) {
	stateContent, readError := store.readFile(store.stateFilePath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return []shared.RepositoryRecord{}, nil
		}
		return nil, fmt.Errorf(stateFileReadErrorTemplateConstant, store.stateFilePath, readError)
	}

	return DecodeRepositories(store.stateFilePath, string(stateContent))
}

// DecodeRepositories parses state file content; sourceName only labels errors.
func DecodeRepositories(sourceName string, stateContent string) ([]shared.RepositoryRecord, error) {
	var document stateDocument
	if _, decodeError := toml.Decode(stateContent, &document); decodeError != nil {
		return nil, fmt.Errorf(stateFileParseErrorTemplateConstant, sourceName, decodeError)
	}

	records := make([]shared.RepositoryRecord, 0, len(document.Repos))
	for entryIndex, entry := range document.Repos {
		repositoryPath := shared.NormalizeRepositoryPath(entry.Path)
		if len(repositoryPath) == 0 {
			return nil, fmt.Errorf(stateFileEntryErrorTemplateConstant, sourceName, entryIndex)
		}

		remotes := make(map[string]shared.Remote, len(entry.Remotes))
		for remoteKey, remoteEntry := range entry.Remotes {
			remoteName := remoteEntry.Name
			if len(remoteName) == 0 {
				remoteName = remoteKey
			}
			remotes[remoteKey] = shared.Remote{Name: remoteName, URL: remoteEntry.URL}
		}

		records = append(records, shared.RepositoryRecord{
			Path:    repositoryPath,
			Tags:    append([]string{}, entry.Tags...),
			Remotes: remotes,
		})
	}

	return records, nil
}
