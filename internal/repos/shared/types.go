package shared

import (
	"io/fs"
	"sort"
	"strings"
)

const (
	// OriginRemoteNameConstant identifies the conventional upstream remote.
	OriginRemoteNameConstant                 = "origin"
	repositoryPathTrailingSeparatorsConstant = "/\\"
)

// Remote describes a named git remote recorded for a repository.
type Remote struct {
	Name string
	URL  string
}

// RepositoryRecord is one entry of the tracked repository list.
// Path is unique. Relative paths are resolved against the working directory
// of the run, absolute paths are used as is.
type RepositoryRecord struct {
	Path    string
	Tags    []string
	Remotes map[string]Remote
}

// RemoteNames returns the record's remote names with origin first and the rest sorted.
func (record RepositoryRecord) RemoteNames() []string {
	remoteNames := make([]string, 0, len(record.Remotes))
	for remoteName := range record.Remotes {
		remoteNames = append(remoteNames, remoteName)
	}
	sort.Slice(remoteNames, func(leftIndex int, rightIndex int) bool {
		leftIsOrigin := remoteNames[leftIndex] == OriginRemoteNameConstant
		rightIsOrigin := remoteNames[rightIndex] == OriginRemoteNameConstant
		if leftIsOrigin != rightIsOrigin {
			return leftIsOrigin
		}
		return remoteNames[leftIndex] < remoteNames[rightIndex]
	})
	return remoteNames
}

// NormalizeRepositoryPath trims whitespace and trailing path separators.
func NormalizeRepositoryPath(rawPath string) string {
	trimmedPath := strings.TrimSpace(rawPath)
	normalizedPath := strings.TrimRight(trimmedPath, repositoryPathTrailingSeparatorsConstant)
	if len(normalizedPath) == 0 && len(trimmedPath) > 0 {
		return trimmedPath[:1]
	}
	return normalizedPath
}

// RepositoryStore supplies the ordered snapshot of tracked repositories.
type RepositoryStore interface {
	LoadRepositories() ([]RepositoryRecord, error)
}

// FileSystem exposes filesystem operations required by repository services.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Abs(path string) (string, error)
}
