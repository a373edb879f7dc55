package dependencies

import (
	"go.uber.org/zap"

	"github.com/temirov/gitopolis/internal/execshell"
	"github.com/temirov/gitopolis/internal/repos/filesystem"
	"github.com/temirov/gitopolis/internal/repos/shared"
	"github.com/temirov/gitopolis/internal/repos/storage"
	"github.com/temirov/gitopolis/internal/ui"
	pathutils "github.com/temirov/gitopolis/internal/utils/path"
)

// ResolveRepositoryStore returns the provided store or a TOML store reading the state file.
// A leading ~ in the state file path expands to the user's home directory.
func ResolveRepositoryStore(existing shared.RepositoryStore, stateFilePath string) shared.RepositoryStore {
	if existing != nil {
		return existing
	}
	return storage.NewTOMLRepositoryStore(pathutils.NewHomeExpander().Expand(stateFilePath))
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing shared.FileSystem) shared.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveShellResolution resolves the shell once from the provided environment lookup.
// A nil lookup reads the process environment.
func ResolveShellResolution(environmentLookup execshell.EnvironmentLookup, operatingSystem string) execshell.ShellResolution {
	return execshell.NewShellResolver(environmentLookup, operatingSystem).Resolve()
}

// ResolveCommandEventObserver returns the provided observer or a zap-backed console observer.
func ResolveCommandEventObserver(existing execshell.CommandEventObserver, logger *zap.Logger) execshell.CommandEventObserver {
	if existing != nil {
		return existing
	}
	return ui.NewConsoleCommandEventLogger(logger)
}
