// Package storage reads the tracked repository list from its TOML state file.
//
// The state file lives in the directory the repositories are tracked from and
// holds one [[repos]] table per working copy with its path, tags, and remotes.
package storage
