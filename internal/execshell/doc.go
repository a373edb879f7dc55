// Package execshell runs a user supplied command inside one repository directory.
//
// ShellResolver picks the shell once per process, BuildInvocation turns the
// command tokens into a concrete process specification, and the Streaming and
// Capture executors run it. FormatForDisplay renders tokens for the echo line
// only and is never used to build what actually runs.
package execshell
