// Package execution runs one shell command across the selected repositories.
//
// The Service walks repositories strictly in order, one child process at a
// time. Missing repository folders and non-zero exits are counted rather than
// aborting the run, and a non-empty count turns into exit code 1 once every
// repository has been attempted.
package execution
