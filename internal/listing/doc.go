// Package listing implements the list command, which prints the repositories
// known to the state file, optionally narrowed by tag.
package listing
