// Package tagfilter selects repositories by tag.
//
// A Filter is built once from repeated --tag arguments: each argument is a
// comma separated group whose tags must all be present, and a repository is
// selected when any group matches. An empty Filter selects everything.
package tagfilter
