// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	Success = 0

	// Failure covers runtime errors: bad config, unreadable seed, TUI failure.
	Failure = 1

	// Usage indicates bad arguments or an unknown subcommand.
	Usage = 2
)
