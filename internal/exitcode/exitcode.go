// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task number out of range).
	UserError = 1

	// InputError indicates the session input could not be read.
	InputError = 2

	// Interrupted indicates the process received SIGINT or SIGTERM.
	Interrupted = 130
)
