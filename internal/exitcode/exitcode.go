// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task not in list).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration, or an
	// unusable environment (config dir, log file, terminal).
	ConfigError = 2

	// BackendError indicates a failed request to the task API.
	BackendError = 3
)
