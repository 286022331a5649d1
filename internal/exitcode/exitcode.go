// Package exitcode defines exit codes for the server process.
package exitcode

const (
	// Success indicates a clean shutdown.
	Success = 0

	// ServerError indicates the serve loop failed.
	ServerError = 1

	// ConfigError indicates a configuration error (missing credential).
	ConfigError = 2
)
