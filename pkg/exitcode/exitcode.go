// Package exitcode provides standardized exit codes for commitcheck.
//
// Pre-commit and git hook drivers only distinguish zero from non-zero, so a
// rejected commit message exits with GeneralError (1). The remaining codes
// differentiate operational failures for scripting.
package exitcode

const (
	Success      = 0
	GeneralError = 1
	ConfigError  = 2
	InputError   = 3
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case ConfigError:
		return "Configuration error"
	case InputError:
		return "Input error"
	default:
		return "Unknown error"
	}
}
