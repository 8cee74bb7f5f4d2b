package codes

// Process exit codes used by the koremake CLI.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// ErrorCodes maps koremake exit codes to their descriptions
var ErrorCodes = map[int]string{
	ExitSuccess:     "Success",
	ExitFailure:     "Build pipeline failed",
	ExitConfigError: "Invalid configuration",
}

// IsSuccess returns true if the exit code indicates a successful run
func IsSuccess(code int) bool {
	return code == ExitSuccess
}

// GetErrorMessage returns the error message for a given exit code, or a generic message if unknown
func GetErrorMessage(code int) string {
	if msg, ok := ErrorCodes[code]; ok {
		return msg
	}

	return "Unknown error"
}
