package gamedata

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // All requested tables loaded
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Root path unset or invalid configuration
	ExitFileAccess      = 11 // A table file could not be read
	ExitParseError      = 12 // A table file is not well-formed JSON
	ExitValidationError = 13 // A table file failed schema validation
)

const (
	// TraitFileName is the name of the trait translation file inside each
	// translated locale directory.
	TraitFileName = "traits.json"

	// DefaultLocalesDir is where translated locale directories live,
	// relative to the working directory.
	DefaultLocalesDir = "locales"

	// RootPathEnv names the environment variable holding the game data root.
	RootPathEnv = "GAME_DATA_ROOT_PATH"
)
