package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal server error",
	CodeUnknownError:  "An unknown error occurred",

	// Catalog resolution errors
	CodeItemNotFound:       "Item not found",
	CodeRealmNotFound:      "Realm not found",
	CodeRecipeNotFound:     "Recipe not found",
	CodeProfessionNotFound: "Profession not found",

	// Game API errors
	CodeAPIAuthFailed:    "Game API authentication failed",
	CodeAPIRequestFailed: "Game API request failed",
	CodeAPIRateLimited:   "Game API rate limit exceeded",
	CodeSnapshotFailed:   "Failed to fetch auction snapshot",

	// Analysis errors
	CodeAnalysisFailed: "Profit analysis failed",

	// Archive errors
	CodeArchiveOpenFailed:  "Failed to open price archive",
	CodeArchiveQueryFailed: "Price archive query failed",
	CodeArchiveWriteFailed: "Price archive write failed",

	// Circuit breaker errors
	CodeCircuitOpen: "Circuit breaker is open",
}
