package apperror

// Code represents a unique error code for the application.
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Domain-specific error codes
const (
	// Catalog resolution errors. An item or realm that cannot be resolved
	// aborts the whole analysis run regardless of recursion depth.
	CodeItemNotFound       Code = "ITEM_NOT_FOUND"
	CodeRealmNotFound      Code = "REALM_NOT_FOUND"
	CodeRecipeNotFound     Code = "RECIPE_NOT_FOUND"
	CodeProfessionNotFound Code = "PROFESSION_NOT_FOUND"

	// Game API errors
	CodeAPIAuthFailed    Code = "API_AUTH_FAILED"
	CodeAPIRequestFailed Code = "API_REQUEST_FAILED"
	CodeAPIRateLimited   Code = "API_RATE_LIMITED"
	CodeSnapshotFailed   Code = "SNAPSHOT_FETCH_FAILED"

	// Analysis errors
	CodeAnalysisFailed Code = "ANALYSIS_FAILED"

	// Archive errors
	CodeArchiveOpenFailed  Code = "ARCHIVE_OPEN_FAILED"
	CodeArchiveQueryFailed Code = "ARCHIVE_QUERY_FAILED"
	CodeArchiveWriteFailed Code = "ARCHIVE_WRITE_FAILED"

	// Circuit breaker errors
	CodeCircuitOpen Code = "CIRCUIT_OPEN"
)
