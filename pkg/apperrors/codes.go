package apperrors

// ErrorCode is the machine-readable code sent to clients.
type ErrorCode string

// Cross-domain codes.
const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeStorageError         ErrorCode = "STORAGE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Business logic
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeConflict             ErrorCode = "CONFLICT"
	CodeLimitExceeded        ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidStatus        ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation     ErrorCode = "INVALID_OPERATION"
	CodeConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
	CodeSubmissionInProgress ErrorCode = "SUBMISSION_IN_PROGRESS"

	// Auth
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
