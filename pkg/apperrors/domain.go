package apperrors

import (
	"net/http"
)

// =========================================================================
// Factories wrapping lower-level errors (repositories, storage)
// =========================================================================

// ErrNotFound turns a repository "not found" sentinel into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is a generic 409.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrStorage wraps a file storage failure. The remote message is kept so
// the client sees it when available.
func ErrStorage(err error, message string) *AppError {
	return Wrap(err, CodeStorageError, "storage", message, http.StatusBadGateway)
}

// ErrExternalService wraps a failed call to a third-party service (SMTP).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// =========================================================================
// Factories for new errors
// =========================================================================

// ErrInvalidOperation - 400
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - 409, the requested status transition is not allowed.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// ErrConfirmationRequired - 428, a destructive action was not confirmed.
// The prompt goes into Details so the client can show it.
func ErrConfirmationRequired(domain, prompt string) *AppError {
	return New(CodeConfirmationRequired, domain, "Confirmation required", http.StatusPreconditionRequired).
		WithDetails(map[string]string{"prompt": prompt})
}

// =========================================================================
// Predefined errors
// =========================================================================

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid login credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrAdminRequired is what an authenticated user without the admin role gets.
var ErrAdminRequired = New(
	CodeForbidden,
	"auth",
	"You don't have admin privileges. Contact an administrator to request access.",
	http.StatusForbidden,
)

var ErrUserDisabled = New(
	CodeForbidden,
	"auth",
	"Your account has been disabled",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrCVRequired = New(
	CodeValidationFailed,
	"validation",
	"Please upload your CV",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File too large: Please upload a file smaller than 5MB",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"Invalid file type: Please upload a PDF or Word document (.pdf, .doc, .docx)",
	http.StatusUnsupportedMediaType,
)

var ErrNoCV = New(
	CodeNotFound,
	"candidate",
	"No CV uploaded for this candidate",
	http.StatusNotFound,
)

// --- Forms ---

var ErrSubmissionInProgress = New(
	CodeSubmissionInProgress,
	"form",
	"A submission is already in progress",
	http.StatusConflict,
)
