package services

import (
	"errors"

	"workbridge_backend/internal/repositories"
	"workbridge_backend/pkg/apperrors"
)

// handleRepoError maps repository sentinels onto API errors. Anything
// unknown is an internal error carrying the original cause.
func handleRepoError(err error, domain string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, repositories.ErrJobNotFound):
		return apperrors.ErrNotFound(err, domain, "Job not found")
	case errors.Is(err, repositories.ErrCandidateNotFound):
		return apperrors.ErrNotFound(err, domain, "Candidate not found")
	case errors.Is(err, repositories.ErrInquiryNotFound):
		return apperrors.ErrNotFound(err, domain, "Job inquiry not found")
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrNotFound(err, domain, "User not found")
	case errors.Is(err, repositories.ErrUserAlreadyExists):
		return apperrors.ErrConflict(err, domain, "User already exists")
	}
	return apperrors.InternalError(err)
}
