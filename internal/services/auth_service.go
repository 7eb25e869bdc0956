package services

import (
	"context"
	"errors"
	"time"

	"workbridge_backend/internal/auth"
	"workbridge_backend/internal/logger"
	"workbridge_backend/internal/models"
	"workbridge_backend/internal/repositories"
	"workbridge_backend/internal/services/dto"
	"workbridge_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, db *gorm.DB, creds dto.Credentials) (*dto.AuthResponse, error)
	Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserDTO, error)

	// SeedAdmin creates the first admin account unless a user with that
	// email already exists. It reports whether a user was created.
	SeedAdmin(ctx context.Context, db *gorm.DB, email, password string) (bool, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo, now: time.Now}
}

func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, creds dto.Credentials) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, db, creds.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, handleRepoError(err, "auth")
	}

	if !auth.CheckPasswordHash(creds.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	token, expiresAt, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, db, user.ID, now); err != nil {
		logger.CtxWithError(ctx, "Failed to record last login", err, "user_id", user.ID)
	} else {
		user.LastLoginAt = &now
	}

	return &dto.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
		User:        dto.NewUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, handleRepoError(err, "auth")
	}
	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	out := dto.NewUserDTO(user)
	return &out, nil
}

func (s *AuthServiceImpl) SeedAdmin(ctx context.Context, db *gorm.DB, email, password string) (bool, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return false, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	created := false
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, email)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}

		admin := &models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusActive,
		}
		if err := s.userRepo.Create(ctx, tx, admin); err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

func (s *AuthServiceImpl) checkUserStatus(user *models.User) error {
	if user.Status == models.UserStatusDisabled {
		return apperrors.ErrUserDisabled
	}
	return nil
}
