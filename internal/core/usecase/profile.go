package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type GetProfileUseCase struct {
	users port.UserRepositoryPort
}

func NewGetProfileUseCase(users port.UserRepositoryPort) *GetProfileUseCase {
	return &GetProfileUseCase{users: users}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetProfile",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type UpdateProfileUseCase struct {
	users port.UserRepositoryPort
}

func NewUpdateProfileUseCase(users port.UserRepositoryPort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{users: users}
}

// Execute обновляет имя, телефон, аватар и "о себе". Email не редактируется.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "UpdateProfile",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if err := update.Validate(); err != nil {
		ucLogger.Info("Profile validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	u.ApplyProfile(update)
	if err := uc.users.Update(ctx, *u); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		ucLogger.Error("Failed to save profile", err, nil)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return u, nil
}
