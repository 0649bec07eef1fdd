package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

type SetUserRoleUseCase struct {
	users port.UserRepositoryPort
}

func NewSetUserRoleUseCase(users port.UserRepositoryPort) *SetUserRoleUseCase {
	return &SetUserRoleUseCase{users: users}
}

// Execute выдает или снимает права администратора. Свою роль администратор не меняет.
func (uc *SetUserRoleUseCase) Execute(ctx context.Context, adminID, userID string, role domain.UserRole) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SetUserRole",
		"admin_id": adminID,
		"user_id":  userID,
		"role":     role,
	})

	ucLogger.Info("Use case started", nil)

	if !role.IsValid() {
		return nil, domain.ValidationErrors{"role": fmt.Sprintf("Unknown role %q", role)}
	}
	if adminID == userID {
		ucLogger.Warn("Admin tried to change own role", nil)
		return nil, domain.ErrForbidden
	}

	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Role == role {
		ucLogger.Info("Role is unchanged", nil)
		return u, nil
	}

	from := u.Role
	u.Role = role
	if err := uc.users.Update(ctx, *u); err != nil {
		ucLogger.Error("Failed to save user role", err, nil)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"from": from})
	return u, nil
}

type DeleteUserUseCase struct {
	users     port.UserRepositoryPort
	favorites port.FavoritesRepositoryPort
}

func NewDeleteUserUseCase(users port.UserRepositoryPort, favorites port.FavoritesRepositoryPort) *DeleteUserUseCase {
	return &DeleteUserUseCase{users: users, favorites: favorites}
}

// Execute удаляет профиль и избранное пользователя. Объявления остаются в каталоге без профиля продавца.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, adminID, userID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteUser",
		"admin_id": adminID,
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if adminID == userID {
		ucLogger.Warn("Admin tried to delete own account", nil)
		return domain.ErrForbidden
	}

	if err := uc.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		ucLogger.Error("Failed to delete user", err, nil)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := uc.favorites.DeleteByUser(ctx, userID); err != nil {
		ucLogger.Warn("Failed to delete user favorites", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
