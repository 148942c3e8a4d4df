package auth

import (
	"errors"

	"fithub_backend/internal/models"
)

// ValidateRole проверяет валидность роли при регистрации
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.UserRoleUser, models.UserRoleTrainer, models.UserRoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
