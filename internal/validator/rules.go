package validator

import (
	"log"
	"unicode"

	"fithub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {

	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка времени запуска приложения
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Правила, основанные на statuses.go
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-tutorial-status", validateTutorialStatus)
	mustRegister("is-query-priority", validateQueryPriority)
	mustRegister("is-difficulty", validateDifficulty)

	// 'phone': минимум 10 цифр, остальные символы игнорируются
	mustRegister("phone", validatePhone)
}

// --- Функции валидации ---

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые проверяет 'required'
	}

	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleTrainer, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateTutorialStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.TutorialStatus(value) {
	case models.TutorialStatusDraft, models.TutorialStatusPublished:
		return true
	default:
		return false
	}
}

func validateQueryPriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.QueryPriority(value) {
	case models.QueryPriorityLow, models.QueryPriorityMedium, models.QueryPriorityHigh:
		return true
	default:
		return false
	}
}

func validateDifficulty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "beginner", "intermediate", "advanced":
		return true
	default:
		return false
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	digits := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 10
}
