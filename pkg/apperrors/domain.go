package apperrors

import (
	"fmt"
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
404-е ошибки намеренно не различают "не существует" и "не ваше" -
наружу уходит один и тот же ответ, чтобы не раскрывать чужие данные.
*/

// --- Auth ---

// ErrInvalidCredentials - неверный email, пароль или роль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrInvalidToken - неверный или просроченный токен.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrAccessDenied - единый ответ на любую нехватку прав, без деталей.
var ErrAccessDenied = New(
	CodeForbidden,
	"auth",
	"Access denied",
	http.StatusForbidden,
)

// --- Accounts & Applications ---

// ErrEmailAlreadyRegistered - email уже занят аккаунтом.
var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrApplicationPending - по этому email уже висит неотрецензированная заявка.
var ErrApplicationPending = New(
	CodeConflict,
	"application",
	"Application already submitted and pending approval",
	http.StatusConflict,
)

// ErrApplicationNotFound - заявка не найдена.
func ErrApplicationNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "application", "Application not found", http.StatusNotFound)
}

// ErrAlreadyReviewed - заявка уже в терминальном статусе.
// Сообщение обязано включать текущий статус.
func ErrAlreadyReviewed(status string) *AppError {
	return New(
		CodeInvalidStatus,
		"application",
		fmt.Sprintf("Application is already %s", status),
		http.StatusConflict,
	)
}

// ErrRejectionReasonRequired - reject без причины не принимается.
var ErrRejectionReasonRequired = New(
	CodeValidationFailed,
	"application",
	"Rejection reason is required",
	http.StatusBadRequest,
)

// --- Tutorials ---

// ErrTutorialNotFound - туториал не найден ИЛИ принадлежит другому тренеру.
var ErrTutorialNotFound = New(
	CodeNotFound,
	"tutorial",
	"Tutorial not found or access denied",
	http.StatusNotFound,
)

// --- Queries ---

// ErrQueryNotFound - запрос не найден.
var ErrQueryNotFound = New(
	CodeNotFound,
	"query",
	"Query not found",
	http.StatusNotFound,
)

// ErrQueryAlreadyAssigned - запрос уже взят другим тренером.
var ErrQueryAlreadyAssigned = New(
	CodeConflict,
	"query",
	"Query is already assigned to another trainer",
	http.StatusConflict,
)

// ErrNotAssignedToYou - запрос не найден ИЛИ назначен не вам. Единый ответ.
var ErrNotAssignedToYou = New(
	CodeNotFound,
	"query",
	"Query not found or not assigned to you",
	http.StatusNotFound,
)

// ErrEmptyResponse - пустой ответ на запрос не принимается.
var ErrEmptyResponse = New(
	CodeValidationFailed,
	"query",
	"Response is required",
	http.StatusBadRequest,
)
